package coverage

import (
	"context"
	"fmt"
	"testing"

	m "github.com/mouse-blink/docgap/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Partition(t *testing.T) {
	entries := []m.APIEntry{
		{SourceUnit: "a.cs", Kind: m.KindType, Symbol: "Window"},
		{SourceUnit: "a.cs", Kind: m.KindMember, Symbol: "Title", Container: "Window"},
		{SourceUnit: "a.cs", Kind: m.KindMethod, Symbol: "Hide", Container: "Window"},
		{SourceUnit: "b.cs", Kind: m.KindIndexer, Symbol: "this[]"},
	}

	p, err := Analyze(context.Background(), entries, "A `Window` has Window.Title.", 2)
	require.NoError(t, err)

	assert.Equal(t, m.CoverageSummary{Total: 4, Covered: 2, NotCovered: 2}, p.Summary())
	assert.Equal(t, entries[:2], p.CoveredEntries())
	assert.Equal(t, entries[2:], p.UncoveredEntries())
	assert.True(t, p.IsCovered(0))
	assert.False(t, p.IsCovered(3))
}

func TestAnalyze_VerdictsIndependentOfWorkers(t *testing.T) {
	entries := make([]m.APIEntry, 0, 1000)
	for i := range 1000 {
		entries = append(entries, m.APIEntry{Kind: m.KindMember, Symbol: fmt.Sprintf("Member%d", i), Container: "Host"})
	}

	corpus := "Host.Member7 Host.Member123 `Member999`"

	serial, err := Analyze(context.Background(), entries, corpus, 1)
	require.NoError(t, err)

	parallel, err := Analyze(context.Background(), entries, corpus, 8)
	require.NoError(t, err)

	assert.True(t, serial.Covered.Equals(parallel.Covered))
	assert.Equal(t, 3, serial.Summary().Covered)
}

func TestAnalyze_Empty(t *testing.T) {
	p, err := Analyze(context.Background(), nil, "corpus", 0)
	require.NoError(t, err)

	assert.Equal(t, m.CoverageSummary{}, p.Summary())
	assert.Empty(t, p.UncoveredEntries())
}

func TestAnalyze_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	entries := []m.APIEntry{{Kind: m.KindType, Symbol: "Window"}}

	_, err := Analyze(ctx, entries, "Window", 1)
	assert.ErrorIs(t, err, context.Canceled)
}
