package adapter

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/docgap/internal/model"
)

func sampleIndex() IndexDocument {
	return IndexDocument{
		GeneratedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		Repository:  "Avalonia",
		GitRef:      "11.0.0",
		Files:       3,
		Areas: []m.Area{
			{Prefix: "src/Avalonia.Controls/", Name: "Controls"},
			{Prefix: "src/Avalonia.Base/", Name: "Base"},
		},
		Units: []m.UnitSignatures{
			{
				Unit:       "src/Avalonia.Controls/Window.cs",
				Namespace:  "Avalonia.Controls",
				Signatures: []string{"public class Window", "public void Show() {"},
			},
			{
				Unit:       "src/Avalonia.Base/AvaloniaObject.cs",
				Hash:       "0a1b2c",
				Signatures: []string{"public class AvaloniaObject"},
			},
			{Unit: "src/Empty.cs"},
			{
				Unit:       "tools/Gen.cs",
				Signatures: []string{"public static class Gen"},
			},
		},
	}
}

func TestRenderIndex(t *testing.T) {
	out := RenderIndex(sampleIndex())

	assert.Contains(t, out, "- Generated at (UTC): `2026-01-02 03:04:05Z`\n")
	assert.Contains(t, out, "- Repository: `Avalonia@11.0.0`\n")
	assert.Contains(t, out, "- Git ref: `11.0.0`\n")
	assert.Contains(t, out, "- Files scanned: `3`\n")
	assert.Contains(t, out, "- Captured public signatures: `4`\n")
	assert.Contains(t, out, "### `src/Avalonia.Controls/Window.cs`\n- Namespace: `Avalonia.Controls`\n- `public class Window`\n- `public void Show() {`\n")
	assert.Contains(t, out, "### `src/Avalonia.Base/AvaloniaObject.cs`\n- Hash: `0a1b2c`\n- `public class AvaloniaObject`\n")
	assert.NotContains(t, out, "src/Empty.cs")

	base := strings.Index(out, "## Base")
	controls := strings.Index(out, "## Controls")
	other := strings.Index(out, "## Other")
	require.True(t, base > 0 && controls > 0 && other > 0)
	assert.Less(t, base, controls)
	assert.Less(t, controls, other)
}

func TestRenderIndex_TruncatesPerFile(t *testing.T) {
	doc := IndexDocument{
		Repository: "repo",
		MaxPerFile: 1,
		Units: []m.UnitSignatures{
			{Unit: "A.cs", Signatures: []string{"public class A", "public int X;", "public int Y;"}},
		},
	}

	out := RenderIndex(doc)

	assert.Contains(t, out, "- `public class A`\n")
	assert.NotContains(t, out, "public int X;")
	assert.Contains(t, out, "- `... 2 more signatures omitted (increase --max-per-file to include them).`")
	assert.Contains(t, out, "- Repository: `repo`\n")
	assert.NotContains(t, out, "Git ref")
}

func TestParseIndex(t *testing.T) {
	text := strings.Join([]string{
		"# Public API Index (Generated)",
		"",
		"- Files scanned: `2`",
		"- `public class Orphan`",
		"## Controls",
		"### `src/Window.cs`",
		"- Namespace: `Avalonia.Controls`",
		"- `public class Window`",
		"- `internal void Hidden()`",
		"- `public void Show() {`",
		"- `... 3 more signatures omitted (increase --max-per-file to include them).`",
		"### `src/Other.cs`",
		"- Hash: `ff00`",
		"  - `public int Width;`  ",
	}, "\n")

	units := ParseIndex(text)

	assert.Equal(t, []m.UnitSignatures{
		{Unit: "<unknown>", Signatures: []string{"public class Orphan"}},
		{Unit: "src/Window.cs", Namespace: "Avalonia.Controls", Signatures: []string{"public class Window", "public void Show() {"}},
		{Unit: "src/Other.cs", Hash: "ff00", Signatures: []string{"public int Width;"}},
	}, units)
}

func TestParseIndex_RoundTripsRenderedSignatures(t *testing.T) {
	doc := sampleIndex()

	units := ParseIndex(RenderIndex(doc))

	got := make(map[string]m.UnitSignatures)
	for _, u := range units {
		got[u.Unit] = u
	}

	for _, u := range doc.Units {
		if len(u.Signatures) == 0 {
			continue
		}
		assert.Equal(t, u, got[u.Unit], u.Unit)
	}
}

func TestAreaFor(t *testing.T) {
	areas := []m.Area{
		{Prefix: "src/", Name: "Sources"},
		{Prefix: "src/Avalonia.Base/", Name: "Base"},
	}

	assert.Equal(t, "Sources", AreaFor("src/Avalonia.Base/X.cs", areas))
	assert.Equal(t, m.DefaultArea, AreaFor("build/X.cs", areas))
	assert.Equal(t, m.DefaultArea, AreaFor("src/X.cs", nil))
}

func TestIndexStore_WriteAndRead(t *testing.T) {
	store := NewIndexStore()
	path := m.Path(filepath.Join(t.TempDir(), "refs", "api-index-generated.md"))

	doc := sampleIndex()

	changes, err := store.Write(path, doc)
	require.NoError(t, err)
	assert.Equal(t, IndexChanges{}, changes, "first write has nothing to compare against")

	units, err := store.Read(path)
	require.NoError(t, err)
	assert.Len(t, units, 3)

	doc.GeneratedAt = doc.GeneratedAt.Add(time.Hour)
	changes, err = store.Write(path, doc)
	require.NoError(t, err)
	assert.True(t, changes.Replaced)
	assert.Empty(t, changes.Diff, "only the timestamp changed")
	assert.Empty(t, changes.Changed)
	assert.Equal(t, 3, changes.Unchanged)

	doc.Units[0].Signatures = append(doc.Units[0].Signatures, "public void Hide() {")
	changes, err = store.Write(path, doc)
	require.NoError(t, err)
	assert.Contains(t, changes.Diff, "+- `public void Hide() {`")
	assert.Contains(t, changes.Diff, "--- previous")
	assert.Equal(t, []string{"src/Avalonia.Controls/Window.cs"}, changes.Changed)
}

func TestIndexStore_WriteReportsUnitsByContentHash(t *testing.T) {
	store := NewIndexStore()
	path := m.Path(filepath.Join(t.TempDir(), "api-index-generated.md"))

	doc := IndexDocument{
		Repository: "repo",
		Units: []m.UnitSignatures{
			{Unit: "A.cs", Hash: "aa", Signatures: []string{"public class A"}},
			{Unit: "B.cs", Hash: "bb", Signatures: []string{"public class B"}},
			{Unit: "C.cs", Hash: "cc", Signatures: []string{"public class C"}},
		},
	}

	_, err := store.Write(path, doc)
	require.NoError(t, err)

	// B's body changed without touching its public surface. C is gone and D
	// is new.
	doc.Units = []m.UnitSignatures{
		{Unit: "A.cs", Hash: "aa", Signatures: []string{"public class A"}},
		{Unit: "B.cs", Hash: "b2", Signatures: []string{"public class B"}},
		{Unit: "D.cs", Hash: "dd", Signatures: []string{"public class D"}},
	}

	changes, err := store.Write(path, doc)
	require.NoError(t, err)

	assert.True(t, changes.Replaced)
	assert.Equal(t, []string{"B.cs", "D.cs"}, changes.Changed)
	assert.Equal(t, []string{"C.cs"}, changes.Removed)
	assert.Equal(t, 1, changes.Unchanged)
	assert.NotContains(t, changes.Diff, "- Hash:", "hash lines are left out of the signature diff")
}

func TestCompareUnits_FallsBackToSignaturesWithoutHashes(t *testing.T) {
	previous := []m.UnitSignatures{
		{Unit: "A.cs", Signatures: []string{"public class A"}},
		{Unit: "B.cs", Hash: "bb", Signatures: []string{"public class B"}},
	}
	current := []m.UnitSignatures{
		{Unit: "A.cs", Hash: "aa", Signatures: []string{"public class A"}},
		{Unit: "B.cs", Signatures: []string{"public class B", "public int X;"}},
	}

	changes := CompareUnits(previous, current)

	assert.Equal(t, []string{"B.cs"}, changes.Changed)
	assert.Empty(t, changes.Removed)
	assert.Equal(t, 1, changes.Unchanged)
}

func TestIndexStore_ReadMissing(t *testing.T) {
	_, err := NewIndexStore().Read(m.Path(filepath.Join(t.TempDir(), "missing.md")))
	assert.ErrorIs(t, err, ErrIndexNotFound)
}
