package domain

import (
	"strings"

	"github.com/mouse-blink/docgap/internal/domain/classify"
	"github.com/mouse-blink/docgap/internal/domain/scanner"
	m "github.com/mouse-blink/docgap/internal/model"
)

const publicPrefix = "public "

// EntryBuilder turns the signatures of consecutive source units into API
// entries. Container linkage is reset whenever the unit changes, and entries
// are de-duplicated by (unit, signature) in order of first occurrence.
type EntryBuilder struct {
	entries   []m.APIEntry
	seen      map[entryKey]struct{}
	unit      string
	container string
}

type entryKey struct {
	unit      string
	signature string
}

// NewEntryBuilder creates an empty EntryBuilder.
func NewEntryBuilder() *EntryBuilder {
	return &EntryBuilder{seen: make(map[entryKey]struct{})}
}

// Add classifies signature as part of unit.
func (b *EntryBuilder) Add(unit, signature string) {
	if unit != b.unit {
		b.unit = unit
		b.container = ""
	}

	sig := scanner.NormalizeWhitespace(signature)
	if !strings.HasPrefix(sig, publicPrefix) {
		return
	}

	kind, symbol := classify.Classify(sig)
	if symbol == "" {
		return
	}

	entry := m.APIEntry{SourceUnit: unit, Signature: sig, Kind: kind, Symbol: symbol}

	if kind == m.KindType {
		b.container = symbol
	} else {
		entry.Container = b.container
	}

	key := entryKey{unit: unit, signature: sig}
	if _, dup := b.seen[key]; dup {
		return
	}

	b.seen[key] = struct{}{}
	b.entries = append(b.entries, entry)
}

// AddUnit adds every signature of one scanned unit.
func (b *EntryBuilder) AddUnit(unit m.UnitSignatures) {
	for _, sig := range unit.Signatures {
		b.Add(unit.Unit, sig)
	}
}

// Entries returns the entries built so far.
func (b *EntryBuilder) Entries() []m.APIEntry {
	return b.entries
}

// BuildEntries classifies the signatures of each unit in order.
func BuildEntries(units []m.UnitSignatures) []m.APIEntry {
	b := NewEntryBuilder()
	for _, unit := range units {
		b.AddUnit(unit)
	}

	return b.Entries()
}
