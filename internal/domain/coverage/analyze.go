package coverage

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/docgap/internal/model"
)

// chunkSize is the number of entries evaluated per task.
const chunkSize = 256

// Partition splits entries into covered and not covered. Covered holds the
// indices of covered entries.
type Partition struct {
	Entries []m.APIEntry
	Covered *roaring.Bitmap
}

// Analyze evaluates every entry against corpus using up to workers
// goroutines. The verdicts do not depend on the number of workers.
func Analyze(ctx context.Context, entries []m.APIEntry, corpus string, workers int) (Partition, error) {
	if workers <= 0 {
		workers = 1
	}

	matcher := NewMatcher(corpus)
	verdicts := make([]bool, len(entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(entries); start += chunkSize {
		end := min(start+chunkSize, len(entries))

		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}

				verdicts[i] = matcher.IsCovered(entries[i])
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Partition{}, err
	}

	covered := roaring.New()

	for i, ok := range verdicts {
		if ok {
			covered.Add(uint32(i))
		}
	}

	return Partition{Entries: entries, Covered: covered}, nil
}

// Summary returns aggregate counts.
func (p Partition) Summary() m.CoverageSummary {
	covered := 0
	if p.Covered != nil {
		covered = int(p.Covered.GetCardinality())
	}

	return m.CoverageSummary{
		Total:      len(p.Entries),
		Covered:    covered,
		NotCovered: len(p.Entries) - covered,
	}
}

// IsCovered reports the verdict for the entry at index i.
func (p Partition) IsCovered(i int) bool {
	return p.Covered != nil && p.Covered.Contains(uint32(i))
}

// CoveredEntries returns covered entries in their original order.
func (p Partition) CoveredEntries() []m.APIEntry {
	return p.filter(true)
}

// UncoveredEntries returns uncovered entries in their original order.
func (p Partition) UncoveredEntries() []m.APIEntry {
	return p.filter(false)
}

func (p Partition) filter(covered bool) []m.APIEntry {
	out := make([]m.APIEntry, 0, len(p.Entries))

	for i, entry := range p.Entries {
		if p.IsCovered(i) == covered {
			out = append(out, entry)
		}
	}

	return out
}
