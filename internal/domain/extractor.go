package domain

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/docgap/internal/domain/scanner"
	m "github.com/mouse-blink/docgap/internal/model"
)

// Extractor scans source units into signatures.
type Extractor interface {
	Extract(ctx context.Context, units []m.SourceUnit, workers int) ([]m.UnitSignatures, error)
}

type extractor struct{}

// NewExtractor creates an Extractor that scans units in parallel.
func NewExtractor() Extractor {
	return &extractor{}
}

// Extract scans every unit with its own scanner state. Results are ordered
// by unit ID regardless of the number of workers.
func (e *extractor) Extract(ctx context.Context, units []m.SourceUnit, workers int) ([]m.UnitSignatures, error) {
	if workers <= 0 {
		workers = 1
	}

	results := make([]m.UnitSignatures, len(units))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, unit := range units {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("scan %s: %w", unit.ID, err)
			}

			results[i] = scanner.ScanUnit(unit)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Unit < results[b].Unit
	})

	return results, nil
}
