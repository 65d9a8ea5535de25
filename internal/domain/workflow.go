// Package domain wires the scanner, the classifier and the coverage matcher
// to the adapters that load sources and persist results.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/mouse-blink/docgap/internal/adapter"
	"github.com/mouse-blink/docgap/internal/controller"
	"github.com/mouse-blink/docgap/internal/domain/controls"
	"github.com/mouse-blink/docgap/internal/domain/coverage"
	m "github.com/mouse-blink/docgap/internal/model"
)

// IndexArgs configures API index generation.
type IndexArgs struct {
	SourceArgs
	Output     m.Path
	Areas      []m.Area
	MaxPerFile int
}

// SourceArgs selects the source units to scan.
type SourceArgs struct {
	Repo     m.Path
	GitRef   string
	Patterns []string
	Threads  int
}

// CoverageArgs configures a coverage run. Entries come from Index when it
// is set, otherwise the sources are scanned directly.
type CoverageArgs struct {
	SourceArgs
	Index      m.Path
	References m.Path
	Output     m.Path
	Exclude    []string
	Reports    m.Path
	Stdout     bool
}

// ControlsArgs configures control reference generation. Roots are the short
// names of the base types that make a type a control.
type ControlsArgs struct {
	SourceArgs
	Output     m.Path
	Roots      []string
	TrimPrefix string
	MaxMembers int
}

// ViewArgs configures displaying a stored coverage snapshot.
type ViewArgs struct {
	Reports m.Path
	Stdout  bool
}

// Workflow defines the interface for index and coverage operations.
type Workflow interface {
	Index(ctx context.Context, args IndexArgs) error
	Coverage(ctx context.Context, args CoverageArgs) error
	View(args ViewArgs) error
	Controls(ctx context.Context, args ControlsArgs) error
}

// WorkflowOption customises a workflow.
type WorkflowOption func(*workflow)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) WorkflowOption {
	return func(w *workflow) {
		w.logger = logger
	}
}

// WithClock overrides the time source stamped into documents.
func WithClock(now func() time.Time) WorkflowOption {
	return func(w *workflow) {
		w.now = now
	}
}

type workflow struct {
	fsAdapter     adapter.SourceFSAdapter
	gitAdapter    adapter.GitSourceAdapter
	corpusAdapter adapter.CorpusAdapter
	indexStore    adapter.IndexStore
	reportStore   adapter.ReportStore
	controlsStore adapter.ControlsStore
	ui            controller.UI
	extractor     Extractor
	logger        *slog.Logger
	now           func() time.Time
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(
	fsAdapter adapter.SourceFSAdapter,
	gitAdapter adapter.GitSourceAdapter,
	corpusAdapter adapter.CorpusAdapter,
	indexStore adapter.IndexStore,
	reportStore adapter.ReportStore,
	controlsStore adapter.ControlsStore,
	ui controller.UI,
	extractor Extractor,
	options ...WorkflowOption,
) Workflow {
	w := &workflow{
		fsAdapter:     fsAdapter,
		gitAdapter:    gitAdapter,
		corpusAdapter: corpusAdapter,
		indexStore:    indexStore,
		reportStore:   reportStore,
		controlsStore: controlsStore,
		ui:            ui,
		extractor:     extractor,
		logger:        slog.Default(),
		now:           time.Now,
	}

	for _, opt := range options {
		opt(w)
	}

	return w
}

// Index scans the sources and writes the API index document.
func (w *workflow) Index(ctx context.Context, args IndexArgs) error {
	if err := w.ui.Start(controller.WithIndexMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	units, skipped, err := w.loadUnits(args.SourceArgs)
	if err != nil {
		return err
	}

	scanned, err := w.extractor.Extract(ctx, units, args.Threads)
	if err != nil {
		return fmt.Errorf("scan sources: %w", err)
	}

	withSignatures := 0
	signatures := 0

	for _, unit := range scanned {
		if len(unit.Signatures) > 0 {
			withSignatures++
			signatures += len(unit.Signatures)
		}
	}

	doc := adapter.IndexDocument{
		GeneratedAt: w.now().UTC(),
		Repository:  repositoryName(args.Repo),
		GitRef:      args.GitRef,
		Files:       len(units) + len(skipped),
		Units:       scanned,
		Areas:       args.Areas,
		MaxPerFile:  args.MaxPerFile,
	}

	changes, err := w.indexStore.Write(args.Output, doc)
	if err != nil {
		return fmt.Errorf("write index: %w", err)
	}

	w.logger.Info("index written",
		slog.String("output", string(args.Output)),
		slog.Int("files", doc.Files),
		slog.Int("signatures", signatures))

	if changes.Replaced {
		w.logger.Debug("index units compared",
			slog.Int("changed", len(changes.Changed)),
			slog.Int("removed", len(changes.Removed)),
			slog.Int("unchanged", changes.Unchanged))
	}

	label := doc.Repository
	if args.GitRef != "" {
		label += "@" + args.GitRef
	}

	err = w.ui.DisplayIndex(m.IndexSummary{
		Output:     args.Output,
		Repository: label,
		Files:      doc.Files,
		Units:      withSignatures,
		Signatures: signatures,
		Skipped:    skipped,
		Diff:       changes.Diff,
		Replaced:   changes.Replaced,
		Changed:    changes.Changed,
		Removed:    changes.Removed,
		Unchanged:  changes.Unchanged,
	})
	if err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

// Coverage matches API entries against the reference documents and writes
// the gap report and snapshot.
func (w *workflow) Coverage(ctx context.Context, args CoverageArgs) error {
	if err := w.ui.Start(controller.WithCoverageMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	entries, err := w.loadEntries(ctx, args)
	if err != nil {
		return err
	}

	corpus, err := w.corpusAdapter.Load(adapter.CorpusArgs{
		References: args.References,
		Ignore:     []m.Path{args.Index, args.Output},
		Exclude:    args.Exclude,
	})
	if err != nil {
		return fmt.Errorf("load references: %w", err)
	}

	w.logSkipped("document", corpus.Skipped)
	w.logger.Debug("corpus loaded",
		slog.Int("documents", len(corpus.Documents)),
		slog.String("fingerprint", corpus.Fingerprint))

	partition, err := coverage.Analyze(ctx, entries, corpus.Text, args.Threads)
	if err != nil {
		return fmt.Errorf("analyze coverage: %w", err)
	}

	report := m.CoverageReport{
		GeneratedAt:       w.now().UTC(),
		Index:             absPath(args.Index),
		Output:            absPath(args.Output),
		References:        absPath(args.References),
		Documents:         corpus.Documents,
		CorpusFingerprint: corpus.Fingerprint,
		Summary:           partition.Summary(),
		Uncovered:         partition.UncoveredEntries(),
	}

	if args.Output != "" {
		if err := w.reportStore.WriteGapReport(args.Output, report); err != nil {
			return fmt.Errorf("write gap report: %w", err)
		}
	}

	if args.Reports != "" {
		if err := w.reportStore.SaveReports(args.Reports, report); err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
	}

	w.logger.Info("coverage analyzed",
		slog.Int("total", report.Summary.Total),
		slog.Int("covered", report.Summary.Covered),
		slog.Int("notCovered", report.Summary.NotCovered))

	return w.display(report, args.Stdout)
}

// View displays the last stored coverage snapshot.
func (w *workflow) View(args ViewArgs) error {
	if err := w.ui.Start(controller.WithViewMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	report, err := w.reportStore.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	return w.display(report, args.Stdout)
}

// Controls scans the sources, selects the control types and writes one
// reference page per control plus an index page.
func (w *workflow) Controls(ctx context.Context, args ControlsArgs) error {
	if err := w.ui.Start(controller.WithControlsMode()); err != nil {
		return fmt.Errorf("failed to start UI: %w", err)
	}
	defer w.ui.Close()

	units, skipped, err := w.loadUnits(args.SourceArgs)
	if err != nil {
		return err
	}

	scanned, err := w.extractor.Extract(ctx, units, args.Threads)
	if err != nil {
		return fmt.Errorf("scan sources: %w", err)
	}

	roots := args.Roots
	if len(roots) == 0 {
		roots = controls.DefaultRoots
	}

	types := controls.Collect(scanned)
	selected := controls.Select(types, roots)

	doc := adapter.ControlsDocument{
		GeneratedAt: w.now().UTC(),
		Repository:  repositoryName(args.Repo),
		GitRef:      args.GitRef,
		TrimPrefix:  args.TrimPrefix,
		MaxMembers:  args.MaxMembers,
		Controls:    selected,
	}

	written, err := w.controlsStore.Write(args.Output, doc)
	if err != nil {
		return fmt.Errorf("write control references: %w", err)
	}

	w.logger.Info("control references written",
		slog.String("output", string(args.Output)),
		slog.Int("types", len(types)),
		slog.Int("controls", len(selected)))

	label := doc.Repository
	if args.GitRef != "" {
		label += "@" + args.GitRef
	}

	err = w.ui.DisplayControls(m.ControlsSummary{
		Output:     args.Output,
		Repository: label,
		Files:      len(units) + len(skipped),
		Types:      len(types),
		Controls:   len(selected),
		Written:    written,
		Skipped:    skipped,
	})
	if err != nil {
		return err
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) display(report m.CoverageReport, full bool) error {
	if err := w.ui.DisplayCoverage(report); err != nil {
		return err
	}

	if full {
		w.ui.DisplayReport(adapter.RenderGapReport(report))
	}

	w.ui.Wait()

	return nil
}

func (w *workflow) loadEntries(ctx context.Context, args CoverageArgs) ([]m.APIEntry, error) {
	if args.Index != "" {
		scanned, err := w.indexStore.Read(args.Index)
		if err != nil {
			return nil, fmt.Errorf("read index: %w", err)
		}

		return BuildEntries(scanned), nil
	}

	units, _, err := w.loadUnits(args.SourceArgs)
	if err != nil {
		return nil, err
	}

	scanned, err := w.extractor.Extract(ctx, units, args.Threads)
	if err != nil {
		return nil, fmt.Errorf("scan sources: %w", err)
	}

	return BuildEntries(scanned), nil
}

func (w *workflow) loadUnits(args SourceArgs) ([]m.SourceUnit, []m.SkippedUnit, error) {
	var (
		units   []m.SourceUnit
		skipped []m.SkippedUnit
		err     error
	)

	if args.GitRef != "" {
		units, skipped, err = w.gitAdapter.Get(args.Repo, args.GitRef, args.Patterns)
	} else {
		units, skipped, err = w.fsAdapter.Get(args.Repo, args.Patterns)
	}

	if err != nil {
		return nil, nil, fmt.Errorf("get sources: %w", err)
	}

	w.logSkipped("source", skipped)

	return units, skipped, nil
}

func (w *workflow) logSkipped(what string, skipped []m.SkippedUnit) {
	for _, s := range skipped {
		w.logger.Warn("skipped "+what, slog.String("path", s.ID), slog.String("reason", s.Reason))
	}
}

func repositoryName(repo m.Path) string {
	if abs, err := filepath.Abs(string(repo)); err == nil {
		return filepath.Base(abs)
	}

	return filepath.Base(string(repo))
}

func absPath(p m.Path) m.Path {
	if p == "" {
		return ""
	}

	if abs, err := filepath.Abs(string(p)); err == nil {
		return m.Path(abs)
	}

	return p
}
