package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/docgap/internal/model"
)

// SnapshotFile is the name of the coverage snapshot inside the reports directory.
const SnapshotFile = "latest.yaml"

// ErrNoSnapshot is returned when the reports directory holds no snapshot.
var ErrNoSnapshot = errors.New("no coverage snapshot found")

// ReportStore persists and retrieves coverage reports.
type ReportStore interface {
	// WriteGapReport renders the markdown gap report to path.
	WriteGapReport(path m.Path, report m.CoverageReport) error
	// SaveReports stores a YAML snapshot of report in dir.
	SaveReports(dir m.Path, report m.CoverageReport) error
	// LoadReports loads the snapshot stored in dir.
	LoadReports(dir m.Path) (m.CoverageReport, error)
}

type reportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (rs *reportStore) WriteGapReport(path m.Path, report m.CoverageReport) error {
	return writeFile(path, []byte(RenderGapReport(report)))
}

func (rs *reportStore) SaveReports(dir m.Path, report m.CoverageReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	return writeFile(m.Path(filepath.Join(string(dir), SnapshotFile)), data)
}

func (rs *reportStore) LoadReports(dir m.Path) (m.CoverageReport, error) {
	path := filepath.Join(string(dir), SnapshotFile)

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return m.CoverageReport{}, fmt.Errorf("%w in %s", ErrNoSnapshot, dir)
		}

		return m.CoverageReport{}, fmt.Errorf("read snapshot: %w", err)
	}

	var report m.CoverageReport
	if err := yaml.Unmarshal(data, &report); err != nil {
		return m.CoverageReport{}, fmt.Errorf("decode snapshot %s: %w", path, err)
	}

	return report, nil
}

// RenderGapReport renders the uncovered entries of report as markdown,
// grouped by source unit.
func RenderGapReport(report m.CoverageReport) string {
	var b strings.Builder

	b.WriteString("# API Coverage Gap Report\n\n")
	fmt.Fprintf(&b, "- API index: `%s`\n", displayPath(report.Index))
	fmt.Fprintf(&b, "- References scanned: `%s`\n", displayPath(report.References))
	fmt.Fprintf(&b, "- Reference docs scanned: `%d`\n", len(report.Documents))
	fmt.Fprintf(&b, "- API signatures parsed: `%d`\n", report.Summary.Total)
	fmt.Fprintf(&b, "- Covered APIs: `%d`\n", report.Summary.Covered)
	fmt.Fprintf(&b, "- Not covered APIs: `%d`\n\n", report.Summary.NotCovered)
	b.WriteString("## Not Covered API Signatures\n\n")

	if len(report.Uncovered) == 0 {
		b.WriteString("All parsed API signatures appear to be covered by the scanned docs.\n")

		return b.String()
	}

	groups := report.UncoveredBySource()

	sources := make([]string, 0, len(groups))
	for source := range groups {
		sources = append(sources, source)
	}

	sort.Strings(sources)

	for _, source := range sources {
		fmt.Fprintf(&b, "### `%s`\n", source)

		for _, entry := range groups[source] {
			fmt.Fprintf(&b, "- `%s`\n", entry.Signature)
		}

		b.WriteString("\n")
	}

	return b.String()
}

// displayPath shows path relative to the working directory when it lies
// below it.
func displayPath(path m.Path) string {
	if path == "" {
		return "-"
	}

	wd, err := os.Getwd()
	if err != nil {
		return filepath.ToSlash(string(path))
	}

	rel, err := filepath.Rel(wd, string(path))
	if err != nil || strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(string(path))
	}

	return filepath.ToSlash(rel)
}

func writeFile(path m.Path, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(string(path), data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}
