package adapter

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	m "github.com/mouse-blink/docgap/internal/model"
)

// DefaultMaxPerFile caps the signatures printed per source unit.
const DefaultMaxPerFile = 300

const indexTimeLayout = "2006-01-02 15:04:05Z"

var (
	indexUnitRe      = regexp.MustCompile("^### `([^`]+)`\\s*$")
	indexNamespaceRe = regexp.MustCompile("^- Namespace: `([^`]+)`\\s*$")
	indexHashRe      = regexp.MustCompile("^- Hash: `([0-9a-f]+)`\\s*$")
	indexEntryRe     = regexp.MustCompile("^- `([^`]+)`\\s*$")
)

// IndexDocument is everything rendered into an API index.
type IndexDocument struct {
	GeneratedAt time.Time
	Repository  string
	GitRef      string
	Files       int
	Units       []m.UnitSignatures
	Areas       []m.Area
	MaxPerFile  int
}

// Signatures returns the number of signatures across all units.
func (d IndexDocument) Signatures() int {
	total := 0
	for _, u := range d.Units {
		total += len(u.Signatures)
	}

	return total
}

// IndexChanges compares a freshly written index with the document it
// replaced. Units are compared by content hash when both sides carry one,
// otherwise by their rendered signatures.
type IndexChanges struct {
	Replaced  bool
	Diff      string
	Changed   []string
	Removed   []string
	Unchanged int
}

// IndexStore persists the API index markdown document.
type IndexStore interface {
	// Write renders doc to path and reports what changed against the
	// document previously stored there, if any.
	Write(path m.Path, doc IndexDocument) (IndexChanges, error)
	// Read parses an index back into per-unit signatures.
	Read(path m.Path) ([]m.UnitSignatures, error)
}

type indexStore struct{}

// NewIndexStore constructs an IndexStore backed by the local filesystem.
func NewIndexStore() IndexStore {
	return &indexStore{}
}

func (s *indexStore) Write(path m.Path, doc IndexDocument) (IndexChanges, error) {
	rendered := RenderIndex(doc)

	previous, err := os.ReadFile(string(path))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return IndexChanges{}, fmt.Errorf("read previous index: %w", err)
	}

	if err := writeFile(path, []byte(rendered)); err != nil {
		return IndexChanges{}, err
	}

	if previous == nil {
		return IndexChanges{}, nil
	}

	diff, err := diffIndexes(string(previous), rendered)
	if err != nil {
		return IndexChanges{}, err
	}

	changes := CompareUnits(ParseIndex(string(previous)), ParseIndex(rendered))
	changes.Diff = diff

	return changes, nil
}

func (s *indexStore) Read(path m.Path) ([]m.UnitSignatures, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrIndexNotFound, path)
		}

		return nil, fmt.Errorf("read index: %w", err)
	}

	return ParseIndex(string(data)), nil
}

// RenderIndex renders doc as markdown, grouping units by area.
func RenderIndex(doc IndexDocument) string {
	maxPerFile := doc.MaxPerFile
	if maxPerFile <= 0 {
		maxPerFile = DefaultMaxPerFile
	}

	byArea := make(map[string][]m.UnitSignatures)

	for _, unit := range doc.Units {
		if len(unit.Signatures) == 0 {
			continue
		}

		area := AreaFor(unit.Unit, doc.Areas)
		byArea[area] = append(byArea[area], unit)
	}

	areas := make([]string, 0, len(byArea))
	for area := range byArea {
		areas = append(areas, area)
	}

	sort.Strings(areas)

	var b strings.Builder

	label := doc.Repository
	if doc.GitRef != "" {
		label += "@" + doc.GitRef
	}

	b.WriteString("# Public API Index (Generated)\n\n")
	fmt.Fprintf(&b, "- Generated at (UTC): `%s`\n", doc.GeneratedAt.UTC().Format(indexTimeLayout))
	fmt.Fprintf(&b, "- Repository: `%s`\n", label)

	if doc.GitRef != "" {
		fmt.Fprintf(&b, "- Git ref: `%s`\n", doc.GitRef)
	}

	fmt.Fprintf(&b, "- Files scanned: `%d`\n", doc.Files)
	fmt.Fprintf(&b, "- Captured public signatures: `%d`\n\n", doc.Signatures())

	b.WriteString("## Regenerate\n\n```bash\n")
	b.WriteString("docgap index --repo <path-to-repo>")

	if doc.GitRef != "" {
		fmt.Fprintf(&b, " --git-ref %s", doc.GitRef)
	}

	b.WriteString("\n```\n")

	for _, area := range areas {
		units := byArea[area]
		sort.SliceStable(units, func(i, j int) bool { return units[i].Unit < units[j].Unit })

		fmt.Fprintf(&b, "\n## %s\n", area)

		for _, unit := range units {
			fmt.Fprintf(&b, "\n### `%s`\n", unit.Unit)

			if unit.Namespace != "" {
				fmt.Fprintf(&b, "- Namespace: `%s`\n", unit.Namespace)
			}

			if unit.Hash != "" {
				fmt.Fprintf(&b, "- Hash: `%s`\n", unit.Hash)
			}

			shown := unit.Signatures
			if len(shown) > maxPerFile {
				shown = shown[:maxPerFile]
			}

			for _, sig := range shown {
				fmt.Fprintf(&b, "- `%s`\n", sig)
			}

			if hidden := len(unit.Signatures) - len(shown); hidden > 0 {
				fmt.Fprintf(&b, "- `... %d more signatures omitted (increase --max-per-file to include them).`\n", hidden)
			}
		}
	}

	return b.String()
}

// ParseIndex reads unit headings, namespaces, content hashes and signature
// bullets from an index. Bullets that do not start with "public " are
// ignored.
func ParseIndex(text string) []m.UnitSignatures {
	var units []m.UnitSignatures

	current := -1

	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())

		if match := indexUnitRe.FindStringSubmatch(line); match != nil {
			units = append(units, m.UnitSignatures{Unit: match[1]})
			current = len(units) - 1

			continue
		}

		if match := indexNamespaceRe.FindStringSubmatch(line); match != nil {
			if current >= 0 {
				units[current].Namespace = match[1]
			}

			continue
		}

		if match := indexHashRe.FindStringSubmatch(line); match != nil {
			if current >= 0 {
				units[current].Hash = match[1]
			}

			continue
		}

		match := indexEntryRe.FindStringSubmatch(line)
		if match == nil || !strings.HasPrefix(match[1], "public ") {
			continue
		}

		if current < 0 {
			units = append(units, m.UnitSignatures{Unit: "<unknown>"})
			current = len(units) - 1
		}

		units[current].Signatures = append(units[current].Signatures, match[1])
	}

	return units
}

// CompareUnits reports which units of current are new or differ from
// previous, and which units of previous are gone. Both sides are expected
// in the shape ParseIndex returns.
func CompareUnits(previous, current []m.UnitSignatures) IndexChanges {
	changes := IndexChanges{Replaced: true}

	before := make(map[string]m.UnitSignatures, len(previous))
	for _, unit := range previous {
		before[unit.Unit] = unit
	}

	seen := make(map[string]bool, len(current))

	for _, unit := range current {
		seen[unit.Unit] = true

		old, ok := before[unit.Unit]
		if ok && sameUnit(old, unit) {
			changes.Unchanged++

			continue
		}

		changes.Changed = append(changes.Changed, unit.Unit)
	}

	for _, unit := range previous {
		if !seen[unit.Unit] {
			changes.Removed = append(changes.Removed, unit.Unit)
		}
	}

	return changes
}

func sameUnit(a, b m.UnitSignatures) bool {
	if a.Hash != "" && b.Hash != "" {
		return a.Hash == b.Hash
	}

	return slices.Equal(a.Signatures, b.Signatures)
}

// AreaFor returns the name of the first area whose prefix matches unit.
func AreaFor(unit string, areas []m.Area) string {
	for _, area := range areas {
		if strings.HasPrefix(unit, area.Prefix) {
			return area.Name
		}
	}

	return m.DefaultArea
}

// diffIndexes compares the unit headings and signature bullets of two index
// documents. Header lines such as the timestamp are left out.
func diffIndexes(previous, current string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        indexBody(previous),
		B:        indexBody(current),
		FromFile: "previous",
		ToFile:   "current",
		Context:  1,
	}

	out, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("diff index: %w", err)
	}

	return out, nil
}

func indexBody(text string) []string {
	var body []string

	for _, line := range difflib.SplitLines(text) {
		trimmed := strings.TrimSpace(line)
		if indexUnitRe.MatchString(trimmed) || indexEntryRe.MatchString(trimmed) {
			body = append(body, line)
		}
	}

	return body
}
