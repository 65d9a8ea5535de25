package adapter

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar"
	"github.com/zeebo/blake3"

	m "github.com/mouse-blink/docgap/internal/model"
)

// DefaultCorpusExcludes keeps generated documents out of the corpus.
var DefaultCorpusExcludes = []string{"api-index-generated.md", "api-coverage-*.md"}

const corpusSeparator = "\n\n"

// Corpus is the concatenated text of the documentation set.
type Corpus struct {
	Documents   []m.Path
	Skipped     []m.SkippedUnit
	Text        string
	Fingerprint string
}

// CorpusArgs selects the documents that make up a corpus.
type CorpusArgs struct {
	References m.Path
	// Ignore lists files that are never part of the corpus, such as the
	// index being checked and the report being written.
	Ignore  []m.Path
	Exclude []string
}

// CorpusAdapter loads documentation markdown.
type CorpusAdapter interface {
	Load(args CorpusArgs) (Corpus, error)
}

// LocalCorpusAdapter reads markdown files from the local filesystem.
type LocalCorpusAdapter struct {
	fs SourceFSAdapter
}

// NewLocalCorpusAdapter constructs a LocalCorpusAdapter on top of fs.
func NewLocalCorpusAdapter(fs SourceFSAdapter) *LocalCorpusAdapter {
	return &LocalCorpusAdapter{fs: fs}
}

// Load collects every *.md file under References, sorted by path, and joins
// their contents with a blank line.
func (a *LocalCorpusAdapter) Load(args CorpusArgs) (Corpus, error) {
	root, err := normalizeRootPath(string(args.References))
	if err != nil {
		return Corpus{}, err
	}

	info, err := a.fs.FileInfo(m.Path(root))
	if err != nil || !info.IsDir() {
		return Corpus{}, fmt.Errorf("%w: %s", ErrReferencesNotFound, root)
	}

	ignored := make(map[string]struct{}, len(args.Ignore))

	for _, p := range args.Ignore {
		if p == "" {
			continue
		}

		if resolved, err := resolvePath(string(p)); err == nil {
			ignored[resolved] = struct{}{}
		}
	}

	excludes := append(append([]string{}, DefaultCorpusExcludes...), args.Exclude...)

	// Walk does not descend into a symlinked root, so walk the target and
	// report documents under the root as given.
	walkRoot, err := resolvePath(root)
	if err != nil {
		return Corpus{}, err
	}

	var docs []string

	err = a.fs.Walk(m.Path(walkRoot), true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		if resolved, err := resolvePath(path); err == nil {
			if _, skip := ignored[resolved]; skip {
				return nil
			}
		}

		rel, err := filepath.Rel(walkRoot, path)
		if err != nil {
			return err
		}

		excluded, err := isExcluded(filepath.ToSlash(rel), excludes)
		if err != nil {
			return err
		}

		if !excluded {
			docs = append(docs, filepath.Join(root, rel))
		}

		return nil
	})
	if err != nil {
		return Corpus{}, fmt.Errorf("walk %s: %w", root, err)
	}

	sort.Strings(docs)

	corpus := Corpus{}
	parts := make([]string, 0, len(docs))

	for _, doc := range docs {
		data, err := a.fs.ReadFile(m.Path(doc))
		if err != nil {
			corpus.Skipped = append(corpus.Skipped, m.SkippedUnit{ID: doc, Reason: err.Error()})

			continue
		}

		if !utf8.Valid(data) {
			corpus.Skipped = append(corpus.Skipped, m.SkippedUnit{ID: doc, Reason: "not valid UTF-8"})

			continue
		}

		corpus.Documents = append(corpus.Documents, m.Path(doc))
		parts = append(parts, string(data))
	}

	corpus.Text = strings.Join(parts, corpusSeparator)
	sum := blake3.Sum256([]byte(corpus.Text))
	corpus.Fingerprint = hex.EncodeToString(sum[:])

	return corpus, nil
}

// resolvePath returns the absolute form of p with symlinks evaluated. Paths
// that do not exist yet, such as a report about to be written, keep their
// absolute form.
func resolvePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}

	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved, nil
	}

	return abs, nil
}

// isExcluded matches patterns against the base name and the relative path.
func isExcluded(rel string, patterns []string) (bool, error) {
	base := filepath.Base(rel)

	for _, pattern := range patterns {
		for _, name := range []string{base, rel} {
			ok, err := doublestar.Match(pattern, name)
			if err != nil {
				return false, fmt.Errorf("exclude pattern %q: %w", pattern, err)
			}

			if ok {
				return true, nil
			}
		}
	}

	return false, nil
}
