// Package adapter contains the filesystem, git and document adapters used by
// the docgap workflow.
package adapter

import (
	"bytes"
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

// DefaultSourcePatterns selects every C# file below the repository root.
var DefaultSourcePatterns = []string{"**/*.cs"}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when loading source units. It hides direct `os` access so the
// workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get resolves glob patterns relative to repo and loads every matched
	// file. Files that cannot be read or decoded are returned as skipped.
	Get(repo m.Path, patterns []string) ([]m.SourceUnit, []m.SkippedUnit, error)

	// Walk traverses the provided root path. When recursive is false the
	// implementation should limit itself to the root directory (no sub-dirs).
	Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// FileInfo returns metadata for a path so the domain can check existence or
	// distinguish between files and directories when necessary.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// FilepathWalkFunc mirrors the callback shape used by filepath.Walk. It is
// defined here to avoid leaking the standard-library type directly into the
// domain layer.
type FilepathWalkFunc func(path string, info os.FileInfo, err error) error

// LocalSourceFSAdapter reads source units from the local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get walks repo once and keeps every regular file whose repo-relative slash
// path matches one of patterns. Units are sorted by that path.
func (a *LocalSourceFSAdapter) Get(repo m.Path, patterns []string) ([]m.SourceUnit, []m.SkippedUnit, error) {
	root, err := normalizeRootPath(string(repo))
	if err != nil {
		return nil, nil, err
	}

	info, err := a.FileInfo(m.Path(root))
	if err != nil || !info.IsDir() {
		return nil, nil, fmt.Errorf("%w: %s", ErrRepoNotFound, root)
	}

	if len(patterns) == 0 {
		patterns = DefaultSourcePatterns
	}

	var matched []string

	err = a.Walk(m.Path(root), true, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if info.Name() == ".git" && path != root {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}

		ok, err := matchAny(patterns, filepath.ToSlash(rel))
		if err != nil {
			return err
		}

		if ok {
			matched = append(matched, filepath.ToSlash(rel))
		}

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walk %s: %w", root, err)
	}

	if len(matched) == 0 {
		return nil, nil, fmt.Errorf("%w under %s", ErrNoFilesMatched, root)
	}

	sort.Strings(matched)

	var (
		units   []m.SourceUnit
		skipped []m.SkippedUnit
	)

	for _, rel := range matched {
		data, err := a.ReadFile(m.Path(filepath.Join(root, filepath.FromSlash(rel))))
		if err != nil {
			skipped = append(skipped, m.SkippedUnit{ID: rel, Reason: err.Error()})

			continue
		}

		unit, ok := decodeUnit(rel, data)
		if !ok {
			skipped = append(skipped, m.SkippedUnit{ID: rel, Reason: "not valid UTF-8"})

			continue
		}

		units = append(units, unit)
	}

	return units, skipped, nil
}

// Walk iterates over files under root, optionally descending into subdirectories.
func (a *LocalSourceFSAdapter) Walk(root m.Path, recursive bool, fn FilepathWalkFunc) error {
	rootStr := string(root)

	return filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fn(path, info, err)
		}

		if info.IsDir() && !recursive && path != rootStr {
			return filepath.SkipDir
		}

		return fn(path, info, nil)
	})
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// decodeUnit validates data as UTF-8, drops a byte order mark and normalises
// line endings to LF. The unit hash is the BLAKE3 sum of the decoded bytes
// before line endings are normalised.
func decodeUnit(id string, data []byte) (m.SourceUnit, bool) {
	if !utf8.Valid(data) {
		return m.SourceUnit{}, false
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	sum := blake3.Sum256(data)

	text := strings.ReplaceAll(string(data), "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	return m.SourceUnit{ID: id, Hash: hex.EncodeToString(sum[:]), Text: text}, true
}

// matchAny reports whether rel matches one of the doublestar patterns.
func matchAny(patterns []string, rel string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(strings.TrimPrefix(pattern, "./"), rel)
		if err != nil {
			return false, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

func normalizeRootPath(root string) (string, error) {
	if strings.HasPrefix(root, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		suffix := strings.TrimPrefix(root, "~")
		suffix = strings.TrimPrefix(suffix, string(os.PathSeparator))
		root = filepath.Join(home, suffix)
	}

	if root == "" {
		root = "."
	}

	return filepath.Abs(root)
}
