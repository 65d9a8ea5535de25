package adapter

import (
	"errors"
	"fmt"
	"sort"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	m "github.com/mouse-blink/docgap/internal/model"
)

// GitSourceAdapter loads source units from a git revision without checking
// it out.
type GitSourceAdapter interface {
	Get(repo m.Path, ref string, patterns []string) ([]m.SourceUnit, []m.SkippedUnit, error)
}

// LocalGitSourceAdapter reads the object database of a local repository.
type LocalGitSourceAdapter struct{}

// NewLocalGitSourceAdapter constructs a LocalGitSourceAdapter.
func NewLocalGitSourceAdapter() *LocalGitSourceAdapter {
	return &LocalGitSourceAdapter{}
}

// Get resolves ref (branch, tag or commit) and loads every file of its tree
// that matches patterns.
func (a *LocalGitSourceAdapter) Get(repo m.Path, ref string, patterns []string) ([]m.SourceUnit, []m.SkippedUnit, error) {
	root, err := normalizeRootPath(string(repo))
	if err != nil {
		return nil, nil, err
	}

	r, err := gogit.PlainOpen(root)
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return nil, nil, fmt.Errorf("%w: %s", ErrNotGitRepository, root)
		}

		return nil, nil, fmt.Errorf("open %s: %w", root, err)
	}

	hash, err := r.ResolveRevision(plumbing.Revision(ref))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrGitRefNotFound, ref, err)
	}

	commit, err := r.CommitObject(*hash)
	if err != nil {
		return nil, nil, fmt.Errorf("read commit %s: %w", hash, err)
	}

	tree, err := commit.Tree()
	if err != nil {
		return nil, nil, fmt.Errorf("read tree of %s: %w", hash, err)
	}

	if len(patterns) == 0 {
		patterns = DefaultSourcePatterns
	}

	var (
		units   []m.SourceUnit
		skipped []m.SkippedUnit
	)

	err = tree.Files().ForEach(func(f *object.File) error {
		ok, err := matchAny(patterns, f.Name)
		if err != nil || !ok {
			return err
		}

		contents, err := f.Contents()
		if err != nil {
			skipped = append(skipped, m.SkippedUnit{ID: f.Name, Reason: err.Error()})

			return nil
		}

		unit, ok := decodeUnit(f.Name, []byte(contents))
		if !ok {
			skipped = append(skipped, m.SkippedUnit{ID: f.Name, Reason: "not valid UTF-8"})

			return nil
		}

		units = append(units, unit)

		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walk tree of %s: %w", ref, err)
	}

	if len(units) == 0 && len(skipped) == 0 {
		return nil, nil, fmt.Errorf("%w at %s", ErrNoFilesMatched, ref)
	}

	sort.Slice(units, func(i, j int) bool { return units[i].ID < units[j].ID })
	sort.Slice(skipped, func(i, j int) bool { return skipped[i].ID < skipped[j].ID })

	return units, skipped, nil
}
