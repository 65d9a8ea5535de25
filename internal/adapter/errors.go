package adapter

import "errors"

// Sentinel errors returned by the adapters. Callers match them with errors.Is.
var (
	ErrRepoNotFound       = errors.New("repository directory not found")
	ErrReferencesNotFound = errors.New("references directory not found")
	ErrIndexNotFound      = errors.New("API index file not found")
	ErrNoFilesMatched     = errors.New("no files matched configured patterns")
	ErrNotGitRepository   = errors.New("not a git repository")
	ErrGitRefNotFound     = errors.New("git ref not found")
)
