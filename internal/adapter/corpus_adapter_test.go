package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/docgap/internal/model"
)

func TestLocalCorpusAdapter_Load(t *testing.T) {
	t.Run("joins sorted markdown documents with a blank line", func(t *testing.T) {
		refs := t.TempDir()
		mustMkdir(t, filepath.Join(refs, "guides"))
		writeTestFile(t, filepath.Join(refs, "b.md"), "second")
		writeTestFile(t, filepath.Join(refs, "a.md"), "first")
		writeTestFile(t, filepath.Join(refs, "guides", "c.md"), "third")
		writeTestFile(t, filepath.Join(refs, "notes.txt"), "not markdown")

		corpus, err := NewLocalCorpusAdapter(NewLocalSourceFSAdapter()).Load(CorpusArgs{References: m.Path(refs)})
		require.NoError(t, err)

		assert.Equal(t, "first\n\nsecond\n\nthird", corpus.Text)
		assert.Equal(t, []m.Path{
			m.Path(filepath.Join(refs, "a.md")),
			m.Path(filepath.Join(refs, "b.md")),
			m.Path(filepath.Join(refs, "guides", "c.md")),
		}, corpus.Documents)
		assert.Len(t, corpus.Fingerprint, 64)
	})

	t.Run("excludes generated documents, ignored paths and user patterns", func(t *testing.T) {
		refs := t.TempDir()
		mustMkdir(t, filepath.Join(refs, "drafts"))
		writeTestFile(t, filepath.Join(refs, "guide.md"), "kept")
		writeTestFile(t, filepath.Join(refs, "api-index-generated.md"), "index")
		writeTestFile(t, filepath.Join(refs, "api-coverage-not-covered.md"), "report")
		writeTestFile(t, filepath.Join(refs, "custom-index.md"), "custom index")
		writeTestFile(t, filepath.Join(refs, "drafts", "wip.md"), "draft")

		corpus, err := NewLocalCorpusAdapter(NewLocalSourceFSAdapter()).Load(CorpusArgs{
			References: m.Path(refs),
			Ignore:     []m.Path{m.Path(filepath.Join(refs, "custom-index.md"))},
			Exclude:    []string{"drafts/*"},
		})
		require.NoError(t, err)

		assert.Equal(t, "kept", corpus.Text)
		assert.Len(t, corpus.Documents, 1)
	})

	t.Run("ignored paths match through a symlinked references directory", func(t *testing.T) {
		base := t.TempDir()
		docs := filepath.Join(base, "docs")
		mustMkdir(t, docs)
		writeTestFile(t, filepath.Join(docs, "guide.md"), "kept")
		writeTestFile(t, filepath.Join(docs, "index.md"), "index")
		writeTestFile(t, filepath.Join(docs, "gaps.md"), "report")

		refs := filepath.Join(base, "refs")
		if err := os.Symlink(docs, refs); err != nil {
			t.Skipf("symlinks not supported: %v", err)
		}

		corpus, err := NewLocalCorpusAdapter(NewLocalSourceFSAdapter()).Load(CorpusArgs{
			References: m.Path(refs),
			Ignore: []m.Path{
				m.Path(filepath.Join(docs, "index.md")),
				m.Path(filepath.Join(refs, "gaps.md")),
				m.Path(filepath.Join(refs, "not-written-yet.md")),
			},
		})
		require.NoError(t, err)

		assert.Equal(t, "kept", corpus.Text)
		assert.Equal(t, []m.Path{m.Path(filepath.Join(refs, "guide.md"))}, corpus.Documents)
	})

	t.Run("fingerprint follows content", func(t *testing.T) {
		refs := t.TempDir()
		writeTestFile(t, filepath.Join(refs, "a.md"), "one")

		adapter := NewLocalCorpusAdapter(NewLocalSourceFSAdapter())

		before, err := adapter.Load(CorpusArgs{References: m.Path(refs)})
		require.NoError(t, err)

		writeTestFile(t, filepath.Join(refs, "a.md"), "two")

		after, err := adapter.Load(CorpusArgs{References: m.Path(refs)})
		require.NoError(t, err)

		assert.NotEqual(t, before.Fingerprint, after.Fingerprint)
	})

	t.Run("undecodable documents are skipped", func(t *testing.T) {
		refs := t.TempDir()
		writeTestBytes(t, filepath.Join(refs, "bad.md"), []byte{0xff, 0xfe})
		writeTestFile(t, filepath.Join(refs, "good.md"), "good")

		corpus, err := NewLocalCorpusAdapter(NewLocalSourceFSAdapter()).Load(CorpusArgs{References: m.Path(refs)})
		require.NoError(t, err)

		assert.Equal(t, "good", corpus.Text)
		require.Len(t, corpus.Skipped, 1)
	})

	t.Run("missing references directory", func(t *testing.T) {
		_, err := NewLocalCorpusAdapter(NewLocalSourceFSAdapter()).Load(CorpusArgs{
			References: m.Path(filepath.Join(t.TempDir(), "missing")),
		})
		assert.ErrorIs(t, err, ErrReferencesNotFound)
	})
}
