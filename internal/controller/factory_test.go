package controller

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUI(t *testing.T) {
	tests := []struct {
		name   string
		useTTY bool
		check  func(t *testing.T, ui UI)
	}{
		{
			name:   "terminal output gets the interactive UI",
			useTTY: true,
			check: func(t *testing.T, ui UI) {
				assert.IsType(t, &TUI{}, ui)
			},
		},
		{
			name:   "redirected output gets plain text",
			useTTY: false,
			check: func(t *testing.T, ui UI) {
				assert.IsType(t, &SimpleUI{}, ui)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cmd := &cobra.Command{}
			cmd.SetOut(&buf)

			ui := NewUI(cmd, tt.useTTY)
			tt.check(t, ui)

			// Both variants write to the command's output, not os.Stdout.
			ui.DisplayReport("# API Coverage Gap Report\n")
			assert.Equal(t, "\n# API Coverage Gap Report\n", buf.String())
		})
	}
}

func TestNewUI_BufferedCommandOutputIsPlainText(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	ui := NewUI(cmd, IsTTY(cmd.OutOrStdout()))

	assert.IsType(t, &SimpleUI{}, ui)
}

func TestIsTTY(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		assert.False(t, IsTTY(&bytes.Buffer{}))
	})

	t.Run("regular file", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "gaps.md"))
		require.NoError(t, err)
		defer file.Close()

		assert.False(t, IsTTY(file))
	})

	t.Run("closed file", func(t *testing.T) {
		file, err := os.Create(filepath.Join(t.TempDir(), "closed.md"))
		require.NoError(t, err)
		require.NoError(t, file.Close())

		assert.False(t, IsTTY(file))
	})

	t.Run("null device", func(t *testing.T) {
		file, err := os.Open(os.DevNull)
		if err != nil {
			t.Skip("null device not available")
		}
		defer file.Close()

		assert.False(t, IsTTY(file), "a character device is not necessarily a terminal")
	})
}
