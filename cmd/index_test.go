package cmd

import (
	"bytes"
	"errors"
	"testing"

	"github.com/mouse-blink/docgap/internal/domain"
	domainmocks "github.com/mouse-blink/docgap/internal/domain/mocks"
	m "github.com/mouse-blink/docgap/internal/model"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestIndexCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newIndexCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Index(mock.Anything, mock.MatchedBy(func(args domain.IndexArgs) bool {
		return args.Repo == m.Path(".") &&
			args.GitRef == "" &&
			len(args.Patterns) == 1 && args.Patterns[0] == "**/*.cs" &&
			args.Output == m.Path("references/api-index-generated.md") &&
			args.MaxPerFile == 300 &&
			args.Threads > 0
	})).Return(nil)

	cmd.SetArgs([]string{"index"})
	require.NoError(t, cmd.Execute())
}

func TestIndexCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newIndexCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Index(mock.Anything, mock.MatchedBy(func(args domain.IndexArgs) bool {
		return args.Repo == m.Path("../lib") &&
			args.GitRef == "v2.0.0" &&
			len(args.Patterns) == 2 && args.Patterns[1] == "tools/**/*.cs" &&
			args.Output == m.Path("out/api.md") &&
			args.MaxPerFile == 10 &&
			args.Threads == 3
	})).Return(nil)

	cmd.SetArgs([]string{
		"--repo", "../lib",
		"--git-ref", "v2.0.0",
		"--pattern", "src/**/*.cs",
		"--pattern", "tools/**/*.cs",
		"-p", "3",
		"index",
		"-o", "out/api.md",
		"--max-per-file", "10",
	})
	require.NoError(t, cmd.Execute())
}

func TestIndexCmd_PropagatesError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newIndexCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.EXPECT().Index(mock.Anything, mock.Anything).Return(errors.New("boom"))

	cmd.SetArgs([]string{"index"})
	require.EqualError(t, cmd.Execute(), "boom")
}
