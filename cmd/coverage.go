package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/docgap/internal/domain"
	m "github.com/mouse-blink/docgap/internal/model"
)

const (
	defaultReferencesDir = "references"
	defaultGapReportPath = "references/api-coverage-not-covered.md"
)

const coverageLongDescription = `Match every public API entry against the markdown documents in the
references directory and write a report of the entries that are never
mentioned.

Entries are read from the API index written by "docgap index". With --scan
the repository is scanned directly instead.

The index, the report itself and files named api-index-generated.md or
api-coverage-*.md are never treated as documentation.`

// coverageCmd represents the coverage command.
var coverageCmd = newCoverageCmd()

func newCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage",
		Short: "Report public APIs not covered by the reference docs",
		Long:  coverageLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			args := domain.CoverageArgs{
				SourceArgs: sourceArgs(),
				References: m.Path(viper.GetString("references")),
				Output:     m.Path(viper.GetString("report")),
				Exclude:    viper.GetStringSlice("exclude"),
				Reports:    m.Path(viper.GetString("reports")),
				Stdout:     viper.GetBool("stdout"),
			}
			if !viper.GetBool("scan") {
				args.Index = m.Path(viper.GetString("index"))
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			return workflow.Coverage(ctx, args)
		},
	}
	cmd.Flags().String("index", defaultIndexPath, "path of the API index to check")
	cmd.Flags().Bool("scan", false, "scan the repository instead of reading the API index")
	cmd.Flags().StringP("references", "r", defaultReferencesDir, "directory of markdown reference documents")
	cmd.Flags().StringP("output", "o", defaultGapReportPath, "path of the markdown gap report")
	cmd.Flags().StringArrayP("exclude", "x", nil, "exclude documents matching a glob on file name or relative path (can be repeated)")
	cmd.Flags().Bool("stdout", false, "also print the full report")

	bindFlags(cmd.Flags(), map[string]string{
		"index":      "index",
		"scan":       "scan",
		"references": "references",
		"report":     "output",
		"exclude":    "exclude",
		"stdout":     "stdout",
	})

	return cmd
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}
