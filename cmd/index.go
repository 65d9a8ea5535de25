package cmd

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/docgap/internal/adapter"
	"github.com/mouse-blink/docgap/internal/domain"
	m "github.com/mouse-blink/docgap/internal/model"
)

const defaultIndexPath = "references/api-index-generated.md"

const indexLongDescription = `Scan the repository for public API declarations and write a markdown
API index grouped by area.

Areas are configured in .docgap.yaml:

  areas:
    - prefix: src/Controls/
      name: Controls

Units matching no prefix are listed under "Other".`

// indexCmd represents the index command.
var indexCmd = newIndexCmd()

func newIndexCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Generate the public API index",
		Long:  indexLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var areas []m.Area
			if err := viper.UnmarshalKey("areas", &areas); err != nil {
				return fmt.Errorf("invalid areas config: %w", err)
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			return workflow.Index(ctx, domain.IndexArgs{
				SourceArgs: sourceArgs(),
				Output:     m.Path(viper.GetString("index-output")),
				Areas:      areas,
				MaxPerFile: viper.GetInt("max-per-file"),
			})
		},
	}
	cmd.Flags().StringP("output", "o", defaultIndexPath, "path of the generated API index")
	cmd.Flags().Int("max-per-file", adapter.DefaultMaxPerFile, "maximum signatures listed per file before truncating")

	bindFlags(cmd.Flags(), map[string]string{
		"index-output": "output",
		"max-per-file": "max-per-file",
	})

	return cmd
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
