package cmd

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/docgap/internal/adapter"
	"github.com/mouse-blink/docgap/internal/domain"
	"github.com/mouse-blink/docgap/internal/domain/controls"
	m "github.com/mouse-blink/docgap/internal/model"
)

const (
	defaultControlsDir        = "references/controls"
	defaultControlsTrimPrefix = "Avalonia.Controls"
)

const controlsLongDescription = `Scan the repository for class declarations, select every type that
derives from one of the root control types, and write one reference page
per control plus a README.md index into the output directory.

Restrict the scan to the control assemblies with --pattern, for example:

  docgap controls --pattern 'src/Avalonia.Controls*/**/*.cs'`

// controlsCmd represents the controls command.
var controlsCmd = newControlsCmd()

func newControlsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "controls",
		Short: "Generate one reference page per control type",
		Long:  controlsLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			return workflow.Controls(ctx, domain.ControlsArgs{
				SourceArgs: sourceArgs(),
				Output:     m.Path(viper.GetString("controls-output")),
				Roots:      viper.GetStringSlice("control-roots"),
				TrimPrefix: viper.GetString("controls-trim-prefix"),
				MaxMembers: viper.GetInt("max-members"),
			})
		},
	}
	cmd.Flags().StringP("output", "o", defaultControlsDir, "directory for the generated reference pages")
	cmd.Flags().StringArray("root", controls.DefaultRoots, "short name of a base type that makes a type a control (can be repeated)")
	cmd.Flags().String("trim-prefix", defaultControlsTrimPrefix, "namespace prefix dropped from page file names")
	cmd.Flags().Int("max-members", adapter.DefaultMaxMembers, "maximum public members listed per control")

	bindFlags(cmd.Flags(), map[string]string{
		"controls-output":      "output",
		"control-roots":        "root",
		"controls-trim-prefix": "trim-prefix",
		"max-members":          "max-members",
	})

	return cmd
}

func init() {
	rootCmd.AddCommand(controlsCmd)
}
