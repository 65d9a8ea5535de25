package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mouse-blink/docgap/internal/domain"
	m "github.com/mouse-blink/docgap/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last coverage result",
		Long:  "View the coverage snapshot stored by the last coverage run in the reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			full, _ := cmd.Flags().GetBool("stdout")

			return workflow.View(domain.ViewArgs{
				Reports: m.Path(viper.GetString("reports")),
				Stdout:  full,
			})
		},
	}
	cmd.Flags().Bool("stdout", false, "also print the full report")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
