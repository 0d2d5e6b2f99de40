package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gooze.dev/pkg/subsume/internal/domain"
	m "gooze.dev/pkg/subsume/internal/model"
)

var viewPrefixFlag string

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view RUN_DIR",
		Short: "View the reports of a previous analysis",
		Long:  "View the reports written by a previous analyze run from its run directory.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prefix := viper.GetString(reportPrefixKey)
			if cmd.Flags().Changed(prefixFlagName) {
				prefix = viewPrefixFlag
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{
				RunDir: m.Path(args[0]),
				Prefix: prefix,
			})
		},
	}

	cmd.Flags().StringVar(&viewPrefixFlag, prefixFlagName, viper.GetString(reportPrefixKey), "prefix of the report file names")

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
