package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

const forceFlagName = "force"

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a subsume.yaml holding the default settings",
		Long: `Write subsume.yaml into the current directory with every setting at its
default: analysis switches (analyze.tcap, analyze.sanitize), the sanitized
CSV cache directory, the report file prefix, the results directory and the
log file rotation. Flags and SUBSUME_* environment variables are not copied
into the file.

An existing subsume.yaml is left untouched unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)
			config := defaultConfig()

			write := config.SafeWriteConfigAs
			if force {
				write = config.WriteConfigAs
			}

			if err := write(targetPath); err != nil {
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			cmd.Printf("Wrote default configuration to %s\n", targetPath)

			return nil
		},
	}

	cmd.Flags().BoolVar(&force, forceFlagName, false, "overwrite an existing "+configFileName)

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
