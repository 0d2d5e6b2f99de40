package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const shortRevisionLength = 12

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the subsume build",
		Long: `Print the subsume module version, the Go release it was built with and,
for builds from a checkout, the VCS revision.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println(versionLine(debug.ReadBuildInfo()))
		},
	}
}

// versionLine renders build info as "subsume <version> <go> [rev <hash>[+dirty]]".
func versionLine(info *debug.BuildInfo, ok bool) string {
	if !ok || info == nil {
		return "subsume version unknown"
	}

	version := info.Main.Version
	if version == "" {
		version = "(devel)"
	}

	line := fmt.Sprintf("subsume %s %s", version, info.GoVersion)

	var revision, modified string

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			modified = setting.Value
		}
	}

	if revision == "" {
		return line
	}

	if len(revision) > shortRevisionLength {
		revision = revision[:shortRevisionLength]
	}

	line += " rev " + revision
	if modified == "true" {
		line += "+dirty"
	}

	return line
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
