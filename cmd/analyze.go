package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gooze.dev/pkg/subsume/internal/domain"
	m "gooze.dev/pkg/subsume/internal/model"
)

const analyzeLongDescription = `Analyze a mutant list and a kill matrix.

The mutant list is a CSV file with one mutant id per row. The kill matrix is
a CSV file with one row per (mutant, test) pair and a kill status column; a
row counts as a kill when its status is 1 or true. Columns are 0-based.

Reports are written to a timestamped directory below --output.`

var analyzeFlags struct {
	mutants          string
	mutantColumn     int
	killMatrix       string
	killMutantColumn int
	killTestColumn   int
	killStatusColumn int
	prefix           string
	tcap             bool
	sanitize         bool
}

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Build the subsumption hierarchy and write reports",
		Long:  analyzeLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.Analyze(cmd.Context(), analyzeArgs())
		},
	}

	configureAnalyzeFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func configureAnalyzeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVar(&analyzeFlags.mutants, mutantsFlagName, "", "CSV file listing the mutants")
	flags.IntVar(&analyzeFlags.mutantColumn, mutantColumnFlagName, 0, "column of the mutant id in the mutant list")
	flags.StringVar(&analyzeFlags.killMatrix, killMatrixFlagName, "", "CSV kill matrix with one row per mutant and test")
	flags.IntVar(&analyzeFlags.killMutantColumn, killMutantColumnFlagName, 0, "column of the mutant id in the kill matrix")
	flags.IntVar(&analyzeFlags.killTestColumn, killTestColumnFlagName, 1, "column of the test id in the kill matrix")
	flags.IntVar(&analyzeFlags.killStatusColumn, killStatusColumnFlagName, 2, "column of the kill status in the kill matrix")

	cobra.CheckErr(cmd.MarkFlagRequired(mutantsFlagName))
	cobra.CheckErr(cmd.MarkFlagRequired(killMatrixFlagName))

	flags.StringVar(&analyzeFlags.prefix, prefixFlagName, viper.GetString(reportPrefixKey), "prefix of every report file name")
	bindFlagToConfig(flags.Lookup(prefixFlagName), reportPrefixKey)

	flags.BoolVar(&analyzeFlags.tcap, tcapFlagName, viper.GetBool(analyzeTCAPKey), "compute TCAP scores")
	bindFlagToConfig(flags.Lookup(tcapFlagName), analyzeTCAPKey)

	flags.BoolVar(&analyzeFlags.sanitize, sanitizeFlagName, viper.GetBool(analyzeSanitizeKey), "replace empty cells with 0 before use")
	bindFlagToConfig(flags.Lookup(sanitizeFlagName), analyzeSanitizeKey)
}

func analyzeArgs() domain.AnalyzeArgs {
	return domain.AnalyzeArgs{
		Mutants: m.MutantListSource{
			Path:         m.Path(analyzeFlags.mutants),
			MutantColumn: analyzeFlags.mutantColumn,
		},
		KillMatrix: m.KillMatrixSource{
			Path:         m.Path(analyzeFlags.killMatrix),
			MutantColumn: analyzeFlags.killMutantColumn,
			TestColumn:   analyzeFlags.killTestColumn,
			StatusColumn: analyzeFlags.killStatusColumn,
		},
		Load: m.LoadOptions{
			Sanitize: viper.GetBool(analyzeSanitizeKey),
			UseCache: !viper.GetBool(noCacheFlagName),
			CacheDir: m.Path(viper.GetString(cacheDirKey)),
		},
		Output:   m.Path(viper.GetString(outputFlagName)),
		Prefix:   viper.GetString(reportPrefixKey),
		WithTCAP: viper.GetBool(analyzeTCAPKey),
	}
}
