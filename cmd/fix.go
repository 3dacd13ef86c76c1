package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fixpass.dev/pkg/fixpass/internal/domain"
	m "fixpass.dev/pkg/fixpass/internal/model"
)

var (
	fixErrorCodesFlag      []int
	fixNamesFlag           []string
	fixInteractiveFlag     bool
	fixShowMultipleFlag    bool
	fixWriteFlag           bool
	fixOutputFolderFlag    string
	fixIgnoreGitStatusFlag bool
	fixMaxPassesFlag       int
	fixDiffFlag            bool
)

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [files...]",
		Short: "Apply code fixes to the project",
		Long:  fixLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Fix(cmd.Context(), domain.FixArgs{
				OracleArgs:      oracleArgs(),
				ErrorCodes:      viper.GetIntSlice(fixErrorCodesKey),
				FixNames:        viper.GetStringSlice(fixNamesKey),
				Files:           parsePaths(args),
				Interactive:     viper.GetBool(fixInteractiveKey),
				ShowMultiple:    viper.GetBool(fixShowMultipleKey),
				Write:           viper.GetBool(fixWriteKey),
				OutputFolder:    m.Path(viper.GetString(fixOutputFolderKey)),
				IgnoreGitStatus: viper.GetBool(fixIgnoreGitStatusKey),
				MaxPasses:       viper.GetInt(fixMaxPassesKey),
				ShowDiff:        viper.GetBool(fixDiffKey),
				Reports:         m.Path(viper.GetString(reportsConfigKey)),
			})
		},
	}

	configureFixFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}

func configureFixFlags(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.IntSliceVarP(&fixErrorCodesFlag, errorCodeFlagName, "e", viper.GetIntSlice(fixErrorCodesKey), "only fix diagnostics with these codes (can be repeated)")
	bindFlagToConfig(flags.Lookup(errorCodeFlagName), fixErrorCodesKey)

	flags.StringSliceVarP(&fixNamesFlag, fixNameFlagName, "f", viper.GetStringSlice(fixNamesKey), "only apply fixes with these names (can be repeated)")
	bindFlagToConfig(flags.Lookup(fixNameFlagName), fixNamesKey)

	flags.BoolVarP(&fixInteractiveFlag, interactiveFlagName, "i", viper.GetBool(fixInteractiveKey), "choose between competing fixes interactively")
	bindFlagToConfig(flags.Lookup(interactiveFlagName), fixInteractiveKey)

	flags.BoolVar(&fixShowMultipleFlag, showMultipleFlagName, viper.GetBool(fixShowMultipleKey), "ask only when several fixes answer the same problem")
	bindFlagToConfig(flags.Lookup(showMultipleFlagName), fixShowMultipleKey)

	flags.BoolVarP(&fixWriteFlag, writeFlagName, "w", viper.GetBool(fixWriteKey), "write the changed files (default: dry run)")
	bindFlagToConfig(flags.Lookup(writeFlagName), fixWriteKey)

	flags.StringVarP(&fixOutputFolderFlag, outputFolderFlagName, "o", viper.GetString(fixOutputFolderKey), "write changed files under this folder instead of in place")
	bindFlagToConfig(flags.Lookup(outputFolderFlagName), fixOutputFolderKey)

	flags.BoolVar(&fixIgnoreGitStatusFlag, ignoreGitStatusFlagName, viper.GetBool(fixIgnoreGitStatusKey), "write in place even when the working tree has uncommitted changes")
	bindFlagToConfig(flags.Lookup(ignoreGitStatusFlagName), fixIgnoreGitStatusKey)

	flags.IntVar(&fixMaxPassesFlag, maxPassesFlagName, viper.GetInt(fixMaxPassesKey), "maximum number of passes")
	bindFlagToConfig(flags.Lookup(maxPassesFlagName), fixMaxPassesKey)

	flags.BoolVar(&fixDiffFlag, diffFlagName, viper.GetBool(fixDiffKey), "print a unified diff of every changed file")
	bindFlagToConfig(flags.Lookup(diffFlagName), fixDiffKey)
}
