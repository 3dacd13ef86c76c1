// Package cmd provides the root command and CLI setup for fixpass.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"fixpass.dev/pkg/fixpass/internal/adapter"
	"fixpass.dev/pkg/fixpass/internal/controller"
	"fixpass.dev/pkg/fixpass/internal/domain"
	m "fixpass.dev/pkg/fixpass/internal/model"
)

var goFileAdapter adapter.GoFileAdapter
var fsAdapter adapter.SourceFSAdapter
var toolRunner adapter.ToolRunnerAdapter
var gitAdapter adapter.GitAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// root-level flags shared by every command that analyses a project.
var (
	projectFlag       string
	excludePatterns   []string
	oracleFlag        string
	oracleCommandFlag []string
	extensionsFlag    []string
	reportsDirFlag    string
	verboseFlag       bool
	logFileFlag       string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	toolRunner = adapter.NewLocalToolRunnerAdapter(time.Duration(viper.GetInt64(oracleTimeoutKey)) * time.Second)
	gitAdapter = adapter.NewLocalGitAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(
		fsAdapter,
		goFileAdapter,
		toolRunner,
		gitAdapter,
		reportStore,
		ui,
	)
}

const rootLongDescription = `Fixpass applies the code fixes proposed by a diagnostics oracle to a
project, resolving overlapping and conflicting edits and re-running the
oracle until the edits converge.

By default the built-in Go oracle analyses .go files. Use --oracle command
together with --oracle-cmd to drive any linter that prints a JSON report.`

const fixLongDescription = `Apply code fixes to the project (default: current directory).

Without --write the run is a dry run: the changed files are listed but
nothing is written. Restrict the run with --error-code and --fix-name, and
pass files as arguments to fix only those files.`

const listLongDescription = `List the diagnostics reported for the project together with the names of
the fixes available for each of them.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "fixpass",
		Short: "Apply code fixes until the project converges",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&projectFlag, projectFlagName, "p", viper.GetString(projectConfigKey), "project root directory")
	bindFlagToConfig(flags.Lookup(projectFlagName), projectConfigKey)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringVar(&oracleFlag, oracleFlagName, viper.GetString(oracleKindKey), "diagnostics oracle: builtin or command")
	bindFlagToConfig(flags.Lookup(oracleFlagName), oracleKindKey)

	flags.StringArrayVar(&oracleCommandFlag, oracleCommandFlagName, viper.GetStringSlice(oracleCommandKey), "command line of the external oracle, one argument per flag")
	bindFlagToConfig(flags.Lookup(oracleCommandFlagName), oracleCommandKey)

	flags.StringSliceVar(&extensionsFlag, extensionsFlagName, viper.GetStringSlice(oracleExtensionsKey), "file extensions loaded for the external oracle (default: all files)")
	bindFlagToConfig(flags.Lookup(extensionsFlagName), oracleExtensionsKey)

	flags.StringVar(&reportsDirFlag, reportsFlagName, viper.GetString(reportsConfigKey), "directory holding fix run reports")
	bindFlagToConfig(flags.Lookup(reportsFlagName), reportsConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func oracleArgs() domain.OracleArgs {
	return domain.OracleArgs{
		Project:       m.Path(viper.GetString(projectConfigKey)),
		Oracle:        viper.GetString(oracleKindKey),
		OracleCommand: viper.GetStringSlice(oracleCommandKey),
		Extensions:    viper.GetStringSlice(oracleExtensionsKey),
		Exclude:       viper.GetStringSlice(excludeConfigKey),
	}
}
