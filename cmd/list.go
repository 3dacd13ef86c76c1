package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fixpass.dev/pkg/fixpass/internal/domain"
)

var (
	listErrorCodesFlag []int
	listFormatFlag     string
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [files...]",
		Short: "List diagnostics and the fixes available for them",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				OracleArgs: oracleArgs(),
				ErrorCodes: listErrorCodesFlag,
				Files:      parsePaths(args),
				Format:     viper.GetString(listFormatKey),
			})
		},
	}

	cmd.Flags().IntSliceVarP(&listErrorCodesFlag, errorCodeFlagName, "e", nil, "only list diagnostics with these codes (can be repeated)")
	cmd.Flags().StringVar(&listFormatFlag, formatFlagName, viper.GetString(listFormatKey), "output format: table, json or yaml")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), listFormatKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
