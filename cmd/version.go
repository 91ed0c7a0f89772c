package cmd

import (
	"polyhello/src"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Print the version number of polyhello",
	Aliases: []string{"v"},
	Args:    cobra.NoArgs,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := src.FormatVersion(src.VersionDetails(currentVersionInfo))
		if err != nil {
			return err
		}
		src.PrintBlue(cmd.OutOrStdout(), "polyhello version %s", v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
