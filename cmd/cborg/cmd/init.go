package cmd

import (
	"fmt"

	"cborg/cli"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the home directory with a default config file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := cli.InitHomeDir(cmd)
		if err != nil {
			return err
		}
		fmt.Printf("Initialized %s.\n", homeDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
