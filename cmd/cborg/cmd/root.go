package cmd

import (
	"fmt"
	"os"

	"cborg/cli"
	"cborg/config"
	"cborg/log"

	"github.com/spf13/cobra"
)

// cfg carries the effective configuration for the invoked command: the
// defaults, overlaid by the home directory's config file when one exists.
var cfg = config.DefaultConfig

var rootCmd = &cobra.Command{
	Use:   "cborg",
	Short: "Decode, encode and inspect CBOR data items.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.CalledAs() != "init" {
			homeDir := cli.GetHomeDir(cmd)
			if exists, err := config.HomeDirExists(homeDir); err == nil && exists {
				fileCfg, err := config.ReadConfigFile(homeDir)
				if err != nil {
					return err
				}
				cfg = *fileCfg
			}
		}

		levelStr := cfg.LogLevel
		if cmd.Flags().Changed(cli.FlagLogLevel) {
			levelStr, _ = cmd.Flags().GetString(cli.FlagLogLevel)
		}
		level, err := log.NewLevel(levelStr)
		if err != nil {
			return err
		}
		log.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().String(cli.FlagHome, "~/.cborg", "Home directory for the tool's configuration.")
	rootCmd.PersistentFlags().String(cli.FlagLogLevel, config.DefaultConfig.LogLevel, "Log level.")
	rootCmd.PersistentFlags().Bool(cli.FlagHex, false, "Treat input as hex text regardless of source.")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
