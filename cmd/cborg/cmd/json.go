package cmd

import (
	"bytes"
	"fmt"

	"cborg/cbor"
	"cborg/cli"
	"cborg/log"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

var jsonCmd = &cobra.Command{
	Use:   "json [input]",
	Short: "Project CBOR into JSON text.",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cli.ReadInput(cmd, args)
		if err != nil {
			return err
		}

		indent := cfg.Output.Indent
		if cmd.Flags().Changed(cli.FlagIndent) {
			indent, _ = cmd.Flags().GetBool(cli.FlagIndent)
		}

		lgr := log.WithComponent("json")
		r := cbor.NewReader(bytes.NewReader(data))
		if err := applyMaxDepth(cmd, r); err != nil {
			return err
		}
		for r.HasMore() {
			item, err := r.ReadItem()
			if err != nil {
				return err
			}
			if !item.IsValidJSON() {
				lgr.Warn("item has no faithful JSON representation, substituting placeholders")
			}
			out := []byte(item.JSONString())
			if indent {
				var pretty bytes.Buffer
				if err := json.Indent(&pretty, out, "", "\t"); err == nil {
					out = pretty.Bytes()
				}
			}
			fmt.Println(string(out))
		}
		return nil
	},
	Args: cobra.MaximumNArgs(1),
}

func init() {
	jsonCmd.Flags().Bool(cli.FlagIndent, false, "Pretty-print the JSON output.")
	jsonCmd.Flags().Int(cli.FlagMaxDepth, 0, "Maximum nesting depth to follow. Zero disables the bound.")
	rootCmd.AddCommand(jsonCmd)
}
