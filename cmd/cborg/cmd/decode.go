package cmd

import (
	"bytes"
	"fmt"

	"cborg/cbor"
	"cborg/cli"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var decodeCmd = &cobra.Command{
	Use:   "decode [input]",
	Short: "Decode CBOR into diagnostic notation.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cli.ReadInput(cmd, args)
		if err != nil {
			return err
		}

		indent := cfg.Output.Indent
		if cmd.Flags().Changed(cli.FlagIndent) {
			indent, _ = cmd.Flags().GetBool(cli.FlagIndent)
		}
		if compact, _ := cmd.Flags().GetBool(cli.FlagCompact); compact {
			indent = false
		}

		r := cbor.NewReader(bytes.NewReader(data))
		if err := applyMaxDepth(cmd, r); err != nil {
			return err
		}
		for r.HasMore() {
			item, err := r.ReadItem()
			if err != nil {
				return err
			}
			if indent {
				fmt.Println(item.Diagnostic(0))
			} else {
				fmt.Println(item.String())
			}
		}
		return nil
	},
}

func applyMaxDepth(cmd *cobra.Command, r *cbor.Reader) error {
	maxDepth := cfg.Decode.MaxDepth
	if cmd.Flags().Changed(cli.FlagMaxDepth) {
		maxDepth, _ = cmd.Flags().GetInt(cli.FlagMaxDepth)
	}
	if maxDepth < 0 {
		return errors.Errorf("max depth must be non-negative, got %d", maxDepth)
	}
	r.SetMaxDepth(maxDepth)
	return nil
}

func init() {
	decodeCmd.Flags().Bool(cli.FlagIndent, false, "Pretty-print nested items across multiple lines.")
	decodeCmd.Flags().Bool(cli.FlagCompact, false, "Render each item on a single line.")
	decodeCmd.Flags().Int(cli.FlagMaxDepth, 0, "Maximum nesting depth to follow. Zero disables the bound.")
	rootCmd.AddCommand(decodeCmd)
}
