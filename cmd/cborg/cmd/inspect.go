package cmd

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"cborg/cbor"
	"cborg/cli"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const inspectPreviewLen = 48

var inspectCmd = &cobra.Command{
	Use:   "inspect [input]",
	Short: "Summarize each top-level data item in the input.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := cli.ReadInput(cmd, args)
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{
			"Offset",
			"Type",
			"Tag",
			"Size",
			"Preview",
		})

		r := cbor.NewReader(bytes.NewReader(data))
		if err := applyMaxDepth(cmd, r); err != nil {
			return err
		}
		for r.HasMore() {
			offset := r.BytesParsed()
			item, err := r.ReadItem()
			if err != nil {
				return err
			}

			tag := "-"
			if item.Tag() != cbor.Untagged {
				tag = strconv.FormatInt(int64(item.Tag()), 10)
			}
			table.Append([]string{
				fmt.Sprintf("%d", offset),
				item.MajorType().String(),
				tag,
				fmt.Sprintf("%d", r.BytesParsed()-offset),
				truncatePreview(item.String(), inspectPreviewLen),
			})
		}

		table.Render()
		return nil
	},
}

// truncatePreview shortens s to at most n bytes without splitting a
// multi-byte rune.
func truncatePreview(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}

func init() {
	inspectCmd.Flags().Int(cli.FlagMaxDepth, 0, "Maximum nesting depth to follow. Zero disables the bound.")
	rootCmd.AddCommand(inspectCmd)
}
