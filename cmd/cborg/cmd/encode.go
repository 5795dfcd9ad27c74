package cmd

import (
	"bytes"
	"io"

	"cborg/cbor"
	"cborg/cli"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [input]",
	Short: "Encode JSON text into CBOR.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var data []byte
		var err error
		if len(args) > 0 {
			// The argument is the JSON text itself, never hex.
			data = []byte(args[0])
		} else {
			data, err = io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return errors.Wrap(err, "error reading stdin")
			}
		}

		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		for {
			var doc interface{}
			if err := dec.Decode(&doc); err == io.EOF {
				break
			} else if err != nil {
				return errors.Wrap(err, "error parsing JSON")
			}
			item, err := cbor.FromInterface(resolveNumbers(doc))
			if err != nil {
				return err
			}
			encoded, err := cbor.Encode(item)
			if err != nil {
				return err
			}
			if err := cli.WriteOutput(encoded); err != nil {
				return err
			}
		}
		return nil
	},
}

// resolveNumbers rewrites the json.Number nodes a UseNumber decode leaves
// behind into int64 where the text is integral and float64 otherwise.
func resolveNumbers(v interface{}) interface{} {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case []interface{}:
		for i, child := range x {
			x[i] = resolveNumbers(child)
		}
		return x
	case map[string]interface{}:
		for k, child := range x {
			x[k] = resolveNumbers(child)
		}
		return x
	}
	return v
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
