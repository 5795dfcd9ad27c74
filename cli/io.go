package cli

import (
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// ReadInput resolves a command's input bytes. A single argument is treated
// as a file path when it names an existing file and as inline hex
// otherwise; with no argument the input is read from stdin. Terminal stdin
// and the --hex flag are read as hex text.
func ReadInput(cmd *cobra.Command, args []string) ([]byte, error) {
	forceHex, _ := cmd.Flags().GetBool(FlagHex)

	if len(args) > 0 {
		arg := args[0]
		if stat, err := os.Stat(arg); err == nil && !stat.IsDir() {
			data, err := ioutil.ReadFile(arg)
			if err != nil {
				return nil, errors.Wrap(err, "error reading input file")
			}
			if forceHex {
				return decodeHexText(data)
			}
			return data, nil
		}
		return decodeHexText([]byte(arg))
	}

	data, err := ioutil.ReadAll(os.Stdin)
	if err != nil {
		return nil, errors.Wrap(err, "error reading stdin")
	}
	if forceHex || isatty.IsTerminal(os.Stdin.Fd()) {
		return decodeHexText(data)
	}
	return data, nil
}

func decodeHexText(data []byte) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\n' || r == '\r' || r == '\t' {
			return -1
		}
		return r
	}, string(data))
	cleaned = strings.TrimPrefix(cleaned, "0x")
	out, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, errors.Wrap(err, "input is not valid hex")
	}
	return out, nil
}

// WriteOutput writes binary output to stdout, hex-encoded when stdout is a
// terminal so raw bytes never hit an interactive session.
func WriteOutput(data []byte) error {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		fmt.Println(hex.EncodeToString(data))
		return nil
	}
	_, err := os.Stdout.Write(data)
	return err
}
