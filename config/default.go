package config

import (
	"bytes"
	"io"
	"os"
	"path"
	"text/template"

	"cborg/log"

	"github.com/pkg/errors"
)

var DefaultConfig = Config{
	LogLevel: log.LevelWarn.String(),
	Decode: DecodeConfig{
		MaxDepth: 0,
	},
	Output: OutputConfig{
		Indent: true,
	},
}

const defaultConfigTemplateText = `# cborg Config File

# Sets the log level. Can be one of the following values:
# - error
# - warn
# - info
# - debug
log_level = "{{.LogLevel}}"

# Configures the decoder.
[decode]
  # Bounds how deeply nested input may be before decoding fails.
  # Zero disables the bound, which matches the wire format itself.
  max_depth = {{.Decode.MaxDepth}}

# Configures output rendering.
[output]
  # Pretty-prints diagnostic notation and JSON across multiple lines.
  indent = {{.Output.Indent}}
`

var defaultConfigTemplate *template.Template

func GenerateDefaultConfigFile() []byte {
	buf := new(bytes.Buffer)
	if err := defaultConfigTemplate.Execute(buf, DefaultConfig); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

func ReadConfigFile(homeDir string) (*Config, error) {
	f, err := os.OpenFile(path.Join(homeDir, "config.toml"), os.O_RDONLY, 0755)
	if err != nil {
		return nil, errors.Wrap(err, "error opening config file for reading")
	}
	defer f.Close()
	cfg, err := ReadConfig(f)
	if err != nil {
		return nil, errors.Wrap(err, "error reading config file")
	}
	return cfg, nil
}

func WriteDefaultConfigFile(homeDir string) error {
	f, err := os.OpenFile(path.Join(homeDir, "config.toml"), os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0755)
	if err != nil {
		return errors.Wrap(err, "error opening config file for writing")
	}
	defer f.Close()
	rd := bytes.NewReader(GenerateDefaultConfigFile())
	if _, err := io.Copy(f, rd); err != nil {
		return errors.Wrap(err, "error writing config file")
	}
	return nil
}

func init() {
	tmpl := template.New("defaultConfig")
	t, err := tmpl.Parse(defaultConfigTemplateText)
	if err != nil {
		panic(err)
	}
	defaultConfigTemplate = t
}
