package base

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mitchellh/cli"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Render writes v to ui in the given format.
func Render(ui cli.Ui, format string, v interface{}) error {
	var out []byte
	var err error

	switch format {
	case FormatYAML:
		out, err = yaml.Marshal(v)
	case FormatJSON, "":
		out, err = json.MarshalIndent(v, "", "  ")
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("error rendering output: %w", err)
	}

	ui.Output(strings.TrimRight(string(out), "\n"))
	return nil
}
