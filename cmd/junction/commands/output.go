package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

type outputFormat string

const (
	formatRaw  outputFormat = "raw"
	formatYAML outputFormat = "yaml"
	formatJSON outputFormat = "json"
)

// rawer is implemented by results that have a bare one-line form.
type rawer interface {
	raw() string
}

// writeResult renders result to w in the requested format.
func writeResult(w io.Writer, format string, result rawer) error {
	switch outputFormat(format) {
	case formatRaw, "":
		_, err := fmt.Fprintln(w, result.raw())
		return err
	case formatYAML:
		data, err := yaml.Marshal(result)
		if err != nil {
			return fmt.Errorf("failed to format output: %w", err)
		}
		_, err = w.Write(data)
		return err
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}
