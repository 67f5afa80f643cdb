// Package output renders selection results as aligned text, JSON or YAML.
package output

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format represents the output format type.
type Format int

const (
	FormatText Format = iota
	FormatJSON
	FormatYAML
)

// ParseFormat maps a format name (text, json, yaml) to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "text", "table":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, fmt.Errorf("unsupported format %q, allowed: text, json, yaml", name)
	}
}

// Formatter is implemented by everything the CLI prints.
// FormatText renders a table; Data returns the value encoded for JSON and YAML.
type Formatter interface {
	FormatText() string
	Data() any
}

// FormatOutput formats the given Formatter based on the specified format.
func FormatOutput(f Formatter, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(f.Data(), "", "  ")
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatYAML:
		data, err := yaml.Marshal(f.Data())
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	default:
		return f.FormatText(), nil
	}
}
