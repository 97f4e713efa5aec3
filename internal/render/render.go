// Package render turns roll results and log views into the output
// formats the CLI offers. The engine itself never formats anything
// beyond its one-line breakdown.
package render

import (
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/cepheus-dice/internal/dice"
	"github.com/KirkDiggler/cepheus-dice/internal/errors"
)

// Format selects an output encoding
type Format string

const (
	// FormatText is the human-readable default
	FormatText Format = "text"

	// FormatJSON is indented JSON
	FormatJSON Format = "json"

	// FormatYAML is YAML
	FormatYAML Format = "yaml"
)

// ParseFormat validates a format flag value
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", errors.InvalidArgumentf("unknown output format %q (want text, json, or yaml)", s)
	}
}

// Text renders the one-line human breakdown of a roll result
func Text(result *dice.RollResult) string {
	return result.Description()
}

// JSON renders a view as indented JSON with a trailing newline
func JSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "failed to encode JSON")
	}
	return string(data) + "\n", nil
}

// YAML renders a view as YAML
func YAML(v interface{}) (string, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode YAML")
	}
	return string(data), nil
}

// Marshal renders a view in the requested structured format. Text output
// is assembled by the caller, not here.
func Marshal(v interface{}, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return JSON(v)
	case FormatYAML:
		return YAML(v)
	default:
		return "", errors.InvalidArgumentf("format %q is not a structured format", format)
	}
}
