package format

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/cloud-ru/fine-loan-simulator/internal/calculations"
)

// Encoding selects how a simulation is written out
type Encoding string

const (
	EncodingTable Encoding = "table"
	EncodingJSON  Encoding = "json"
	EncodingYAML  Encoding = "yaml"
)

// ParseEncoding accepts table, json or yaml
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(s); e {
	case EncodingTable, EncodingJSON, EncodingYAML:
		return e, nil
	case "":
		return EncodingTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table, json or yaml)", s)
	}
}

// Encode writes result in the requested encoding
func Encode(w io.Writer, result *calculations.SimulationResult, enc Encoding) error {
	switch enc {
	case EncodingTable, "":
		if err := WriteSummary(w, result); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		return WriteSchedule(w, result)
	case EncodingJSON:
		return encodeJSON(w, result)
	case EncodingYAML:
		return encodeYAML(w, result)
	default:
		return fmt.Errorf("unknown output format %q", enc)
	}
}

// EncodeComparison writes a comparison in the requested encoding
func EncodeComparison(w io.Writer, cmp *calculations.ComparisonResult, enc Encoding) error {
	switch enc {
	case EncodingTable, "":
		return WriteComparison(w, cmp)
	case EncodingJSON:
		return encodeJSON(w, cmp)
	case EncodingYAML:
		return encodeYAML(w, cmp)
	default:
		return fmt.Errorf("unknown output format %q", enc)
	}
}

func encodeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func encodeYAML(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return enc.Close()
}
