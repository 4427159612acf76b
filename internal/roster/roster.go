// Package roster reads payroll calculation requests from JSON or YAML files.
package roster

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"payroll-engine/internal/model"
)

var ErrUnsupportedFormat = errors.New("unsupported roster format")

// Load reads the roster at path. The format is chosen by file extension.
func Load(path string) (*model.CalculationRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return DecodeJSON(f)
	case ".yaml", ".yml":
		return DecodeYAML(f)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

func DecodeJSON(r io.Reader) (*model.CalculationRequest, error) {
	var req model.CalculationRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("decode json roster: %w", err)
	}
	return &req, nil
}

// DecodeYAML converts the YAML document to its JSON form first so that
// strategy properties reach the builders as raw JSON.
func DecodeYAML(r io.Reader) (*model.CalculationRequest, error) {
	var doc any
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode yaml roster: %w", err)
	}

	b, err := json.Marshal(stringKeys(doc))
	if err != nil {
		return nil, fmt.Errorf("convert yaml roster: %w", err)
	}

	var req model.CalculationRequest
	if err := json.Unmarshal(b, &req); err != nil {
		return nil, fmt.Errorf("decode yaml roster: %w", err)
	}
	return &req, nil
}

// stringKeys rewrites mappings with non-string keys, such as `1: x`, into
// string-keyed maps so the document has a JSON form.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = stringKeys(val)
		}
		return m
	case map[string]any:
		for k, val := range t {
			t[k] = stringKeys(val)
		}
		return t
	case []any:
		for i, val := range t {
			t[i] = stringKeys(val)
		}
		return t
	}
	return v
}
