// Package catalog loads test metadata snapshots from YAML or JSON files.
package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/ivoronin/testsel/internal/rule"
)

// Test is one collected test and its metadata snapshot.
type Test struct {
	ID   string
	Meta rule.Metadata
}

type document struct {
	Tests []map[string]any `yaml:"tests"`
}

// Load reads a catalog file. YAML (.yaml, .yml) and JSON (.json) are accepted.
func Load(path string) ([]Test, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("unsupported catalog format %q, use .yaml, .yml or .json", filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	tests, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return tests, nil
}

// Parse decodes catalog data. JSON input is handled as the YAML subset it is.
// Container keys (tag, bugs, env, ...) are merged under their canonical name
// and built-in property types are validated.
func Parse(data []byte) ([]Test, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	tests := make([]Test, 0, len(doc.Tests))
	seen := make(map[string]bool, len(doc.Tests))
	for i, raw := range doc.Tests {
		t, err := newTest(raw)
		if err != nil {
			return nil, fmt.Errorf("test #%d: %w", i+1, err)
		}
		if seen[t.ID] {
			return nil, fmt.Errorf("test #%d: duplicate id %q", i+1, t.ID)
		}
		seen[t.ID] = true
		tests = append(tests, t)
	}
	return tests, nil
}

func newTest(raw map[string]any) (Test, error) {
	meta := make(rule.Metadata, len(raw))
	for k, v := range raw {
		if !rule.IsContainer(k) {
			meta[k] = v
			continue
		}
		name, _ := rule.NormalizeContainer(k)
		items, err := containerItems(v)
		if err != nil {
			return Test{}, fmt.Errorf("container %q: %w", k, err)
		}
		existing, _ := meta[name].([]string)
		meta[name] = append(existing, items...)
	}

	id, err := findID(meta)
	if err != nil {
		return Test{}, err
	}
	if err := rule.ValidateBuiltInProps(meta); err != nil {
		return Test{}, fmt.Errorf("test %q: %w", id, err)
	}
	return Test{ID: id, Meta: meta}, nil
}

func findID(meta rule.Metadata) (string, error) {
	v, ok := meta.Lookup("id")
	if !ok || v == nil {
		return "", fmt.Errorf("missing id")
	}
	id, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("id should be of type [str], found %v of type %T", v, v)
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return "", fmt.Errorf("missing id")
	}
	return id, nil
}

func containerItems(v any) ([]string, error) {
	var items []string
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		items = strings.Split(val, ",")
	default:
		var err error
		items, err = cast.ToStringSliceE(v)
		if err != nil {
			return nil, err
		}
	}
	return rule.SetValue(items...).Set, nil
}
