// Package loader turns external option feeds into wheel options. Any
// structured source works as long as it yields {label, display_text?,
// color?} records; the file extension selects the codec.
package loader

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	go_json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/Ricardo-TDP/ruleta/internal/wheel"
)

// Record is one option as it appears in a feed.
type Record struct {
	Label       string `json:"label"        yaml:"label"`
	DisplayText string `json:"display_text" yaml:"display_text"`
	Color       string `json:"color"        yaml:"color"`
}

// Load reads options from path, dispatching on the extension:
// .json, .yaml/.yml, or a sqlite database (.db/.sqlite/.sqlite3).
// An empty feed fails with wheel.ErrEmptyOptionSet.
func Load(ctx context.Context, path string) ([]wheel.Option, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return loadJSON(path)
	case ".yaml", ".yml":
		return loadYAML(path)
	case ".db", ".sqlite", ".sqlite3":
		return loadStore(ctx, path)
	default:
		return nil, fmt.Errorf("unsupported options format %q", ext)
	}
}

func loadJSON(path string) ([]wheel.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	var records []Record
	if err := go_json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return Options(records)
}

func loadYAML(path string) ([]wheel.Option, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file: %w", err)
	}

	var records []Record
	if err := yaml.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}
	return Options(records)
}

func loadStore(ctx context.Context, path string) ([]wheel.Option, error) {
	store, err := OpenStore(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	return store.List(ctx)
}

// Options converts feed records to wheel options. Records with a blank
// label are rejected; a malformed color is not fatal, wheel.Model.Load
// substitutes the palette color for that index. An empty feed fails with
// wheel.ErrEmptyOptionSet so callers never enable spinning on it.
func Options(records []Record) ([]wheel.Option, error) {
	if len(records) == 0 {
		return nil, wheel.ErrEmptyOptionSet
	}

	opts := make([]wheel.Option, 0, len(records))
	for i, r := range records {
		if strings.TrimSpace(r.Label) == "" {
			return nil, fmt.Errorf("option %d: missing label", i)
		}
		opts = append(opts, wheel.Option{
			Label:       r.Label,
			DisplayText: r.DisplayText,
			Color:       r.Color,
		})
	}
	return opts, nil
}
