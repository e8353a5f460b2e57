package loader

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Ricardo-TDP/ruleta/internal/wheel"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

func TestLoad_JSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "options.json", `[
		{"label": "tacos", "display_text": "Tacos 🌮", "color": "#E6194B"},
		{"label": "pizza"},
		{"label": "sushi", "color": "#3CB44B"}
	]`)

	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	want := []wheel.Option{
		{Label: "tacos", DisplayText: "Tacos 🌮", Color: "#E6194B"},
		{Label: "pizza"},
		{Label: "sushi", Color: "#3CB44B"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_YAML(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "options.yaml", `
- label: heads
  color: "#FFE119"
- label: tails
  display_text: Tails
`)

	got, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}

	want := []wheel.Option{
		{Label: "heads", Color: "#FFE119"},
		{Label: "tails", DisplayText: "Tails"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyFeed(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "options.json", `[]`)

	_, err := Load(context.Background(), path)
	if !errors.Is(err, wheel.ErrEmptyOptionSet) {
		t.Errorf("Load(empty feed) = %v, want ErrEmptyOptionSet", err)
	}
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	t.Parallel()

	_, err := Load(context.Background(), "options.toml")
	if err == nil {
		t.Error("Load(.toml) succeeded, want error")
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	t.Parallel()

	path := writeFile(t, "options.json", `{not json`)

	if _, err := Load(context.Background(), path); err == nil {
		t.Error("Load(malformed) succeeded, want error")
	}
}

func TestOptions_MissingLabel(t *testing.T) {
	t.Parallel()

	_, err := Options([]Record{
		{Label: "ok"},
		{Label: "   "},
	})
	if err == nil {
		t.Error("Options() accepted a blank label, want error")
	}
}
