package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/netgliffy/pkg/errors"
	"github.com/matzehuels/netgliffy/pkg/gliffy"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netgliffy.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if diff := cmp.Diff(gliffy.DefaultLayout(), cfg.Layout); diff != "" {
		t.Errorf("Default().Layout mismatch (-want +got):\n%s", diff)
	}
	if cfg.Preview != "" {
		t.Errorf("Default().Preview = %q, want empty", cfg.Preview)
	}
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeConfig(t, `
preview = "subnets.svg"

[layout]
columns = 8
spacing = 140
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := gliffy.DefaultLayout()
	want.Columns = 8
	want.Spacing = 140
	if diff := cmp.Diff(want, cfg.Layout); diff != "" {
		t.Errorf("Layout mismatch (-want +got):\n%s", diff)
	}
	if cfg.Preview != "subnets.svg" {
		t.Errorf("Preview = %q, want subnets.svg", cfg.Preview)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{"unknown key", "[layout]\ncolumnz = 4\n", "layout.columnz"},
		{"unknown table", "[render]\nstyle = \"x\"\n", "render"},
		{"bad syntax", "[layout\n", ""},
		{"wrong type", "[layout]\ncolumns = \"five\"\n", ""},
		{"invalid value", "[layout]\ncolumns = 0\n", "columns"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Fatalf("Load() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %q, want mention of %q", err, tt.wantMsg)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("Load() error = %v, want %s", err, errors.ErrCodeInvalidConfig)
	}
}
