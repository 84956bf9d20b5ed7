package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/five82/multable/internal/grid"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Defaults != DefaultRequest {
		t.Fatalf("Defaults = %+v, want %+v", cfg.Defaults, DefaultRequest)
	}
	if cfg.PreviewDebounce != 150*time.Millisecond {
		t.Fatalf("PreviewDebounce = %v, want 150ms", cfg.PreviewDebounce)
	}

	wantExport, err := expandPath(defaultExportDir)
	if err != nil {
		t.Fatalf("expandPath(defaultExportDir) returned error: %v", err)
	}
	if cfg.ExportDir != wantExport {
		t.Fatalf("ExportDir = %q, want %q", cfg.ExportDir, wantExport)
	}
	if !strings.HasPrefix(cfg.LogFile, home) {
		t.Fatalf("LogFile = %q, want it under HOME %q", cfg.LogFile, home)
	}
}

func TestLoad_ParsesAndClampsDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
preview_debounce_ms = 300
export_dir = "  ~/tables  "

[defaults]
min_column = -80
max_column = 12
min_row = 0
max_row = 99
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := grid.Request{
		Columns: grid.Range{Min: -50, Max: 12},
		Rows:    grid.Range{Min: 0, Max: 50},
	}
	if cfg.Defaults != want {
		t.Fatalf("Defaults = %+v, want %+v", cfg.Defaults, want)
	}
	if cfg.PreviewDebounce != 300*time.Millisecond {
		t.Fatalf("PreviewDebounce = %v, want 300ms", cfg.PreviewDebounce)
	}
	if cfg.ExportDir != filepath.Join(home, "tables") {
		t.Fatalf("ExportDir = %q, want %q", cfg.ExportDir, filepath.Join(home, "tables"))
	}
}

func TestLoad_PartialDefaultsKeepOthers(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
[defaults]
max_row = 4
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	want := DefaultRequest
	want.Rows.Max = 4
	if cfg.Defaults != want {
		t.Fatalf("Defaults = %+v, want %+v", cfg.Defaults, want)
	}
}

func TestLoad_EmptyValuesUseDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
preview_debounce_ms = 0
export_dir = "   "
log_file = ""
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	def := Default()
	if cfg.PreviewDebounce != def.PreviewDebounce || cfg.ExportDir != def.ExportDir || cfg.LogFile != def.LogFile {
		t.Fatalf("Load = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`export_dir = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestExpandPath_ExpandsTildeAndReturnsAbs(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandPath("~/a/b")
	if err != nil {
		t.Fatalf("expandPath returned error: %v", err)
	}
	want := filepath.Join(home, "a/b")
	if got != want {
		t.Fatalf("expandPath = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}
