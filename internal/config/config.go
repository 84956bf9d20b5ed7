package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/multable/internal/grid"
)

// Config captures the settings multable reads at startup.
type Config struct {
	Defaults        grid.Request
	PreviewDebounce time.Duration
	ExportDir       string
	LogFile         string
}

const (
	defaultConfigPath = "~/.config/multable/config.toml"
	defaultExportDir  = "~/Documents/multable"
	defaultLogFile    = "~/.local/state/multable/multable.log"
	defaultDebounceMS = 150
)

// DefaultRequest is the table the form starts with.
var DefaultRequest = grid.Request{
	Columns: grid.Range{Min: 1, Max: 10},
	Rows:    grid.Range{Min: 1, Max: 10},
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Defaults:        DefaultRequest,
		PreviewDebounce: defaultDebounceMS * time.Millisecond,
		ExportDir:       mustExpand(defaultExportDir),
		LogFile:         mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Defaults struct {
			MinColumn *int `toml:"min_column"`
			MaxColumn *int `toml:"max_column"`
			MinRow    *int `toml:"min_row"`
			MaxRow    *int `toml:"max_row"`
		} `toml:"defaults"`
		PreviewDebounceMS int    `toml:"preview_debounce_ms"`
		ExportDir         string `toml:"export_dir"`
		LogFile           string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	// Initial values are clamped to the slider domain before first render.
	setClamped(&cfg.Defaults.Columns.Min, raw.Defaults.MinColumn)
	setClamped(&cfg.Defaults.Columns.Max, raw.Defaults.MaxColumn)
	setClamped(&cfg.Defaults.Rows.Min, raw.Defaults.MinRow)
	setClamped(&cfg.Defaults.Rows.Max, raw.Defaults.MaxRow)

	if raw.PreviewDebounceMS > 0 {
		cfg.PreviewDebounce = time.Duration(raw.PreviewDebounceMS) * time.Millisecond
	}

	if dir := strings.TrimSpace(raw.ExportDir); dir != "" {
		cfg.ExportDir = mustExpand(dir)
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile = mustExpand(logFile)
	}

	return cfg, nil
}

// DefaultPath returns the config path used when none is given.
func DefaultPath() string {
	return mustExpand(defaultConfigPath)
}

func setClamped(dst *int, v *int) {
	if v == nil {
		return
	}
	*dst = grid.Clamp(*v)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
