package app

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/multable/internal/config"
	"github.com/five82/multable/internal/prefs"
	"github.com/five82/multable/internal/ui"
)

// Options configure the multable TUI.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/multable/prefs.toml
}

// Run boots the TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	closeLog, err := setupLogging(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	log.Printf("multable starting: config=%s export_dir=%s", configPath, cfg.ExportDir)

	userPrefs := prefs.Load(opts.PrefsPath)

	uiOpts := ui.Options{
		Config:    cfg,
		ThemeName: userPrefs.Theme,
		FullHelp:  userPrefs.FullHelp,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(ctx, uiOpts)
}

// setupLogging sends the standard logger to path while the TUI owns the
// terminal. An empty path discards log output.
func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := tea.LogToFile(path, "multable")
	if err != nil {
		return nil, err
	}
	return func() { _ = f.Close() }, nil
}
