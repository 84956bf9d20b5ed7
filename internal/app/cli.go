package app

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/five82/multable/internal/config"
	"github.com/five82/multable/internal/export"
	"github.com/five82/multable/internal/form"
	"github.com/five82/multable/internal/grid"
)

// ParseSpan splits a "min:max" flag value into its two raw bounds.
func ParseSpan(s string) (lo, hi string, err error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return "", "", fmt.Errorf("range %q must look like min:max", s)
	}
	return strings.TrimSpace(lo), strings.TrimSpace(hi), nil
}

// FormatSpan is the inverse of ParseSpan.
func FormatSpan(r grid.Range) string {
	return fmt.Sprintf("%d:%d", r.Min, r.Max)
}

// ResolveRequest validates column and row spans with the same rules as the
// form. An empty span falls back to the matching range of defaults.
func ResolveRequest(cols, rows string, defaults grid.Request) (grid.Request, error) {
	if strings.TrimSpace(cols) == "" {
		cols = FormatSpan(defaults.Columns)
	}
	if strings.TrimSpace(rows) == "" {
		rows = FormatSpan(defaults.Rows)
	}

	var values form.Values
	var err error
	if values[form.MinColumn], values[form.MaxColumn], err = ParseSpan(cols); err != nil {
		return grid.Request{}, fmt.Errorf("--cols: %w", err)
	}
	if values[form.MinRow], values[form.MaxRow], err = ParseSpan(rows); err != nil {
		return grid.Request{}, fmt.Errorf("--rows: %w", err)
	}

	res := form.Validate(values)
	if req, ok := res.Request(); ok {
		return req, nil
	}
	var errs []error
	for _, f := range form.Fields {
		if msg := res.Error(f); msg != "" {
			errs = append(errs, fmt.Errorf("%s: %s", strings.ToLower(f.Label()), msg))
		}
	}
	return grid.Request{}, errors.Join(errs...)
}

// Print writes the table for req to w. Workbooks need a file; use
// ExportFile for those.
func Print(w io.Writer, req grid.Request, format export.Format) error {
	if format == export.FormatXLSX {
		return fmt.Errorf("format xlsx cannot be printed; use the export command")
	}
	return export.Write(w, grid.BuildRequest(req), format)
}

// ExportFile writes the table for req as a workbook and returns its path.
// An empty path places the file in the configured export directory.
func ExportFile(cfg config.Config, path string, req grid.Request) (string, error) {
	tbl := grid.BuildRequest(req)
	if strings.TrimSpace(path) == "" {
		path = filepath.Join(cfg.ExportDir, export.FileName(tbl))
	}
	if err := export.SaveXLSX(path, tbl); err != nil {
		return "", err
	}
	return path, nil
}
