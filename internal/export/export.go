// Package export writes generated tables to files and text formats.
package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/five82/multable/internal/grid"
)

// Format names an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatTSV  Format = "tsv"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXLSX Format = "xlsx"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(name))); f {
	case FormatText, FormatTSV, FormatYAML, FormatJSON, FormatXLSX:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, tsv, yaml, json or xlsx)", name)
	}
}

// SheetName is the worksheet that holds an exported table.
const SheetName = "Table"

// Error reports a failed export.
type Error struct {
	Format Format
	Path   string
	Err    error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("export %s: %v", e.Format, e.Err)
	}
	return fmt.Sprintf("export %s to %s: %v", e.Format, e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// document is the structured form written by the YAML and JSON encoders.
type document struct {
	Label   string       `json:"label" yaml:"label"`
	Request grid.Request `json:"request" yaml:"request"`
	Columns []int        `json:"columns" yaml:"columns,flow"`
	Rows    []int        `json:"rows" yaml:"rows,flow"`
	Cells   [][]int      `json:"cells" yaml:"cells"`
}

func newDocument(t grid.Table) document {
	req := t.Request()
	return document{
		Label:   req.Label(),
		Request: req,
		Columns: t.Columns,
		Rows:    t.Rows,
		Cells:   t.Cells,
	}
}

// Write encodes t to w in the given format.
func Write(w io.Writer, t grid.Table, format Format) error {
	var err error
	switch format {
	case FormatText:
		_, err = io.WriteString(w, Text(t)+"\n")
	case FormatTSV:
		_, err = io.WriteString(w, TSV(t))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(newDocument(t)); err == nil {
			err = enc.Close()
		}
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(newDocument(t))
	case FormatXLSX:
		err = writeWorkbook(w, t)
	default:
		err = fmt.Errorf("unsupported format")
	}
	if err != nil {
		return &Error{Format: format, Err: err}
	}
	return nil
}

// Text renders t as a bordered plain-text table.
func Text(t grid.Table) string {
	g := t.Grid()
	if len(g) == 0 {
		return ""
	}
	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(g[0]...).
		Rows(g[1:]...).
		StyleFunc(func(row, col int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
		})
	return tbl.Render()
}

// TSV renders t as tab separated values, suitable for pasting into a
// spreadsheet.
func TSV(t grid.Table) string {
	var b strings.Builder
	for _, line := range t.Grid() {
		b.WriteString(strings.Join(line, "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

// SaveXLSX writes t as a workbook at path, creating parent directories.
func SaveXLSX(path string, t grid.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &Error{Format: FormatXLSX, Path: path, Err: err}
	}
	var buf bytes.Buffer
	if err := writeWorkbook(&buf, t); err != nil {
		return &Error{Format: FormatXLSX, Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &Error{Format: FormatXLSX, Path: path, Err: err}
	}
	return nil
}

// FileName returns the default export file name for t.
func FileName(t grid.Table) string {
	req := t.Request()
	return fmt.Sprintf("multable_c%d_%d_r%d_%d.xlsx", req.Columns.Min, req.Columns.Max, req.Rows.Min, req.Rows.Max)
}

func writeWorkbook(w io.Writer, t grid.Table) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("name sheet: %w", err)
	}

	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#DDE6F0"}},
	})
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	for j, c := range t.Columns {
		if err := setCell(f, j+2, 1, c); err != nil {
			return err
		}
	}
	for i, r := range t.Rows {
		if err := setCell(f, 1, i+2, r); err != nil {
			return err
		}
		for j, v := range t.Cells[i] {
			if err := setCell(f, j+2, i+2, v); err != nil {
				return err
			}
		}
	}

	if len(t.Columns) > 0 {
		end, _ := excelize.CoordinatesToCellName(len(t.Columns)+1, 1)
		if err := f.SetCellStyle(SheetName, "B1", end, header); err != nil {
			return fmt.Errorf("style header row: %w", err)
		}
	}
	if len(t.Rows) > 0 {
		end, _ := excelize.CoordinatesToCellName(1, len(t.Rows)+1)
		if err := f.SetCellStyle(SheetName, "A2", end, header); err != nil {
			return fmt.Errorf("style header column: %w", err)
		}
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:   t.Request().Label(),
		Creator: "multable",
	}); err != nil {
		return fmt.Errorf("doc props: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func setCell(f *excelize.File, col, row, v int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("cell name: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, v); err != nil {
		return fmt.Errorf("set %s: %w", cell, err)
	}
	return nil
}
