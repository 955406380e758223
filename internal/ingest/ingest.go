// Package ingest decodes tabular files into profile tables. It is the only
// place that knows about file formats; the profile package receives typed
// records and nothing else.
package ingest

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/datalens-cli/internal/profile"
)

// ErrUnsupported indicates a file extension no decoder handles.
var ErrUnsupported = errors.New("unsupported file format")

// Options controls decoding.
type Options struct {
	// Delimiter for CSV. If 0, sniffed from the first line among ',', ';', '\t'.
	Delimiter rune
	// SheetName selects an XLSX sheet (case-insensitive). Takes precedence over SheetIndex.
	SheetName string
	// SheetIndex is the 1-based XLSX sheet position; <= 0 means the first sheet.
	SheetIndex int
	// MaxRows caps the data rows read; 0 means unlimited.
	MaxRows int
}

// Result is a decoded table plus what the decoder noticed on the way.
type Result struct {
	Name      string
	Sheet     string
	Table     *profile.Table
	Truncated bool
	Warnings  []string
}

// SheetNotFoundError reports a requested sheet the workbook does not contain.
type SheetNotFoundError struct {
	File      string
	Sheet     string
	Available []string
}

func (e *SheetNotFoundError) Error() string {
	return fmt.Sprintf("sheet '%s' not found in workbook '%s'; available sheets: %s",
		e.Sheet, e.File, strings.Join(e.Available, ", "))
}

// Supported reports whether Load has a decoder for path's extension.
func Supported(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt", ".xlsx", ".xlsm":
		return true
	}
	return false
}

// Load decodes the file at path, choosing the decoder by extension.
func Load(path string, opt Options) (*Result, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv", ".tsv", ".txt":
		return LoadCSV(path, opt)
	case ".xlsx", ".xlsm":
		return LoadXLSX(path, opt)
	default:
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
	}
}

// normalizeHeader trims a UTF-8 BOM, names blank columns column_N and
// renames repeated names name_1, name_2, ... so every column is addressable.
func normalizeHeader(raw []string) ([]string, []string) {
	var warnings []string
	out := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	for i, h := range raw {
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if strings.TrimSpace(h) == "" {
			h = fmt.Sprintf("column_%d", i+1)
		}
		name := h
		for n := 1; used[name]; n++ {
			name = fmt.Sprintf("%s_%d", h, n)
		}
		if name != h {
			warnings = append(warnings, fmt.Sprintf("renamed duplicate column %q to %q", h, name))
		}
		used[name] = true
		out[i] = name
	}
	return out, warnings
}
