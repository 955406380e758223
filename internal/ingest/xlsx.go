package ingest

import (
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/KaramelBytes/datalens-cli/internal/profile"
)

// LoadXLSX decodes one worksheet of an Excel workbook. The first row is the
// header. Boolean cells become Bool, cells whose displayed text is a number
// become Number and everything else stays Text, so formatted dates remain
// recognizable to type inference.
func LoadXLSX(path string, opt Options) (*Result, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheet, err := selectSheet(f, filepath.Base(path), opt)
	if err != nil {
		return nil, err
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}

	res := &Result{Name: filepath.Base(path), Sheet: sheet}
	start := firstNonBlank(rows)
	if start < 0 {
		res.Table = profile.NewTable(nil)
		return res, nil
	}
	header, warnings := normalizeHeader(rows[start])
	res.Warnings = append(res.Warnings, warnings...)

	var data [][]profile.Value
	for i := start + 1; i < len(rows); i++ {
		raw := rows[i]
		if blankRow(raw) {
			continue
		}
		if opt.MaxRows > 0 && len(data) >= opt.MaxRows {
			res.Truncated = true
			break
		}
		row := make([]profile.Value, len(raw))
		for j, text := range raw {
			if text == "" {
				row[j] = profile.Missing()
				continue
			}
			row[j] = cellValue(f, sheet, j+1, i+1, text)
		}
		data = append(data, row)
	}
	if res.Truncated {
		res.Warnings = append(res.Warnings, fmt.Sprintf("read only the first %d rows due to MaxRows", opt.MaxRows))
	}
	res.Table = profile.FromRows(header, data)
	return res, nil
}

// selectSheet resolves the requested sheet by name first, then by 1-based
// position, defaulting to the first sheet.
func selectSheet(f *excelize.File, file string, opt Options) (string, error) {
	sheets := f.GetSheetList()
	if opt.SheetName != "" {
		for _, s := range sheets {
			if strings.EqualFold(s, opt.SheetName) {
				return s, nil
			}
		}
		return "", &SheetNotFoundError{File: file, Sheet: opt.SheetName, Available: sheets}
	}
	idx := opt.SheetIndex
	if idx <= 0 {
		idx = 1
	}
	if idx > len(sheets) {
		return "", &SheetNotFoundError{File: file, Sheet: fmt.Sprintf("#%d", idx), Available: sheets}
	}
	return sheets[idx-1], nil
}

func cellValue(f *excelize.File, sheet string, col, row int, text string) profile.Value {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err == nil {
		if typ, err := f.GetCellType(sheet, ref); err == nil && typ == excelize.CellTypeBool {
			switch strings.ToUpper(text) {
			case "TRUE", "1":
				return profile.Bool(true)
			case "FALSE", "0":
				return profile.Bool(false)
			}
		}
	}
	if n, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return profile.Number(n)
	}
	return profile.Text(text)
}

func firstNonBlank(rows [][]string) int {
	for i, r := range rows {
		if !blankRow(r) {
			return i
		}
	}
	return -1
}

func blankRow(r []string) bool {
	for _, c := range r {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
