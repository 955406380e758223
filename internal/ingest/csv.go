package ingest

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/KaramelBytes/datalens-cli/internal/profile"
)

// LoadCSV decodes a delimited text file. Cells arrive untyped: an empty cell
// is Missing and everything else is Text.
func LoadCSV(path string, opt Options) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	res, err := ReadCSV(f, opt, filepath.Base(path))
	if err != nil {
		return nil, err
	}
	return res, nil
}

// ReadCSV decodes delimited text from r. name labels the result.
func ReadCSV(r io.Reader, opt Options, name string) (*Result, error) {
	br := bufio.NewReader(r)
	delim := opt.Delimiter
	if delim == 0 {
		delim = sniffDelimiter(br, name)
	}
	cr := csv.NewReader(br)
	cr.Comma = delim
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	res := &Result{Name: name}
	rawHeader, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			res.Table = profile.NewTable(nil)
			return res, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	header, warnings := normalizeHeader(rawHeader)
	res.Warnings = append(res.Warnings, warnings...)

	maxRows := opt.MaxRows
	var rows [][]profile.Value
	var ragged int
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(rows)+1, err)
		}
		if blankRecord(rec) {
			continue
		}
		if maxRows > 0 && len(rows) >= maxRows {
			res.Truncated = true
			break
		}
		if len(rec) > len(header) {
			ragged++
		}
		row := make([]profile.Value, len(rec))
		for j, cell := range rec {
			if cell == "" {
				row[j] = profile.Missing()
				continue
			}
			row[j] = profile.Text(cell)
		}
		rows = append(rows, row)
	}
	if ragged > 0 {
		res.Warnings = append(res.Warnings, fmt.Sprintf("dropped extra fields on %d rows wider than the header", ragged))
	}
	if res.Truncated {
		res.Warnings = append(res.Warnings, fmt.Sprintf("read only the first %d rows due to MaxRows", maxRows))
	}
	res.Table = profile.FromRows(header, rows)
	return res, nil
}

// sniffDelimiter picks the most frequent of ',', ';' and '\t' on the first
// line. A .tsv name forces tab.
func sniffDelimiter(br *bufio.Reader, name string) rune {
	if strings.HasSuffix(strings.ToLower(name), ".tsv") {
		return '\t'
	}
	peek, _ := br.Peek(4 << 10)
	line := string(peek)
	if i := strings.IndexAny(line, "\r\n"); i >= 0 {
		line = line[:i]
	}
	best, bestN := ',', 0
	for _, d := range []rune{',', ';', '\t'} {
		if n := strings.Count(line, string(d)); n > bestN {
			best, bestN = d, n
		}
	}
	return best
}

// blankRecord reports a line with a single empty field, which the decoder
// yields for whitespace-only lines.
func blankRecord(rec []string) bool {
	return len(rec) == 1 && strings.TrimSpace(rec[0]) == ""
}
