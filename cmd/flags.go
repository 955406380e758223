package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KaramelBytes/datalens-cli/internal/ingest"
	"github.com/KaramelBytes/datalens-cli/internal/profile"
)

// profileFlags are the decoding and profiling flags shared by analyze and
// analyze-batch. Unset flags defer to configuration.
type profileFlags struct {
	format     string
	delimiter  string
	sheetName  string
	sheetIndex int
	maxRows    int
	workers    int
	sampleSize int
	threshold  float64
	bins       int
	top        int
}

func (f *profileFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()
	fl.StringVar(&f.format, "format", "", "output format: json|yaml (default from config)")
	fl.StringVar(&f.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab' (auto-detect if omitted)")
	fl.StringVar(&f.sheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	fl.IntVar(&f.sheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	fl.IntVar(&f.maxRows, "max-rows", 0, "maximum data rows to read (0 = unlimited)")
	fl.IntVar(&f.workers, "workers", 0, "columns profiled in parallel (0 = all CPUs, 1 = sequential)")
	fl.IntVar(&f.sampleSize, "sample-size", 0, "values sampled for type inference")
	fl.Float64Var(&f.threshold, "threshold", 0, "fraction of sampled values a type needs, in (0, 1]")
	fl.IntVar(&f.bins, "bins", 0, "histogram bins for numeric columns")
	fl.IntVar(&f.top, "top", 0, "most frequent values kept per categorical column")
}

// resolve merges configuration with the flags the user actually set.
func (f *profileFlags) resolve(cmd *cobra.Command) (ingest.Options, profile.Options, string, error) {
	in := ingest.Options{SheetName: f.sheetName, SheetIndex: f.sheetIndex}
	opt := profile.DefaultOptions()
	format := "json"
	if cfg != nil {
		opt = cfg.ProfileOptions()
		in.MaxRows = cfg.MaxRows
		if cfg.OutputFormat != "" {
			format = cfg.OutputFormat
		}
	}

	fl := cmd.Flags()
	if f.delimiter != "" {
		switch f.delimiter {
		case ",":
			in.Delimiter = ','
		case "\t", "tab":
			in.Delimiter = '\t'
		case ";":
			in.Delimiter = ';'
		default:
			return in, opt, "", fmt.Errorf("unsupported --delimiter: %s", f.delimiter)
		}
	}
	if fl.Changed("max-rows") {
		if f.maxRows < 0 {
			return in, opt, "", fmt.Errorf("--max-rows must be >= 0")
		}
		in.MaxRows = f.maxRows
	}
	if fl.Changed("workers") {
		if f.workers < 0 {
			return in, opt, "", fmt.Errorf("--workers must be >= 0")
		}
		opt.Workers = f.workers
	}
	if fl.Changed("sample-size") {
		if f.sampleSize <= 0 {
			return in, opt, "", fmt.Errorf("--sample-size must be > 0")
		}
		opt.SampleSize = f.sampleSize
	}
	if fl.Changed("threshold") {
		if f.threshold <= 0 || f.threshold > 1 {
			return in, opt, "", fmt.Errorf("--threshold must be in (0, 1]")
		}
		opt.TypeThreshold = f.threshold
	}
	if fl.Changed("bins") {
		if f.bins <= 0 {
			return in, opt, "", fmt.Errorf("--bins must be > 0")
		}
		opt.Bins = f.bins
	}
	if fl.Changed("top") {
		if f.top <= 0 {
			return in, opt, "", fmt.Errorf("--top must be > 0")
		}
		opt.TopCategories = f.top
	}
	if f.format != "" {
		format = f.format
	}
	format = strings.ToLower(format)
	if format == "yml" {
		format = "yaml"
	}
	if format != "json" && format != "yaml" {
		return in, opt, "", fmt.Errorf("unsupported --format: %s (use json or yaml)", format)
	}
	return in, opt, format, nil
}
