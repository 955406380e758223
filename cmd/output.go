package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/datalens-cli/internal/ingest"
	"github.com/KaramelBytes/datalens-cli/internal/logging"
	"github.com/KaramelBytes/datalens-cli/internal/profile"
	"github.com/KaramelBytes/datalens-cli/internal/utils"
)

// Source identifies the profiled input.
type Source struct {
	File  string `json:"file" yaml:"file"`
	Sheet string `json:"sheet,omitempty" yaml:"sheet,omitempty"`
}

// Document is the serialized result of one profiling run.
type Document struct {
	ID          string           `json:"id" yaml:"id"`
	GeneratedAt string           `json:"generatedAt" yaml:"generatedAt"`
	Source      Source           `json:"source" yaml:"source"`
	Warnings    []string         `json:"warnings" yaml:"warnings"`
	Overview    profile.Overview `json:"overview" yaml:"overview"`
	Profile     profile.Profile  `json:"profile" yaml:"profile"`
}

// profileFile loads path and profiles it, logging decoder warnings.
func profileFile(ctx context.Context, path string, in ingest.Options, opt profile.Options) (*Document, error) {
	log := logging.WithFields(ctx, "file", path)
	start := time.Now()
	res, err := ingest.Load(path, in)
	if err != nil {
		return nil, err
	}
	for _, w := range res.Warnings {
		log.Warn(w)
	}
	p := profile.AnalyzeWithOptions(res.Table, opt)
	log.Debug("profiled",
		"rows", p.Shape.Rows,
		"columns", p.Shape.Columns,
		"duplicates", p.Duplicates,
		"elapsed", time.Since(start))

	warnings := res.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &Document{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Source:      Source{File: res.Name, Sheet: res.Sheet},
		Warnings:    warnings,
		Overview:    p.Overview(),
		Profile:     p,
	}, nil
}

// encode serializes a document as indented JSON or YAML.
func encode(doc *Document, format string) ([]byte, error) {
	switch format {
	case "yaml":
		b, err := yaml.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("marshal yaml: %w", err)
		}
		return b, nil
	default:
		b, err := utils.PrettyJSON(doc)
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	}
}
