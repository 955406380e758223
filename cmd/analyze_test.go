package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/KaramelBytes/datalens-cli/internal/ingest"
	"github.com/KaramelBytes/datalens-cli/internal/profile"
)

const salesCSV = "region,units,price,note\n" +
	"north,10,2.5,ok\n" +
	"south,12,2.75,\n" +
	"north,11,2.6,ok\n" +
	"east,40,9.9,check\n" +
	"south,13,2.8,ok\n" +
	"north,10,2.5,ok\n"

func TestAnalyzeJSONToStdout(t *testing.T) {
	home := isolateHome(t)
	p := writeInput(t, home, "sales.csv", salesCSV)

	out := runCmd(t, "analyze", p)
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))

	_, err := uuid.Parse(doc.ID)
	assert.NoError(t, err)
	assert.NotEmpty(t, doc.GeneratedAt)
	assert.Equal(t, Source{File: "sales.csv"}, doc.Source)
	assert.Empty(t, doc.Warnings)

	prof := doc.Profile
	assert.Equal(t, profile.Shape{Rows: 6, Columns: 4}, prof.Shape)
	assert.Equal(t, []string{"region", "units", "price", "note"}, prof.Columns)
	assert.Equal(t, profile.TypeNumeric, prof.DataTypes["units"])
	assert.Equal(t, profile.TypeCategorical, prof.DataTypes["region"])
	assert.Equal(t, 1, prof.Duplicates)
	assert.Equal(t, 1, prof.MissingValues["note"])
	assert.Equal(t, 6, prof.NumericStats["price"].Count)
	assert.Equal(t, 1.0, prof.Correlations["units"]["units"])
	assert.Len(t, prof.Distributions["units"], profile.DefaultBins)

	assert.Equal(t, 6, doc.Overview.Rows)
	assert.Equal(t, 1, doc.Overview.DuplicateRows)
	assert.Equal(t, 2, doc.Overview.NumericColumns)
}

func TestAnalyzeYAMLToFile(t *testing.T) {
	home := isolateHome(t)
	p := writeInput(t, home, "sales.csv", salesCSV)
	dst := filepath.Join(home, "out", "sales.yaml")

	out := runCmd(t, "analyze", p, "--format", "yaml", "-o", dst, "--bins", "3", "--top", "2")
	assert.Contains(t, out, "Wrote profile")

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(b, &doc))
	for _, key := range []string{"id", "generatedAt", "source", "warnings", "overview", "profile"} {
		assert.Contains(t, doc, key)
	}
	prof := doc["profile"].(map[string]any)
	dists := prof["distributions"].(map[string]any)
	assert.Len(t, dists["units"], 3)
	cats := prof["categoricalStats"].(map[string]any)
	assert.Len(t, cats["region"], 2)
}

func TestAnalyzeFlagsOverrideConfig(t *testing.T) {
	home := isolateHome(t)
	p := writeInput(t, home, "mixed.csv", "v\n2.5\n3.5\n4.5\nx\n")
	cfgPath := filepath.Join(home, "cfg.yaml")
	runCmd(t, "--config", cfgPath, "config", "set", "type_threshold", "0.7")

	out := runCmd(t, "--config", cfgPath, "analyze", p)
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, profile.TypeNumeric, doc.Profile.DataTypes["v"])

	out = runCmd(t, "--config", cfgPath, "analyze", p, "--threshold", "0.9")
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, profile.TypeCategorical, doc.Profile.DataTypes["v"])
}

func TestAnalyzeMaxRowsWarns(t *testing.T) {
	home := isolateHome(t)
	p := writeInput(t, home, "sales.csv", salesCSV)
	out := runCmd(t, "analyze", p, "--max-rows", "2")
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, 2, doc.Profile.Shape.Rows)
	assert.Len(t, doc.Warnings, 1)
}

func TestAnalyzeErrors(t *testing.T) {
	home := isolateHome(t)
	pdf := writeInput(t, home, "report.pdf", "x")
	_, err := execCmd(t, "analyze", pdf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ingest.ErrUnsupported))

	csv := writeInput(t, home, "ok.csv", salesCSV)
	_, err = execCmd(t, "analyze", csv, "--threshold", "1.5")
	assert.Error(t, err)
	_, err = execCmd(t, "analyze", csv, "--format", "xml")
	assert.Error(t, err)
	_, err = execCmd(t, "analyze", csv, "--delimiter", "|")
	assert.Error(t, err)
	_, err = execCmd(t, "analyze", csv, "--log-level", "loud")
	assert.Error(t, err)
}

func TestAnalyzeHugeReadingsStayEncodable(t *testing.T) {
	home := isolateHome(t)
	p := writeInput(t, home, "huge.csv", "v\n1e305\n2e305\n3e305\n")

	out := runCmd(t, "analyze", p)
	var doc Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, profile.TypeNumeric, doc.Profile.DataTypes["v"])
	assert.Equal(t, 3e305, doc.Profile.NumericStats["v"].Max)

	runCmd(t, "analyze-batch", p, "--quiet")
	assert.FileExists(t, filepath.Join(home, "huge.profile.json"))
}
