package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigSetAndShow(t *testing.T) {
	home := isolateHome(t)

	out := runCmd(t, "config", "set", "bins", "12")
	assert.Contains(t, out, "Saved config")
	assert.FileExists(t, filepath.Join(home, ".datalens", "config.yaml"))

	out = runCmd(t, "config", "show")
	assert.Contains(t, out, "bins: 12\n")
	assert.Contains(t, out, "type_threshold: 0.8\n")
	assert.Contains(t, out, "output_format: json\n")
}

func TestConfigSetRejectsBadValues(t *testing.T) {
	isolateHome(t)
	_, err := execCmd(t, "config", "set", "bins", "0")
	require.Error(t, err)
	_, err = execCmd(t, "config", "set", "nope", "1")
	require.Error(t, err)
}
