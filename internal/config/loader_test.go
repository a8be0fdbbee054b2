package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, Default().Validate())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mst.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  level: debug\nprim:\n  root: B\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
	assert.Equal(t, "B", cfg.Prim.Root)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDecode_Rejects(t *testing.T) {
	for _, doc := range []string{
		"log:\n  level: loud\n",
		"output:\n  format: xml\n",
		"input:\n  format: csv\n",
		"generate:\n  min_weight: 5\n  max_weight: 1\n",
		"generate:\n  probability: 2\n",
	} {
		_, err := Decode(strings.NewReader(doc))
		assert.ErrorIs(t, err, ErrInvalid, "doc %q", doc)
	}

	_, err := Decode(strings.NewReader("colour: blue\n"))
	assert.Error(t, err, "unknown keys are rejected")
}

func TestMarshal_RoundTrip(t *testing.T) {
	out, err := Default().Marshal()
	require.NoError(t, err)

	cfg, err := Decode(strings.NewReader(string(out)))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
