package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadConfig_ParsesValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"data_es": "es.json", "out_en": "en.pdf", "verbose": true}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "es.json", cfg.DataES)
	assert.Equal(t, "en.pdf", cfg.OutEN)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_BadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestMergeWithDefaults_FillsEmptyFields(t *testing.T) {
	cfg := Config{DataES: "custom.json"}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, "custom.json", merged.DataES)
	assert.Equal(t, Defaults().DataEN, merged.DataEN)
	assert.Equal(t, Defaults().OutES, merged.OutES)
	assert.Equal(t, Defaults().FontDir, merged.FontDir)
}

func TestValidate_BadLang(t *testing.T) {
	cfg := Config{Lang: "fr"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingInput(t *testing.T) {
	cfg := Config{DataES: filepath.Join(t.TempDir(), "absent.json")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_UnreadableInputIsReported(t *testing.T) {
	// A name past the filesystem limit makes Stat fail with ENAMETOOLONG,
	// which is not a not-found condition and must still surface.
	cfg := Config{DataES: filepath.Join(t.TempDir(), strings.Repeat("a", 300)+".json")}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot access CV document")
}

func TestValidate_OKWithExistingInputs(t *testing.T) {
	dir := t.TempDir()
	es := filepath.Join(dir, "es.json")
	require.NoError(t, os.WriteFile(es, []byte("{}"), 0o644))

	cfg := Config{DataES: es, Lang: "es"}
	assert.NoError(t, cfg.Validate())
}
