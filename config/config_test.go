package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-service-agent/model"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ":8080", s.Addr)
	assert.Equal(t, 0.7, s.MinConfidence)
	assert.Equal(t, "gpt-3.5-turbo", s.OpenAIModel)
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"addr: \":9000\"\nmin_confidence: 0.5\nsecret_key: from-file\n",
	), 0o644))

	t.Setenv("SECRET_KEY", "from-env")
	t.Setenv("MIN_CONFIDENCE", "0.6")

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9000", s.Addr)
	assert.Equal(t, "from-env", s.SecretKey)
	assert.Equal(t, 0.6, s.MinConfidence)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("addr: [:::"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestDefaultTables_CoversEveryPatternIntent(t *testing.T) {
	tables := DefaultTables()

	require.Len(t, tables.Patterns, 8) // every intent except unknown
	for _, entry := range tables.Patterns {
		assert.NotEqual(t, model.IntentUnknown, entry.Intent)
		assert.NotEmpty(t, entry.Phrases, entry.Intent)
	}
	assert.NotEmpty(t, tables.ProductKeywords)
	assert.Len(t, tables.FAQ, 5)
}

func TestLoadTables_MissingFileUsesDefaults(t *testing.T) {
	tables, err := LoadTables(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultTables(), tables)
}

func TestLoadTables_RejectsUnknownIntentName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"patterns:\n  - intent: not_a_thing\n    phrases: [x]\n",
	), 0o644))

	_, err := LoadTables(path)
	assert.Error(t, err)
}

func TestLoadTables_FillsMissingSectionsFromDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intents.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"patterns:\n  - intent: greeting\n    phrases: [hello]\n",
	), 0o644))

	tables, err := LoadTables(path)
	require.NoError(t, err)
	require.Len(t, tables.Patterns, 1)
	assert.Equal(t, model.IntentGreeting, tables.Patterns[0].Intent)
	assert.Equal(t, DefaultTables().ProductKeywords, tables.ProductKeywords)
	assert.Equal(t, DefaultTables().FAQ, tables.FAQ)
}
