package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SHEET_SPREADSHEET_ID", "sheet-abc123")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sheet-abc123", cfg.Sheet.SpreadsheetID)
	assert.Equal(t, "Sheet1", cfg.Sheet.Worksheet)
	assert.Equal(t, 30*time.Second, cfg.Sheet.RequestTimeout)
	assert.Equal(t, 3, cfg.Review.DefaultDays)
	assert.True(t, cfg.Review.ScheduleOnAdd)
	assert.Equal(t, 8, cfg.Enrich.MaxSynonyms)
	assert.False(t, cfg.Enrich.CacheEnabled)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
}

func TestLoad_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("SHEET_SPREADSHEET_ID", "sheet-abc123")
	t.Setenv("SHEET_WORKSHEET", "IELTS")
	t.Setenv("REVIEW_DEFAULT_DAYS", "7")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "IELTS", cfg.Sheet.Worksheet)
	assert.Equal(t, 7, cfg.Review.DefaultDays)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoad_YAMLFile(t *testing.T) {
	yaml := `
sheet:
  spreadsheet_id: from-yaml
  worksheet: Vocab
review:
  default_days: 5
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "from-yaml", cfg.Sheet.SpreadsheetID)
	assert.Equal(t, "Vocab", cfg.Sheet.Worksheet)
	assert.Equal(t, 5, cfg.Review.DefaultDays)
	// Untouched sections keep their defaults.
	assert.Equal(t, 15*time.Second, cfg.Enrich.Timeout)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Sheet: SheetConfig{
				SpreadsheetID:  "id",
				Worksheet:      "Sheet1",
				RequestTimeout: 30 * time.Second,
			},
			Review: ReviewConfig{DefaultDays: 3},
			Enrich: EnrichConfig{
				DictionaryBaseURL: "https://dict.example",
				DatamuseBaseURL:   "https://datamuse.example",
				Timeout:           10 * time.Second,
				MaxSynonyms:       8,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(*Config) {}, wantErr: false},
		{name: "empty spreadsheet id", mutate: func(c *Config) { c.Sheet.SpreadsheetID = "  " }, wantErr: true},
		{name: "empty worksheet", mutate: func(c *Config) { c.Sheet.Worksheet = "" }, wantErr: true},
		{name: "negative default days", mutate: func(c *Config) { c.Review.DefaultDays = -1 }, wantErr: true},
		{name: "zero enrich timeout", mutate: func(c *Config) { c.Enrich.Timeout = 0 }, wantErr: true},
		{name: "cache enabled without path", mutate: func(c *Config) { c.Enrich.CacheEnabled = true }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
