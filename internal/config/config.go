package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Sheet  SheetConfig  `yaml:"sheet"`
	Review ReviewConfig `yaml:"review"`
	Enrich EnrichConfig `yaml:"enrich"`
	Log    LogConfig    `yaml:"log"`
}

// SheetConfig holds Google Sheets store settings.
type SheetConfig struct {
	SpreadsheetID   string        `yaml:"spreadsheet_id"   env:"SHEET_SPREADSHEET_ID" env-required:"true"`
	Worksheet       string        `yaml:"worksheet"        env:"SHEET_WORKSHEET"      env-default:"Sheet1"`
	CredentialsFile string        `yaml:"credentials_file" env:"SHEET_CREDENTIALS"    env-default:"./service_account.json"`
	RequestTimeout  time.Duration `yaml:"request_timeout"  env:"SHEET_TIMEOUT"        env-default:"30s"`
}

// ReviewConfig holds review-scheduling settings.
type ReviewConfig struct {
	// DefaultDays is the reschedule offset used when the caller gives none.
	DefaultDays int `yaml:"default_days" env:"REVIEW_DEFAULT_DAYS" env-default:"3"`
	// ScheduleOnAdd controls whether a newly added word with no explicit
	// review date gets today's date (due immediately) instead of blank.
	ScheduleOnAdd bool `yaml:"schedule_on_add" env:"REVIEW_SCHEDULE_ON_ADD" env-default:"true"`
}

// EnrichConfig holds smart-add enrichment settings.
type EnrichConfig struct {
	DictionaryBaseURL string        `yaml:"dictionary_base_url" env:"ENRICH_DICTIONARY_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
	DatamuseBaseURL   string        `yaml:"datamuse_base_url"   env:"ENRICH_DATAMUSE_URL"   env-default:"https://api.datamuse.com"`
	Timeout           time.Duration `yaml:"timeout"             env:"ENRICH_TIMEOUT"        env-default:"15s"`
	MaxSynonyms       int           `yaml:"max_synonyms"        env:"ENRICH_MAX_SYNONYMS"   env-default:"8"`
	CacheEnabled      bool          `yaml:"cache_enabled"       env:"ENRICH_CACHE_ENABLED"  env-default:"false"`
	CachePath         string        `yaml:"cache_path"          env:"ENRICH_CACHE_PATH"     env-default:"./data/enrich.db"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}
