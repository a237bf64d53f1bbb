package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Sheet.SpreadsheetID) == "" {
		return fmt.Errorf("sheet.spreadsheet_id must not be empty")
	}
	if strings.TrimSpace(c.Sheet.Worksheet) == "" {
		return fmt.Errorf("sheet.worksheet must not be empty")
	}
	if c.Sheet.RequestTimeout <= 0 {
		return fmt.Errorf("sheet.request_timeout must be > 0 (got %v)", c.Sheet.RequestTimeout)
	}

	if c.Review.DefaultDays < 0 {
		return fmt.Errorf("review.default_days must be >= 0 (got %d)", c.Review.DefaultDays)
	}

	if err := c.Enrich.validate(); err != nil {
		return fmt.Errorf("enrich: %w", err)
	}

	return nil
}

func (e *EnrichConfig) validate() error {
	if e.DictionaryBaseURL == "" {
		return fmt.Errorf("dictionary_base_url must not be empty")
	}
	if e.DatamuseBaseURL == "" {
		return fmt.Errorf("datamuse_base_url must not be empty")
	}
	if e.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", e.Timeout)
	}
	if e.MaxSynonyms <= 0 {
		return fmt.Errorf("max_synonyms must be > 0 (got %d)", e.MaxSynonyms)
	}
	if e.CacheEnabled && strings.TrimSpace(e.CachePath) == "" {
		return fmt.Errorf("cache_path must be set when cache is enabled")
	}
	return nil
}
