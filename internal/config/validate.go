package config

import (
	"fmt"
	"net/url"

	"github.com/wordlens/wordlens-backend/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := validateBaseURL("dictionary.base_url", c.Dictionary.BaseURL); err != nil {
		return err
	}
	if err := validateBaseURL("llm.base_url", c.LLM.BaseURL); err != nil {
		return err
	}
	if c.Dictionary.Timeout <= 0 {
		return fmt.Errorf("dictionary.timeout must be > 0 (got %v)", c.Dictionary.Timeout)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("llm.timeout must be > 0 (got %v)", c.LLM.Timeout)
	}

	if !domain.ExplanationStyle(c.Pipeline.DefaultStyle).IsValid() {
		return fmt.Errorf("pipeline.default_style must be one of plain, technical, simple (got %q)", c.Pipeline.DefaultStyle)
	}
	if c.Pipeline.DefaultModel == "" {
		return fmt.Errorf("pipeline.default_model must not be empty")
	}
	if c.Pipeline.PruneEvery <= 0 {
		return fmt.Errorf("pipeline.prune_every must be > 0 (got %v)", c.Pipeline.PruneEvery)
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func validateBaseURL(field, raw string) error {
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("%s must be an absolute URL (got %q)", field, raw)
	}
	return nil
}
