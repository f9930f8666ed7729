package config

import "time"

// Config holds runtime settings for the CourseNotes CLI.
//
// Fields:
//   - DatabaseDSN: path/DSN of the local SQLite store.
//   - GeminiAPIKey: Gemini API key; empty disables summary generation.
//   - GeminiModel: Gemini model used for note summaries.
//   - SummaryTimeout: per-call deadline for the summarizer; 0 disables it.
//   - SessionValidity: how long a persisted session marker stays valid.
type Config struct {
	DatabaseDSN     string
	GeminiAPIKey    string
	GeminiModel     string
	SummaryTimeout  time.Duration
	SessionValidity time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "coursenotes.db"
	c.GeminiModel = "gemini-2.5-flash"
	c.SummaryTimeout = 30 * time.Second
	c.SessionValidity = 720 * time.Hour
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given) and command-line flags.
// Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
