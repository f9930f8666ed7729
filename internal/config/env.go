package config

import "os"

// parseEnv overlays Config with environment values. Only the Gemini API key
// comes from the environment, so the secret never has to live in a config
// file. GEMINI_API_KEY wins over the legacy API_KEY name.
func parseEnv(cfg *Config) {
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
		return
	}
	if v := os.Getenv("API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	}
}
