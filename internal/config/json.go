package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/coursenotes/internal/flagx"
	"github.com/dmitrijs2005/coursenotes/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify intervals either as strings like "30s"
// or as integer nanoseconds. Values are then copied into the runtime Config.
type JsonConfig struct {
	DatabaseDSN     string         `json:"database_dsn"`
	GeminiModel     string         `json:"gemini_model"`
	SummaryTimeout  timex.Duration `json:"summary_timeout"`
	SessionValidity timex.Duration `json:"session_validity"`
}

// parseJson overlays Config with values loaded from the JSON file selected
// by the -c/-config flags. If no file is given the function returns without
// touching cfg. Read or unmarshal errors panic; the loader runs before any
// state exists, so there is nothing to clean up.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.GeminiModel != "" {
		cfg.GeminiModel = jc.GeminiModel
	}
	if jc.SummaryTimeout.Duration != 0 {
		cfg.SummaryTimeout = time.Duration(jc.SummaryTimeout.Duration)
	}
	if jc.SessionValidity.Duration != 0 {
		cfg.SessionValidity = time.Duration(jc.SessionValidity.Duration)
	}
}
