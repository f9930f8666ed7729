// Package config loads runtime configuration for the CourseNotes CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment: GEMINI_API_KEY (or legacy API_KEY) for the summarizer key.
//  3. Optional JSON file selected via flags: -c or -config.
//  4. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-d string   path of the local database file
//	-m string   Gemini model for note summaries
//	-t int      summary timeout (seconds)
//
// # JSON schema
//
// Durations use timex.Duration, so values can be either strings like "30s"
// or integer nanoseconds:
//
//	{
//	  "database_dsn": "coursenotes.db",
//	  "gemini_model": "gemini-2.5-flash",
//	  "summary_timeout": "30s",
//	  "session_validity": "720h"
//	}
package config
