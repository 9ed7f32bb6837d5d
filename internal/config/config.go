package config

import (
	"os"
	"strconv"
	"time"
)

const (
	DefaultJournalPath = "~/Documents/diary"
	DefaultPlannerPath = "~/Documents/planner"

	DefaultOllamaURL        = "http://localhost:11434"
	DefaultOllamaModel      = "gemma3:1b"
	DefaultOllamaTimeout    = 30 * time.Second
	DefaultOllamaTemp       = 0.7
	DefaultOllamaNumPredict = 200

	DefaultRecentEntries = 3
)

// JournalPath returns the journal directory from DIARO_JOURNAL,
// falling back to DefaultJournalPath.
func JournalPath() string {
	return getString("DIARO_JOURNAL", DefaultJournalPath)
}

// PlannerPath returns the planner directory (extracted todos) from
// DIARO_PLANNER, falling back to DefaultPlannerPath.
func PlannerPath() string {
	return getString("DIARO_PLANNER", DefaultPlannerPath)
}

// RecentEntries returns how many recent entries feed prompt generation.
func RecentEntries() int {
	return getInt("DIARO_RECENT", DefaultRecentEntries)
}

// Generator selects the text-generation backend: "ollama" (default) or
// "claude" (Claude Code CLI).
func Generator() string {
	return getString("DIARO_GENERATOR", "ollama")
}

// OllamaURL returns the Ollama API base URL.
func OllamaURL() string {
	return getString("OLLAMA_URL", DefaultOllamaURL)
}

// OllamaModel returns the Ollama model name.
func OllamaModel() string {
	return getString("OLLAMA_MODEL", DefaultOllamaModel)
}

// OllamaTimeout returns the per-request timeout for generation calls.
func OllamaTimeout() time.Duration {
	if env := os.Getenv("OLLAMA_TIMEOUT"); env != "" {
		if secs, err := strconv.Atoi(env); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return DefaultOllamaTimeout
}

// OllamaTemperature returns the sampling temperature.
func OllamaTemperature() float64 {
	if env := os.Getenv("OLLAMA_TEMPERATURE"); env != "" {
		if temp, err := strconv.ParseFloat(env, 64); err == nil {
			return temp
		}
	}
	return DefaultOllamaTemp
}

// OllamaNumPredict returns the generation token cap.
func OllamaNumPredict() int {
	return getInt("OLLAMA_NUM_PREDICT", DefaultOllamaNumPredict)
}

// DebugLogPath returns an optional file path for debug logs. Empty means
// log to stderr only.
func DebugLogPath() string {
	return os.Getenv("DIARO_DEBUG_LOG")
}

func getString(key, fallback string) string {
	if env := os.Getenv(key); env != "" {
		return env
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if env := os.Getenv(key); env != "" {
		if n, err := strconv.Atoi(env); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
