package config

import (
	"github.com/spf13/viper"
)

// Config holds settings for the llamaparse command.
type Config struct {
	APIKey            string
	BaseURL           string
	ResultFormat      string
	CheckIntervalSecs int
	MaxTimeoutSecs    int
	Verbose           bool
	Concurrency       int
	OutputDir         string
}

// Load reads configuration from environment variables. The API key and base
// URL share the library's LLAMA_CLOUD_* variables; command-level knobs live
// under LLAMA_PARSE_*.
func Load() (*Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("api_key", "")
	v.SetDefault("base_url", "")
	v.SetDefault("result_format", "text")
	v.SetDefault("check_interval_secs", 1)
	v.SetDefault("max_timeout_secs", 2000)
	v.SetDefault("verbose", true)
	v.SetDefault("concurrency", 1)
	v.SetDefault("output_dir", "")

	// Bind environment variables explicitly
	envBindings := map[string]string{
		"api_key":             "LLAMA_CLOUD_API_KEY",
		"base_url":            "LLAMA_CLOUD_BASE_URL",
		"result_format":       "LLAMA_PARSE_RESULT_FORMAT",
		"check_interval_secs": "LLAMA_PARSE_CHECK_INTERVAL_SECS",
		"max_timeout_secs":    "LLAMA_PARSE_MAX_TIMEOUT_SECS",
		"verbose":             "LLAMA_PARSE_VERBOSE",
		"concurrency":         "LLAMA_PARSE_CONCURRENCY",
		"output_dir":          "LLAMA_PARSE_OUTPUT_DIR",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{
		APIKey:            v.GetString("api_key"),
		BaseURL:           v.GetString("base_url"),
		ResultFormat:      v.GetString("result_format"),
		CheckIntervalSecs: v.GetInt("check_interval_secs"),
		MaxTimeoutSecs:    v.GetInt("max_timeout_secs"),
		Verbose:           v.GetBool("verbose"),
		Concurrency:       v.GetInt("concurrency"),
		OutputDir:         v.GetString("output_dir"),
	}

	return cfg, nil
}
