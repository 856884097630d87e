package config

import (
	"os"

	"github.com/nibzard/todomatic/internal/utils"
)

// envVars maps environment variables to the TOML key they override.
var envVars = []struct {
	name string
	key  string
}{
	{"TODOMATIC_SEED", "seed_file"},
	{"TODOMATIC_SCHEMA", "schema_file"},
	{"TODOMATIC_LOG_DIR", "log_dir"},
	{"TODOMATIC_LOG_LEVEL", "log_level"},
	{"TODOMATIC_LOG_FORMAT", "log_format"},
	{"TODOMATIC_LOG_TIMESTAMPS", "log_timestamps"},
	{"TODOMATIC_LOG_CALLER", "log_caller"},
	{"TODOMATIC_ID_PREFIX", "id_prefix"},
	{"TODOMATIC_FILTER", "default_filter"},
	{"TODOMATIC_TITLE", "title"},
}

// loadFromEnv overrides config from TODOMATIC_* environment variables.
// Empty variables are ignored.
func loadFromEnv(cfg *Config, sources map[string]ConfigSource) {
	for _, ev := range envVars {
		v := os.Getenv(ev.name)
		if v == "" {
			continue
		}
		setField(cfg, ev.key, v)
		if sources != nil {
			sources[ev.key] = SourceEnv
		}
	}
}

// setField assigns a string value to the field with the given TOML key.
func setField(cfg *Config, key, v string) {
	switch key {
	case "seed_file":
		cfg.SeedFile = v
	case "schema_file":
		cfg.SchemaFile = v
	case "log_dir":
		cfg.LogDir = v
	case "log_level":
		cfg.LogLevel = v
	case "log_format":
		cfg.LogFormat = v
	case "log_timestamps":
		cfg.LogTimestamps = utils.ParseBool(v)
	case "log_caller":
		cfg.LogCaller = utils.ParseBool(v)
	case "id_prefix":
		cfg.IDPrefix = v
	case "default_filter":
		cfg.DefaultFilter = v
	case "title":
		cfg.Title = v
	}
}
