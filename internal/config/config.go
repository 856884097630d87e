package config

import (
	"fmt"

	"github.com/nibzard/todomatic/internal/todo"
)

// ConfigSource represents where a configuration value came from.
type ConfigSource string

const (
	SourceDefault  ConfigSource = "default"
	SourceUserFile ConfigSource = "user file"
	SourceProjFile ConfigSource = "project file"
	SourceEnv      ConfigSource = "environment"
	SourceFlag     ConfigSource = "flag"
)

// Default values.
const (
	DefaultSeedFile  = "tasks.json"
	DefaultLogDir    = "~/.todomatic"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
	DefaultTitle     = "TodoMatic"
)

// Config holds the full configuration for todomatic.
type Config struct {
	// Paths
	SeedFile   string `toml:"seed_file"`
	SchemaFile string `toml:"schema_file"` // empty means the embedded schema
	LogDir     string `toml:"log_dir"`

	// Logging
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`

	// Task list
	IDPrefix      string `toml:"id_prefix"`
	DefaultFilter string `toml:"default_filter"`
	Title         string `toml:"title"`

	// Computed
	ProjectRoot string `toml:"-"`
}

// ConfigWithSources holds configuration along with the origin of each field.
type ConfigWithSources struct {
	Config  *Config
	Sources map[string]ConfigSource
	// Files lists the config files that were read, lowest priority first.
	Files []string
	// Unknown lists keys found in config files that match no setting.
	Unknown []string
}

// fieldKeys are the TOML keys of every configurable field, in display order.
var fieldKeys = []string{
	"seed_file",
	"schema_file",
	"log_dir",
	"log_level",
	"log_format",
	"log_timestamps",
	"log_caller",
	"id_prefix",
	"default_filter",
	"title",
}

// FieldKeys returns the configurable keys in display order.
func FieldKeys() []string {
	return append([]string(nil), fieldKeys...)
}

// setDefaults applies default values to the config.
func setDefaults(cfg *Config) {
	cfg.SeedFile = DefaultSeedFile
	cfg.SchemaFile = ""
	cfg.LogDir = DefaultLogDir
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = false
	cfg.LogCaller = false
	cfg.IDPrefix = todo.DefaultIDPrefix
	cfg.DefaultFilter = string(todo.FilterAll)
	cfg.Title = DefaultTitle
}

// Filter returns the configured initial filter.
// finalizeConfig has already rejected unknown names.
func (c *Config) Filter() todo.Filter {
	f, err := todo.ParseFilter(c.DefaultFilter)
	if err != nil {
		return todo.FilterAll
	}
	return f
}

// Value returns the string form of the field with the given TOML key.
func (c *Config) Value(key string) string {
	switch key {
	case "seed_file":
		return c.SeedFile
	case "schema_file":
		return c.SchemaFile
	case "log_dir":
		return c.LogDir
	case "log_level":
		return c.LogLevel
	case "log_format":
		return c.LogFormat
	case "log_timestamps":
		return fmt.Sprintf("%t", c.LogTimestamps)
	case "log_caller":
		return fmt.Sprintf("%t", c.LogCaller)
	case "id_prefix":
		return c.IDPrefix
	case "default_filter":
		return c.DefaultFilter
	case "title":
		return c.Title
	}
	return ""
}

// SortedSources returns the tracked keys in display order with their sources.
func (cws *ConfigWithSources) SortedSources() [][2]string {
	out := make([][2]string, 0, len(cws.Sources))
	for _, key := range fieldKeys {
		if src, ok := cws.Sources[key]; ok {
			out = append(out, [2]string{key, string(src)})
		}
	}
	return out
}
