package config

import (
	"flag"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/nibzard/todomatic/internal/todo"
)

// Load loads configuration from defaults, config files, environment, and flags.
func Load(fs *flag.FlagSet, args []string) (*Config, error) {
	cws, err := LoadWithSources(fs, args)
	if err != nil {
		return nil, err
	}
	return cws.Config, nil
}

// LoadWithSources loads configuration and tracks the source of each value.
func LoadWithSources(fs *flag.FlagSet, args []string) (*ConfigWithSources, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("getting working directory: %w", err)
	}

	cfg := &Config{ProjectRoot: wd}
	cws := &ConfigWithSources{
		Config:  cfg,
		Sources: make(map[string]ConfigSource),
	}

	// 1. Defaults
	setDefaults(cfg)
	for _, key := range fieldKeys {
		cws.Sources[key] = SourceDefault
	}

	// 2. User config file
	if path := findUserConfigFile(); path != "" {
		if err := loadConfigFile(cws, path, SourceUserFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", path, err)
		}
	}

	// 3. Project config file (overrides user config)
	if path := findProjectConfigFile(wd); path != "" {
		if err := loadConfigFile(cws, path, SourceProjFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", path, err)
		}
	}

	// 4. Environment
	loadFromEnv(cfg, cws.Sources)

	// 5. CLI flags
	if err := parseFlags(cfg, fs, args, cws.Sources); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	// 6. Derived values
	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cws, nil
}

// loadConfigFile decodes a TOML file over the current values and records
// which keys it defined.
func loadConfigFile(cws *ConfigWithSources, path string, source ConfigSource) error {
	md, err := toml.DecodeFile(path, cws.Config)
	if err != nil {
		return err
	}
	for _, key := range fieldKeys {
		if md.IsDefined(key) {
			cws.Sources[key] = source
		}
	}
	for _, key := range md.Undecoded() {
		cws.Unknown = append(cws.Unknown, fmt.Sprintf("%s (%s)", key.String(), path))
	}
	cws.Files = append(cws.Files, path)
	return nil
}

// finalizeConfig resolves paths against the project root and checks enums.
func finalizeConfig(cfg *Config) error {
	if cfg.ProjectRoot == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		cfg.ProjectRoot = wd
	}

	cfg.LogDir = expandPath(cfg.LogDir)
	cfg.SeedFile = resolvePath(cfg.ProjectRoot, cfg.SeedFile)
	cfg.SchemaFile = resolvePath(cfg.ProjectRoot, cfg.SchemaFile)

	f, err := todo.ParseFilter(cfg.DefaultFilter)
	if err != nil {
		return fmt.Errorf("default_filter: %w", err)
	}
	cfg.DefaultFilter = string(f)

	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("log_format: unknown format %q (expected text, json, or logfmt)", cfg.LogFormat)
	}
	return nil
}
