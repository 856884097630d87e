package config

import "flag"

// flagKeys maps global flag names to the TOML key they set.
var flagKeys = map[string]string{
	"seed":           "seed_file",
	"schema":         "schema_file",
	"log-dir":        "log_dir",
	"log-level":      "log_level",
	"log-format":     "log_format",
	"log-timestamps": "log_timestamps",
	"log-caller":     "log_caller",
	"id-prefix":      "id_prefix",
	"filter":         "default_filter",
	"title":          "title",
}

// parseFlags defines the global flags on fs and parses args.
// Flags the user actually passed are recorded in sources.
func parseFlags(cfg *Config, fs *flag.FlagSet, args []string, sources map[string]ConfigSource) error {
	if fs == nil {
		fs = flag.NewFlagSet(appName, flag.ContinueOnError)
	}

	fs.StringVar(&cfg.SeedFile, "seed", cfg.SeedFile, "Path to the seed task file (JSON or YAML)")
	fs.StringVar(&cfg.SchemaFile, "schema", cfg.SchemaFile, "Path to a seed JSON Schema (default: embedded)")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "Session log directory")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug|info|warn|error)")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "Log format (text|json|logfmt)")
	fs.BoolVar(&cfg.LogTimestamps, "log-timestamps", cfg.LogTimestamps, "Include timestamps in console logs")
	fs.BoolVar(&cfg.LogCaller, "log-caller", cfg.LogCaller, "Include caller location in console logs")
	fs.StringVar(&cfg.IDPrefix, "id-prefix", cfg.IDPrefix, "Prefix for generated task ids")
	fs.StringVar(&cfg.DefaultFilter, "filter", cfg.DefaultFilter, "Initial filter (All|Active|InProgress|Completed)")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "Title shown above the task list")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if sources != nil {
		fs.Visit(func(f *flag.Flag) {
			if key, ok := flagKeys[f.Name]; ok {
				sources[key] = SourceFlag
			}
		})
	}
	return nil
}
