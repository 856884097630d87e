package config

// ExampleConfig returns an example configuration showing all available options.
func ExampleConfig() string {
	return `# todomatic configuration file
# Values can be overridden by TODOMATIC_* environment variables or CLI flags.

# Seed task list loaded at startup (JSON or YAML, relative to the working directory).
# A built-in demo list is used when the file does not exist.
seed_file = "tasks.json"

# JSON Schema for the seed file. Leave empty to use the embedded schema.
# schema_file = "seed.schema.json"

# Session log directory (supports ~ expansion and %VAR% on Windows)
log_dir = "~/.todomatic"

# Console logging: debug, info, warn, error
log_level = "info"
# text, json, or logfmt
log_format = "text"
log_timestamps = false
log_caller = false

# Prefix for generated task ids
id_prefix = "todo-"

# Filter selected at startup: All, Active, InProgress, Completed
default_filter = "All"

# Title shown above the task list
title = "TodoMatic"
`
}
