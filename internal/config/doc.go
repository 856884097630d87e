// Package config handles configuration loading and defaults.
//
// Configuration is loaded from multiple sources in priority order:
// 1. Built-in defaults
// 2. User config file (~/.todomatic/todomatic.toml or OS-specific config directory)
// 3. Project config file (todomatic.toml or .todomatic.toml in the working directory)
// 4. Environment variables (TODOMATIC_*)
// 5. CLI flags
//
// Each level overrides the previous one, so CLI flags take precedence.
//
// User-level config locations:
// - ~/.todomatic/todomatic.toml (preferred)
// - Windows: %APPDATA%\todomatic\todomatic.toml
// - macOS: ~/Library/Application Support/todomatic/todomatic.toml
// - Linux/BSD: $XDG_CONFIG_HOME/todomatic/todomatic.toml or ~/.config/todomatic/todomatic.toml
package config
