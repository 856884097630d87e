package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

const appName = "todomatic"

// projectConfigNames are checked in order in the working directory.
var projectConfigNames = []string{"todomatic.toml", ".todomatic.toml"}

// findProjectConfigFile returns the first project config file in dir, or "".
func findProjectConfigFile(dir string) string {
	for _, name := range projectConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// findUserConfigFile checks ~/.todomatic/todomatic.toml, then the OS config dir.
func findUserConfigFile() string {
	var candidates []string
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, "."+appName, appName+".toml"))
	}
	if dir := osUserConfigDir(); dir != "" {
		candidates = append(candidates, filepath.Join(dir, appName, appName+".toml"))
	}
	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// osUserConfigDir returns the OS-specific user config directory, or "".
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return os.Getenv("APPDATA")
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// expandPath expands environment variables and a leading ~ in p.
func expandPath(p string) string {
	if p == "" {
		return p
	}
	expanded := os.ExpandEnv(p)
	if runtime.GOOS == "windows" {
		expanded = expandWindowsEnv(expanded)
	}

	if expanded != "~" && !strings.HasPrefix(expanded, "~/") &&
		!(runtime.GOOS == "windows" && strings.HasPrefix(expanded, `~\`)) {
		return expanded
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return expanded
	}
	if expanded == "~" {
		return home
	}
	return filepath.Join(home, expanded[2:])
}

// expandWindowsEnv replaces %VAR% references that are set in the environment.
func expandWindowsEnv(p string) string {
	if !strings.Contains(p, "%") {
		return p
	}
	var b strings.Builder
	for i := 0; i < len(p); {
		if p[i] != '%' {
			b.WriteByte(p[i])
			i++
			continue
		}
		end := strings.IndexByte(p[i+1:], '%')
		if end <= 0 {
			b.WriteByte('%')
			i++
			continue
		}
		key := p[i+1 : i+1+end]
		if val, ok := os.LookupEnv(key); ok {
			b.WriteString(val)
		} else {
			b.WriteString("%" + key + "%")
		}
		i += end + 2
	}
	return b.String()
}

// resolvePath expands p and anchors it at root when relative.
func resolvePath(root, p string) string {
	p = expandPath(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}
