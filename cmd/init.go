package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todomatic/internal/config"
	"github.com/nibzard/todomatic/internal/todo"
)

// projectConfigFile is the file name init writes in the project root.
const projectConfigFile = "todomatic.toml"

// initCommand writes the built-in list as a seed file and an example
// project config. Existing files are kept unless -force is given.
func initCommand(cfg *config.Config, logger *log.Logger, std streams, args []string) error {
	fs := flag.NewFlagSet("todomatic init", flag.ContinueOnError)
	fs.SetOutput(std.errOut)
	force := fs.Bool("force", false, "Overwrite existing files")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkArgs(fs.Args(), 0); err != nil {
		return err
	}

	seedPath := cfg.SeedFile
	if exists(seedPath) && !*force {
		fmt.Fprintf(std.out, "Seed file exists, skipping: %s\n", seedPath)
	} else {
		if err := os.MkdirAll(filepath.Dir(seedPath), 0755); err != nil {
			return fmt.Errorf("creating seed directory: %w", err)
		}
		if err := todo.DefaultSeed().Save(seedPath); err != nil {
			return err
		}
		logger.Debug("seed file written", "path", seedPath)
		fmt.Fprintf(std.out, "Wrote %s\n", seedPath)
	}

	configPath := filepath.Join(cfg.ProjectRoot, projectConfigFile)
	if exists(configPath) && !*force {
		fmt.Fprintf(std.out, "Config file exists, skipping: %s\n", configPath)
		return nil
	}
	if err := os.WriteFile(configPath, []byte(config.ExampleConfig()), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	logger.Debug("config file written", "path", configPath)
	fmt.Fprintf(std.out, "Wrote %s\n", configPath)
	return nil
}

// configCommand prints the effective configuration and the source of each value.
func configCommand(cws *config.ConfigWithSources, std streams, args []string) error {
	fs := flag.NewFlagSet("todomatic config", flag.ContinueOnError)
	fs.SetOutput(std.errOut)
	example := fs.Bool("example", false, "Print an example config file instead")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkArgs(fs.Args(), 0); err != nil {
		return err
	}

	w := std.out
	if *example {
		fmt.Fprint(w, config.ExampleConfig())
		return nil
	}

	fmt.Fprintf(w, "Project root: %s\n", cws.Config.ProjectRoot)
	if len(cws.Files) == 0 {
		fmt.Fprintln(w, "Config files: (none)")
	} else {
		fmt.Fprintln(w, "Config files:")
		for _, f := range cws.Files {
			fmt.Fprintf(w, "  %s\n", f)
		}
	}
	fmt.Fprintln(w)

	for _, pair := range cws.SortedSources() {
		key, source := pair[0], pair[1]
		fmt.Fprintf(w, "%-15s = %-30q (%s)\n", key, cws.Config.Value(key), source)
	}

	if len(cws.Unknown) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Unknown keys:")
		for _, key := range cws.Unknown {
			fmt.Fprintf(w, "  %s\n", key)
		}
	}
	return nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
