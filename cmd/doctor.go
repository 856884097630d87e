package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/todomatic/internal/config"
	"github.com/nibzard/todomatic/internal/todo"
	"github.com/nibzard/todomatic/internal/ui"
)

// doctorCommand checks the config, seed file, schema, and log directory.
func doctorCommand(cfg *config.Config, std streams, args []string) error {
	fs := flag.NewFlagSet("todomatic doctor", flag.ContinueOnError)
	fs.SetOutput(std.errOut)
	verbose := fs.Bool("v", false, "Verbose output")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if err := checkArgs(remaining, 1); err != nil {
		return err
	}
	seedPath := cfg.SeedFile
	if len(remaining) == 1 {
		seedPath = remaining[0]
	}

	w := std.out
	fmt.Fprintln(w, "TodoMatic Doctor")
	fmt.Fprintln(w, "================")
	fmt.Fprintln(w)

	allOK := true

	fmt.Fprintln(w, "Config:")
	fmt.Fprintf(w, "  ✅ Default filter: %s\n", cfg.DefaultFilter)
	fmt.Fprintf(w, "  ✅ Id prefix: %q\n", cfg.IDPrefix)
	fmt.Fprintln(w)

	// Schema
	if cfg.SchemaFile == "" {
		fmt.Fprintln(w, "Schema: embedded")
		fmt.Fprintln(w, "  ✅ OK")
	} else {
		fmt.Fprintf(w, "Schema file: %s\n", cfg.SchemaFile)
		if info, err := os.Stat(cfg.SchemaFile); err != nil {
			if os.IsNotExist(err) {
				fmt.Fprintln(w, "  ⚠️  Not found (minimal checks only)")
			} else {
				fmt.Fprintf(w, "  ❌ Error: %v\n", err)
				allOK = false
			}
		} else if info.IsDir() {
			fmt.Fprintln(w, "  ❌ Error: path is a directory")
			allOK = false
		} else {
			fmt.Fprintln(w, "  ✅ OK")
		}
	}
	fmt.Fprintln(w)

	// Seed file
	fmt.Fprintf(w, "Seed file: %s\n", seedPath)
	info, err := os.Stat(seedPath)
	switch {
	case err != nil && os.IsNotExist(err):
		fmt.Fprintln(w, "  ⚠️  Not found (the built-in list will be used)")
	case err != nil:
		fmt.Fprintf(w, "  ❌ Error: %v\n", err)
		allOK = false
	case info.IsDir():
		fmt.Fprintln(w, "  ❌ Error: path is a directory")
		allOK = false
	default:
		seed, loadErr := todo.LoadSeed(seedPath)
		if loadErr != nil {
			fmt.Fprintf(w, "  ❌ Load error: %v\n", loadErr)
			allOK = false
			break
		}
		result := seed.Validate(todo.ValidationOptions{SchemaPath: cfg.SchemaFile})
		for _, warning := range result.Warnings {
			fmt.Fprintf(w, "  ⚠️  %s\n", warning)
		}
		if result.Valid {
			fmt.Fprintf(w, "  ✅ Valid (%d tasks)\n", len(seed.Tasks))
		} else {
			fmt.Fprintln(w, "  ❌ Validation failed:")
			for _, e := range result.Errors {
				fmt.Fprintf(w, "     - %v\n", e)
			}
			allOK = false
		}
		if *verbose {
			for _, t := range seed.Tasks {
				fmt.Fprintln(w, ui.FormatTask(t, true))
			}
		}
	}
	fmt.Fprintln(w)

	// Log directory
	fmt.Fprintf(w, "Log directory: %s\n", cfg.LogDir)
	if info, err := os.Stat(cfg.LogDir); err != nil {
		if os.IsNotExist(err) {
			fmt.Fprintln(w, "  ⚠️  Not found (will be created by the TUI)")
		} else {
			fmt.Fprintf(w, "  ❌ Error: %v\n", err)
			allOK = false
		}
	} else if !info.IsDir() {
		fmt.Fprintln(w, "  ❌ Error: path is not a directory")
		allOK = false
	} else {
		fmt.Fprintln(w, "  ✅ OK")
	}
	fmt.Fprintln(w)

	if allOK {
		fmt.Fprintln(w, "✅ All checks passed!")
		return nil
	}
	fmt.Fprintln(w, "⚠️  Some checks failed.")
	return fmt.Errorf("doctor checks failed")
}
