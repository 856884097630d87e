// Package cmd implements the CLI command structure for todomatic.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todomatic/internal/config"
	"github.com/nibzard/todomatic/internal/logging"
	"github.com/nibzard/todomatic/internal/store"
	"github.com/nibzard/todomatic/internal/todo"
)

// Version is set via ldflags at build time.
var Version = "dev"

// streams are the standard streams a command reads and writes.
type streams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

// Run executes the todomatic CLI.
func Run(ctx context.Context, args []string) error {
	return run(ctx, args, streams{in: os.Stdin, out: os.Stdout, errOut: os.Stderr})
}

func run(ctx context.Context, args []string, std streams) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("todomatic", flag.ContinueOnError)
	fs.SetOutput(std.errOut)
	fs.Usage = func() {
		printUsage(fs, std.errOut)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")

	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, std.out)
		return nil
	}
	if *showVersion {
		return versionCommand(std.out)
	}

	// Determine the subcommand; with no args or a leading flag, open the TUI.
	subcommand := "tui"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 && !strings.HasPrefix(remainingArgs[0], "-") {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	logger := logging.New(std.errOut, logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller))
	for _, key := range cws.Unknown {
		logger.Warn("unknown config key", "key", key)
	}

	switch subcommand {
	case "tui":
		return tuiCommand(ctx, cfg, logger, remainingArgs)
	case "list", "ls":
		return listCommand(cfg, logger, std, remainingArgs)
	case "apply":
		return applyCommand(cfg, logger, std, remainingArgs)
	case "doctor":
		return doctorCommand(cfg, std, remainingArgs)
	case "init":
		return initCommand(cfg, logger, std, remainingArgs)
	case "config":
		return configCommand(cws, std, remainingArgs)
	case "logs", "tail":
		return logsCommand(ctx, cfg, std, remainingArgs)
	case "version":
		return versionCommand(std.out)
	case "help":
		printUsage(fs, std.out)
		return nil
	default:
		fmt.Fprintf(std.errOut, "Unknown command: %s\n", subcommand)
		printUsage(fs, std.errOut)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// loadStore seeds a store from the configured seed file. A missing file
// falls back to the built-in list; an invalid one is an error. opts are
// applied after the configured defaults.
func loadStore(cfg *config.Config, logger *log.Logger, filterName string, opts ...store.Option) (*store.Store, error) {
	seed, usedDefault, err := todo.LoadSeedOrDefault(cfg.SeedFile)
	if err != nil {
		return nil, fmt.Errorf("loading seed file: %w", err)
	}
	if usedDefault {
		logger.Info("seed file not found, using built-in list", "path", cfg.SeedFile)
	} else {
		result := seed.Validate(todo.ValidationOptions{SchemaPath: cfg.SchemaFile})
		for _, w := range result.Warnings {
			logger.Warn(w)
		}
		if !result.Valid {
			return nil, fmt.Errorf("seed file %s is invalid: %w", cfg.SeedFile, errors.Join(result.Errors...))
		}
	}

	filter := cfg.Filter()
	if filterName != "" {
		f, err := todo.ParseFilter(filterName)
		if err != nil {
			return nil, err
		}
		filter = f
	}

	base := []store.Option{
		store.WithFilter(filter),
		store.WithIDGenerator(todo.UUIDGenerator{Prefix: cfg.IDPrefix}),
		store.WithLogger(logger),
	}
	return store.New(seed.Tasks, append(base, opts...)...), nil
}

// checkArgs rejects positional arguments beyond max.
func checkArgs(args []string, max int) error {
	if len(args) > max {
		return fmt.Errorf("unexpected arguments: %v", args[max:])
	}
	return nil
}

// versionCommand prints version information.
func versionCommand(w io.Writer) error {
	fmt.Fprintf(w, "todomatic version %s\n", Version)
	return nil
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "TodoMatic - a terminal task list")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  todomatic [options] [command] [command options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  tui             Open the interactive list (default command)")
	fmt.Fprintln(w, "  list            Print the seeded list")
	fmt.Fprintln(w, "  apply [file|-]  Apply a command script to the seeded list and print it")
	fmt.Fprintln(w, "  doctor [file]   Validate a seed file")
	fmt.Fprintln(w, "  init            Write an example seed file and config")
	fmt.Fprintln(w, "  config          Show effective configuration and where each value came from")
	fmt.Fprintln(w, "  logs            Show the latest session log")
	fmt.Fprintln(w, "  version         Show version information")
	fmt.Fprintln(w, "  help            Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List Options (use with 'list' and 'apply'):")
	fmt.Fprintln(w, "  -filter string")
	fmt.Fprintln(w, "        Filter to show (All|Active|InProgress|Completed)")
	fmt.Fprintln(w, "  -v    Show task ids")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Apply Script:")
	fmt.Fprintln(w, "  add <name>        edit <id> <name>    delete <id>")
	fmt.Fprintln(w, "  toggle <id>       progress <id>       filter <name>")
	fmt.Fprintln(w, "  Blank lines and lines starting with # are ignored.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logs Options (use with 'logs'):")
	fmt.Fprintln(w, "  -f, -follow")
	fmt.Fprintln(w, "        Follow the log (like tail -f)")
	fmt.Fprintln(w, "  -n int")
	fmt.Fprintln(w, "        Number of lines to show (0 = all)")
	fmt.Fprintln(w, "  -ls   List sessions instead of printing one")
}
