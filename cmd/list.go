package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todomatic/internal/config"
	"github.com/nibzard/todomatic/internal/logging"
	"github.com/nibzard/todomatic/internal/store"
	"github.com/nibzard/todomatic/internal/ui"
)

// tuiCommand opens the interactive list. Store and UI events go to a
// session log so the terminal stays clean.
func tuiCommand(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) error {
	fs := flag.NewFlagSet("todomatic tui", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	remaining := fs.Args()
	if err := checkArgs(remaining, 1); err != nil {
		return err
	}
	if len(remaining) == 1 {
		cfg.SeedFile = remaining[0]
	}

	sessionLogger := logging.Discard()
	session, err := logging.NewSessionLog(cfg.LogDir, cfg.ProjectRoot)
	if err != nil {
		logger.Warn("session log disabled", "err", err)
	} else {
		defer session.Close()
		opts := logging.OptionsFromConfig(cfg.LogLevel, cfg.LogFormat, cfg.LogTimestamps, cfg.LogCaller)
		sessionLogger = session.Logger(opts)
		sessionLogger.Info("session started", "seed", cfg.SeedFile, "filter", cfg.DefaultFilter)
	}

	// Seed problems are reported on the console before the alt screen opens.
	st, err := loadStore(cfg, logger, "", store.WithLogger(sessionLogger))
	if err != nil {
		return err
	}

	err = ui.Run(ctx, st, ui.WithTitle(cfg.Title), ui.WithLogger(sessionLogger))
	sessionLogger.Info("session ended", "tasks", len(st.Tasks()), "err", err)
	return err
}

// listCommand prints the seeded list through the derived view.
func listCommand(cfg *config.Config, logger *log.Logger, std streams, args []string) error {
	fs := flag.NewFlagSet("todomatic list", flag.ContinueOnError)
	fs.SetOutput(std.errOut)
	filterName := fs.String("filter", "", "Filter to show (All|Active|InProgress|Completed)")
	verbose := fs.Bool("v", false, "Show task ids")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if err := checkArgs(remaining, 1); err != nil {
		return err
	}
	if len(remaining) == 1 {
		cfg.SeedFile = remaining[0]
	}

	st, err := loadStore(cfg, logger, *filterName)
	if err != nil {
		return err
	}
	if err := ui.WritePlain(std.out, cfg.Title, st.View(), *verbose); err != nil {
		return fmt.Errorf("writing list: %w", err)
	}
	return nil
}
