package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nibzard/todomatic/internal/config"
	"github.com/nibzard/todomatic/internal/logging"
)

// logsCommand prints the latest session log, or lists sessions with -ls.
func logsCommand(ctx context.Context, cfg *config.Config, std streams, args []string) error {
	fs := flag.NewFlagSet("todomatic logs", flag.ContinueOnError)
	fs.SetOutput(std.errOut)
	follow := fs.Bool("f", false, "Follow the log (like tail -f)")
	fs.BoolVar(follow, "follow", false, "Follow the log (like tail -f)")
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	list := fs.Bool("ls", false, "List sessions instead of printing one")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := checkArgs(fs.Args(), 0); err != nil {
		return err
	}

	workDir := cfg.ProjectRoot
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting working directory: %w", err)
		}
		workDir = wd
	}

	logDir, err := logging.FindLogDir(cfg.LogDir, workDir)
	if err != nil {
		return fmt.Errorf("finding log directory: %w", err)
	}

	w := std.out
	if *list {
		sessions, err := logging.ListSessions(logDir)
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Fprintln(w, "No sessions found.")
			return nil
		}
		for _, s := range sessions {
			fmt.Fprintf(w, "%s  %s  %6d bytes\n", s.ID, s.ModTime.Format("2006-01-02 15:04:05"), s.Size)
		}
		return nil
	}

	logPath, err := logging.FindLatestLog(logDir)
	if err != nil {
		return fmt.Errorf("finding latest log: %w", err)
	}
	if logPath == "" {
		fmt.Fprintln(w, "No log files found.")
		return nil
	}

	fmt.Fprintf(w, "Tailing: %s\n", logPath)
	if *follow {
		fmt.Fprintln(w, "(Ctrl+C to stop)")
	}
	fmt.Fprintln(w)

	return logging.TailLog(ctx, w, logPath, *n, *follow)
}
