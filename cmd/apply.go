package cmd

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/nibzard/todomatic/internal/config"
	"github.com/nibzard/todomatic/internal/store"
	"github.com/nibzard/todomatic/internal/todo"
	"github.com/nibzard/todomatic/internal/ui"
)

// scriptLine is one parsed command from an apply script.
type scriptLine struct {
	num  int
	verb string
	id   string
	arg  string
}

// applyCommand runs a command script against the seeded store and prints
// the resulting view. Commands on unknown ids are no-ops, not errors.
func applyCommand(cfg *config.Config, logger *log.Logger, std streams, args []string) error {
	fs := flag.NewFlagSet("todomatic apply", flag.ContinueOnError)
	fs.SetOutput(std.errOut)
	filterName := fs.String("filter", "", "Filter to show before the script runs")
	verbose := fs.Bool("v", false, "Show task ids")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	if err := checkArgs(remaining, 1); err != nil {
		return err
	}

	var r io.Reader = std.in
	if len(remaining) == 1 && remaining[0] != "-" {
		f, err := os.Open(remaining[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		r = f
	}

	lines, err := parseScript(r)
	if err != nil {
		return err
	}

	st, err := loadStore(cfg, logger, *filterName)
	if err != nil {
		return err
	}

	changed := 0
	for _, line := range lines {
		ok, err := runLine(st, line)
		if err != nil {
			return err
		}
		if ok {
			changed++
		}
	}
	logger.Info("script applied", "commands", len(lines), "changed", changed)

	if err := ui.WritePlain(std.out, cfg.Title, st.View(), *verbose); err != nil {
		return fmt.Errorf("writing list: %w", err)
	}
	return nil
}

// parseScript reads one command per line. Blank lines and # comments are
// skipped. Syntax errors carry the line number.
func parseScript(r io.Reader) ([]scriptLine, error) {
	var lines []scriptLine
	scanner := bufio.NewScanner(r)
	num := 0
	for scanner.Scan() {
		num++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		verb, rest, _ := strings.Cut(text, " ")
		rest = strings.TrimSpace(rest)
		line := scriptLine{num: num, verb: strings.ToLower(verb)}

		switch line.verb {
		case "add":
			if rest == "" {
				return nil, fmt.Errorf("line %d: add needs a name", num)
			}
			line.arg = rest
		case "edit":
			id, name, _ := strings.Cut(rest, " ")
			name = strings.TrimSpace(name)
			if id == "" || name == "" {
				return nil, fmt.Errorf("line %d: edit needs an id and a name", num)
			}
			line.id, line.arg = id, name
		case "delete", "toggle", "progress":
			if rest == "" || strings.ContainsAny(rest, " \t") {
				return nil, fmt.Errorf("line %d: %s needs exactly one id", num, line.verb)
			}
			line.id = rest
		case "filter":
			f, err := todo.ParseFilter(rest)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", num, err)
			}
			line.arg = string(f)
		default:
			return nil, fmt.Errorf("line %d: unknown command %q", num, verb)
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading script: %w", err)
	}
	return lines, nil
}

// runLine dispatches one script line to the store's command interface.
func runLine(c store.Commands, line scriptLine) (bool, error) {
	switch line.verb {
	case "add":
		_, ok := c.Add(line.arg)
		return ok, nil
	case "edit":
		return c.Edit(line.id, line.arg), nil
	case "delete":
		return c.Delete(line.id), nil
	case "toggle":
		return c.ToggleCompleted(line.id), nil
	case "progress":
		return c.ToggleInProgress(line.id), nil
	case "filter":
		return c.SelectFilter(todo.Filter(line.arg)), nil
	}
	return false, fmt.Errorf("line %d: unknown command %q", line.num, line.verb)
}
