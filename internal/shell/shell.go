// =============================================================================
// Inventory Manager - Interactive Shell
// =============================================================================
//
// The shell reads one command per line and dispatches it through a fixed
// table of command names. A failing command prints its error and the loop
// carries on; only "exit", "quit" or end of input stop it.
//
// COMMANDS:
//   load <dir>             Import every CSV file in a directory
//   load-file <path>       Replace the Catalog with a consolidated file
//   search <term>          Search product names and categories
//   search <col>=<value>   Search one column
//   summary [output]       Totals and average price per category
//   report [output]        Record count per category
//   save <path>            Write the Catalog as a consolidated file
//   show [n]               Preview the first n records
//   export <path>          Write the Catalog as XML
//   clear                  Empty the Catalog
//   help                   List commands
//   exit | quit            Leave the shell
//
// =============================================================================

package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ginjaninja78/inventory-manager/internal/inventory"
	"github.com/ginjaninja78/inventory-manager/internal/present"
)

// Prompt is printed before every command.
const Prompt = "(inventory) "

// Intro is printed when the shell starts.
const Intro = "Welcome to the Inventory Manager. Type help or ? to list commands."

// errExit stops the loop.
var errExit = errors.New("exit")

// command is one entry of the dispatch table.
type command struct {
	usage string
	help  string
	run   func(s *Shell, arg string) error
}

// commands maps a command name to its handler. Filled in init to allow the
// help handler to read the table.
var commands map[string]command

func init() {
	commands = map[string]command{
		"load": {
			usage: "load <dir>",
			help:  "Import every CSV file in a directory",
			run: func(s *Shell, arg string) error {
				if arg == "" {
					return errors.New("usage: load <dir>")
				}
				return s.session.LoadDirectory(arg)
			},
		},
		"load-file": {
			usage: "load-file <path>",
			help:  "Replace the Catalog with a consolidated file",
			run: func(s *Shell, arg string) error {
				if arg == "" {
					return errors.New("usage: load-file <path>")
				}
				return s.session.LoadFile(arg)
			},
		},
		"search": {
			usage: "search <term | column=value>",
			help:  "Search product names and categories, or one column",
			run: func(s *Shell, arg string) error {
				return s.session.Search(arg)
			},
		},
		"summary": {
			usage: "summary [output]",
			help:  "Total quantity and average price per category",
			run: func(s *Shell, arg string) error {
				return s.session.Summary(arg)
			},
		},
		"report": {
			usage: "report [output]",
			help:  "Record count per category",
			run: func(s *Shell, arg string) error {
				return s.session.Report(arg)
			},
		},
		"save": {
			usage: "save <path>",
			help:  "Write the Catalog as a consolidated CSV file",
			run: func(s *Shell, arg string) error {
				return s.session.Save(arg)
			},
		},
		"show": {
			usage: "show [n]",
			help:  "Preview the first n records",
			run: func(s *Shell, arg string) error {
				n := 0
				if arg != "" {
					var err error
					if n, err = strconv.Atoi(arg); err != nil || n <= 0 {
						return fmt.Errorf("show expects a positive number, got %q", arg)
					}
				}
				return s.session.Show(n)
			},
		},
		"export": {
			usage: "export <path>",
			help:  "Write the Catalog as XML grouped by category",
			run: func(s *Shell, arg string) error {
				return s.session.Export(arg)
			},
		},
		"clear": {
			usage: "clear",
			help:  "Empty the Catalog",
			run: func(s *Shell, _ string) error {
				s.session.Clear()
				return nil
			},
		},
		"help": {
			usage: "help",
			help:  "List commands",
			run: func(s *Shell, _ string) error {
				s.printHelp()
				return nil
			},
		},
		"exit": {
			usage: "exit",
			help:  "Leave the shell",
			run: func(s *Shell, _ string) error {
				return errExit
			},
		},
	}

	commands["quit"] = command{usage: "quit", help: "Leave the shell", run: commands["exit"].run}
	commands["?"] = command{usage: "?", help: "List commands", run: commands["help"].run}
}

// =============================================================================
// SHELL STRUCTURE
// =============================================================================

// Shell runs commands against a Session.
type Shell struct {
	session *inventory.Session
	out     *present.Presenter
	logger  *zap.Logger
}

// New creates a Shell. Each Shell tags its log lines with a session id.
func New(session *inventory.Session, out *present.Presenter, logger *zap.Logger) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		session: session,
		out:     out,
		logger:  logger.With(zap.String("session", uuid.New().String())),
	}
}

// Run reads commands from in until exit, quit or end of input.
func (s *Shell) Run(in io.Reader) error {
	s.out.Info(Intro)
	s.logger.Debug("shell started")

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out.Out(), Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out.Out())
			break
		}
		if s.Execute(scanner.Text()) {
			break
		}
	}

	s.logger.Debug("shell stopped")
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Execute runs a single command line and reports whether the shell should
// stop. Blank lines do nothing.
func (s *Shell) Execute(line string) bool {
	name, arg := splitLine(line)
	if name == "" {
		return false
	}

	cmd, ok := commands[name]
	if !ok {
		s.out.Warn("Unknown command: %s. Type help for a list of commands.", name)
		return false
	}

	s.logger.Debug("running command", zap.String("command", name), zap.String("arg", arg))

	err := cmd.run(s, arg)
	switch {
	case err == nil:
		return false
	case errors.Is(err, errExit):
		s.out.Plain("Goodbye!")
		return true
	case errors.Is(err, inventory.ErrEmptyCatalog):
		s.out.Warn("The database is empty. Load data first.")
	case errors.Is(err, inventory.ErrImportFailures):
		s.out.Warn("%v", err)
	default:
		s.logger.Debug("command failed", zap.String("command", name), zap.Error(err))
		s.out.Error(err)
	}
	return false
}

func (s *Shell) printHelp() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		if name == "?" || name == "quit" {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, len(names))
	for i, name := range names {
		rows[i] = []string{commands[name].usage, commands[name].help}
	}
	s.out.Table([]string{"Command", "Description"}, rows)
}

// splitLine separates the command name from the rest of the line. The
// argument keeps inner spaces so paths and search terms survive intact.
func splitLine(line string) (name, arg string) {
	line = strings.TrimSpace(line)
	name, arg, _ = strings.Cut(line, " ")
	return strings.ToLower(name), strings.TrimSpace(arg)
}
