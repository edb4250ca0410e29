// Package cli implements the interactive command shell.
package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"prodreport/local-app/internal/data"
	"prodreport/local-app/internal/event"
	"prodreport/local-app/internal/export"
	"prodreport/local-app/internal/log"
	"prodreport/local-app/internal/session"
	"prodreport/local-app/internal/ui"
)

const defaultPrompt = "prodreport> "

// CLI reads commands from the terminal and dispatches them to the
// managers. Every accepted line counts as user activity for the
// session's inactivity timer.
type CLI struct {
	rl        *readline.Instance
	ui        *ui.UI
	data      *data.DataManager
	session   *session.SessionManager
	events    *event.EventManager
	exporter  *export.Exporter
	exportDir string
	logger    *log.Logger
}

// NewCLI creates a new CLI instance.
func NewCLI(dataManager *data.DataManager, sessionManager *session.SessionManager, eventManager *event.EventManager, exporter *export.Exporter, exportDir string, logger *log.Logger) (*CLI, error) {
	if dataManager == nil {
		return nil, fmt.Errorf("dataManager not initialized")
	}
	if sessionManager == nil {
		return nil, fmt.Errorf("sessionManager not initialized")
	}
	if eventManager == nil {
		return nil, fmt.Errorf("eventManager not initialized")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger not initialized")
	}

	rl, err := readline.New(defaultPrompt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}

	return &CLI{
		rl:        rl,
		ui:        ui.NewUI(rl.Stdout(), true),
		data:      dataManager,
		session:   sessionManager,
		events:    eventManager,
		exporter:  exporter,
		exportDir: exportDir,
		logger:    logger,
	}, nil
}

// Run starts the shell and handles user input until exit or EOF.
func (c *CLI) Run() error {
	defer c.rl.Close()

	c.ui.Println("BaseVac Production Reporting")
	c.ui.Println("Type 'help' for a list of commands or 'exit' to quit.")

	// Expiry fires on a timer goroutine; surface it as a warning the
	// way every other operation reports its outcome.
	c.events.Subscribe(event.SessionExpired, func(event.Event) {
		c.ui.Warning("Session expired due to inactivity")
	})

	if c.session.Restore() {
		c.ui.Info("Admin session restored")
	}

	for {
		line, err := c.rl.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Any command line is a qualifying user interaction.
		c.session.Touch()
		c.logger.Command(context.Background(), "Command received", log.Fields{"input": line})

		if c.execute(parseArgs(line)) {
			break
		}
	}

	c.ui.Println("Goodbye!")
	return nil
}

// execute dispatches a parsed command line. It returns true when the
// shell should exit.
func (c *CLI) execute(args []string) bool {
	if len(args) == 0 {
		return false
	}

	switch strings.ToLower(args[0]) {
	case "exit", "quit":
		return true
	case "help":
		c.printHelp(args[1:])
	case "report":
		c.handleReport(args[1:])
	case "dashboard":
		c.handleDashboard()
	case "admin":
		c.handleAdmin(args[1:])
	case "team":
		c.handleTeam(args[1:])
	case "task":
		c.handleTask(args[1:])
	case "standard":
		c.handleStandard(args[1:])
	case "reports":
		c.handleReports(args[1:])
	case "export":
		c.handleExport(args[1:])
	default:
		c.ui.Error(fmt.Sprintf("Unknown command: %s (try 'help')", args[0]))
	}
	return false
}

// Stop closes the input stream, unblocking Run. Safe to call from a
// signal handler goroutine.
func (c *CLI) Stop() {
	c.rl.Close()
}

// requireAdmin gates admin-only operations on the session state.
func (c *CLI) requireAdmin() bool {
	if !c.session.IsAuthenticated() {
		c.ui.Error("Admin login required (use 'admin login')")
		return false
	}
	return true
}

// prompt reads a single trimmed line with a temporary prompt.
func (c *CLI) prompt(label string) (string, error) {
	c.rl.SetPrompt(label)
	defer c.rl.SetPrompt(defaultPrompt)

	line, err := c.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// promptSelect shows a numbered pick list and reads a choice. The
// answer may be an option number or free text.
func (c *CLI) promptSelect(label string, options []string) (string, error) {
	for i, option := range options {
		c.ui.Printf("  %2d. %s\n", i+1, option)
	}
	value, err := c.prompt(label)
	if err != nil {
		return "", err
	}
	if n, convErr := strconv.Atoi(value); convErr == nil && n >= 1 && n <= len(options) {
		return options[n-1], nil
	}
	return value, nil
}

// confirm routes a destructive operation through an explicit y/N
// prompt. Anything but an explicit yes cancels.
func (c *CLI) confirm(question string) bool {
	answer, err := c.prompt(question + " (y/N): ")
	if err != nil {
		return false
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}

// parseArgs splits a command line into arguments, honoring double
// quotes around arguments with spaces.
func parseArgs(input string) []string {
	var args []string
	var current strings.Builder
	inQuotes := false

	for _, char := range input {
		switch char {
		case '"':
			inQuotes = !inQuotes
		case ' ':
			if !inQuotes {
				if current.Len() > 0 {
					args = append(args, current.String())
					current.Reset()
				}
			} else {
				current.WriteRune(char)
			}
		default:
			current.WriteRune(char)
		}
	}

	if current.Len() > 0 {
		args = append(args, current.String())
	}
	return args
}
