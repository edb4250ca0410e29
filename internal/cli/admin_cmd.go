// This file contains the admin commands: login/logout, reference data
// management, report clearing, and export.
package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"prodreport/local-app/internal/export"
	"prodreport/local-app/internal/session"
)

func (c *CLI) handleAdmin(args []string) {
	if len(args) == 0 {
		c.ui.Error("Usage: admin <login|logout>")
		return
	}

	switch args[0] {
	case "login":
		c.handleAdminLogin()
	case "logout":
		c.session.Logout()
		c.ui.Info("Logged out successfully")
	default:
		c.ui.Error(fmt.Sprintf("Unknown admin operation: %s", args[0]))
	}
}

func (c *CLI) handleAdminLogin() {
	if c.session.IsAuthenticated() {
		c.ui.Info("Already logged in")
		return
	}

	username, err := c.prompt("Username: ")
	if err != nil {
		return
	}
	password, err := c.rl.ReadPassword("Password: ")
	if err != nil {
		return
	}

	if err := c.session.Login(username, string(password)); err != nil {
		if errors.Is(err, session.ErrInvalidCredentials) {
			c.ui.Error("Invalid username or password")
		} else {
			c.ui.Error(err.Error())
		}
		return
	}
	c.ui.Success("Login successful!")
}

func (c *CLI) handleTeam(args []string) {
	if len(args) == 0 {
		c.ui.Error("Usage: team <list|add|remove> [name]")
		return
	}

	switch args[0] {
	case "list":
		for _, member := range c.data.TeamManager.TeamList() {
			c.ui.Println("  " + member)
		}
	case "add":
		if !c.requireAdmin() {
			return
		}
		name := strings.Join(args[1:], " ")
		if err := c.data.TeamManager.TeamAdd(name); err != nil {
			c.ui.Error(err.Error())
			return
		}
		c.ui.Success("Team member added successfully")
	case "remove":
		if !c.requireAdmin() {
			return
		}
		name := strings.Join(args[1:], " ")
		if !c.confirm(fmt.Sprintf("Are you sure you want to remove %q?", name)) {
			c.ui.Info("Cancelled")
			return
		}
		removed, err := c.data.TeamManager.TeamRemove(name)
		if err != nil {
			c.ui.Error(err.Error())
			return
		}
		if removed == 0 {
			c.ui.Warning("Team member not found")
			return
		}
		c.ui.Success("Team member removed successfully")
	default:
		c.ui.Error(fmt.Sprintf("Unknown team operation: %s", args[0]))
	}
}

func (c *CLI) handleTask(args []string) {
	if len(args) == 0 {
		c.ui.Error("Usage: task <list|add|remove> [label]")
		return
	}

	switch args[0] {
	case "list":
		for i, task := range c.data.TaskManager.TaskList() {
			c.ui.Printf("  %2d. %s\n", i+1, task)
		}
	case "add":
		if !c.requireAdmin() {
			return
		}
		label := strings.Join(args[1:], " ")
		if err := c.data.TaskManager.TaskAdd(label); err != nil {
			c.ui.Error(err.Error())
			return
		}
		c.ui.Success("Task added successfully")
	case "remove":
		if !c.requireAdmin() {
			return
		}
		label := c.resolveTask(strings.Join(args[1:], " "))
		if !c.confirm("Are you sure you want to remove this task? Its standard time is removed too.") {
			c.ui.Info("Cancelled")
			return
		}
		removed, err := c.data.TaskManager.TaskRemove(label)
		if err != nil {
			c.ui.Error(err.Error())
			return
		}
		if removed == 0 {
			c.ui.Warning("Task not found")
			return
		}
		c.ui.Success("Task removed successfully")
	default:
		c.ui.Error(fmt.Sprintf("Unknown task operation: %s", args[0]))
	}
}

func (c *CLI) handleStandard(args []string) {
	if len(args) == 0 {
		c.ui.Error("Usage: standard <list|set> [task] [hours]")
		return
	}

	switch args[0] {
	case "list":
		times := c.data.StandardTimeManager.StandardTimeList()
		tasks := make([]string, 0, len(times))
		for task := range times {
			tasks = append(tasks, task)
		}
		sort.Strings(tasks)
		for _, task := range tasks {
			c.ui.Printf("  %-50s %6.2f hrs\n", truncate(task, 50), times[task])
		}
	case "set":
		if !c.requireAdmin() {
			return
		}
		if len(args) < 3 {
			c.ui.Error("Usage: standard set <task> <hours>")
			return
		}
		hours, err := strconv.ParseFloat(args[len(args)-1], 64)
		if err != nil {
			c.ui.Error("Hours must be a number")
			return
		}
		task := c.resolveTask(strings.Join(args[1:len(args)-1], " "))
		if err := c.data.StandardTimeManager.StandardTimeSet(task, hours); err != nil {
			c.ui.Error(err.Error())
			return
		}
		c.ui.Success("Standard time set successfully")
	default:
		c.ui.Error(fmt.Sprintf("Unknown standard operation: %s", args[0]))
	}
}

func (c *CLI) handleReports(args []string) {
	if len(args) == 0 || args[0] != "clear" {
		c.ui.Error("Usage: reports clear")
		return
	}
	if !c.requireAdmin() {
		return
	}
	if !c.confirm("Are you sure you want to clear ALL report data? This action cannot be undone!") {
		c.ui.Info("Cancelled")
		return
	}
	if err := c.data.ReportManager.ReportClear(); err != nil {
		c.ui.Error(err.Error())
		return
	}
	c.ui.Success("All reports cleared successfully")
}

func (c *CLI) handleExport(args []string) {
	if !c.requireAdmin() {
		return
	}

	filename := export.DefaultFilename(time.Now())
	if len(args) > 0 {
		filename = args[0]
	}
	if err := os.MkdirAll(c.exportDir, 0755); err != nil {
		c.ui.Error(err.Error())
		return
	}
	path := filepath.Join(c.exportDir, filename)

	if err := c.exporter.WriteFile(c.data.ReportManager.ReportAll(), path); err != nil {
		if errors.Is(err, export.ErrNoReports) {
			c.ui.Warning("No reports to export")
		} else {
			c.ui.Error(err.Error())
		}
		return
	}
	c.ui.Success("Report exported to " + path)
}

// resolveTask maps a catalog position (as typed in 'task list') to its
// label; anything else passes through as a literal label.
func (c *CLI) resolveTask(value string) string {
	tasks := c.data.TaskManager.TaskList()
	if n, err := strconv.Atoi(value); err == nil && n >= 1 && n <= len(tasks) {
		return tasks[n-1]
	}
	return value
}
