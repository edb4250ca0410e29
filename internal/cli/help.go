// This file contains the help command and its command reference table.
package cli

func (c *CLI) printHelp(args []string) {
	switch len(args) {
	case 0:
		c.showGeneralHelp()
	case 1:
		c.showScopeHelp(args[0])
	default:
		c.showOperationHelp(args[0], args[1])
	}
}

// showGeneralHelp displays an overview of all commands grouped by scope.
func (c *CLI) showGeneralHelp() {
	c.ui.Println("Command syntax: <scope> [operation] [arguments]")
	c.ui.Println("\nAvailable commands:")
	currentScope := ""
	for _, cmd := range commandHelps {
		if cmd.Scope != currentScope {
			c.ui.Printf("\n%s:\n", cmd.Scope)
			currentScope = cmd.Scope
		}
		c.ui.Printf("  %-10s %s\n", cmd.Operation, cmd.ShortDesc)
	}
}

// showScopeHelp displays help for all commands within a scope.
func (c *CLI) showScopeHelp(scope string) {
	c.ui.Printf("Commands for %s:\n\n", scope)
	for _, cmd := range commandHelps {
		if cmd.Scope == scope {
			c.ui.Printf("%-10s %s\n", cmd.Operation, cmd.ShortDesc)
		}
	}
}

// showOperationHelp displays detailed help for one operation.
func (c *CLI) showOperationHelp(scope, operation string) {
	for _, cmd := range commandHelps {
		if cmd.Scope == scope && cmd.Operation == operation {
			c.ui.Printf("Command: %s %s\n", scope, operation)
			c.ui.Printf("Description: %s\n", cmd.LongDesc)
			c.ui.Printf("Syntax: %s\n", cmd.Syntax)
			for _, example := range cmd.Examples {
				c.ui.Printf("Example: %s\n", example)
			}
			return
		}
	}
	c.ui.Printf("No help found for %s %s\n", scope, operation)
}

// CommandHelp represents the help information for one command.
type CommandHelp struct {
	Scope     string
	Operation string
	ShortDesc string
	LongDesc  string
	Syntax    string
	Examples  []string
}

// commandHelps holds the help information for all commands, grouped by
// scope.
var commandHelps = []CommandHelp{
	{
		Scope:     "report",
		Operation: "add",
		ShortDesc: "Submit a daily production report",
		LongDesc:  "Walks through the report form: date, team member, task, time spent, units completed, and comments. Efficiency is calculated when the task has a standard time.",
		Syntax:    "report add",
		Examples:  []string{"report add"},
	},
	{
		Scope:     "report",
		Operation: "recent",
		ShortDesc: "Show the last 10 reports",
		LongDesc:  "Lists the ten most recently submitted reports, newest first.",
		Syntax:    "report recent",
		Examples:  []string{"report recent"},
	},
	{
		Scope:     "dashboard",
		Operation: "",
		ShortDesc: "Show the production dashboard",
		LongDesc:  "Displays today's/this week's/total report counts, average efficiency, recent reports, and per-member performance.",
		Syntax:    "dashboard",
		Examples:  []string{"dashboard"},
	},
	{
		Scope:     "admin",
		Operation: "login",
		ShortDesc: "Log in as administrator",
		LongDesc:  "Prompts for the admin username and password. A session expires after 30 minutes of inactivity.",
		Syntax:    "admin login",
		Examples:  []string{"admin login"},
	},
	{
		Scope:     "admin",
		Operation: "logout",
		ShortDesc: "Log out",
		LongDesc:  "Ends the admin session.",
		Syntax:    "admin logout",
		Examples:  []string{"admin logout"},
	},
	{
		Scope:     "team",
		Operation: "list",
		ShortDesc: "List team members",
		LongDesc:  "Lists all team members.",
		Syntax:    "team list",
		Examples:  []string{"team list"},
	},
	{
		Scope:     "team",
		Operation: "add",
		ShortDesc: "Add a team member (admin)",
		LongDesc:  "Adds a new team member. Duplicates and empty names are rejected.",
		Syntax:    "team add <name>",
		Examples:  []string{"team add Sarah"},
	},
	{
		Scope:     "team",
		Operation: "remove",
		ShortDesc: "Remove a team member (admin)",
		LongDesc:  "Removes a team member after confirmation. Their existing reports are kept.",
		Syntax:    "team remove <name>",
		Examples:  []string{"team remove Sarah"},
	},
	{
		Scope:     "task",
		Operation: "list",
		ShortDesc: "List the task catalog",
		LongDesc:  "Lists the task catalog with the numbers accepted by 'task remove' and 'standard set'.",
		Syntax:    "task list",
		Examples:  []string{"task list"},
	},
	{
		Scope:     "task",
		Operation: "add",
		ShortDesc: "Add a task (admin)",
		LongDesc:  "Adds a new task to the catalog. Duplicates and empty labels are rejected.",
		Syntax:    "task add <label>",
		Examples:  []string{`task add "Paint Frames"`},
	},
	{
		Scope:     "task",
		Operation: "remove",
		ShortDesc: "Remove a task (admin)",
		LongDesc:  "Removes a task after confirmation. The task's standard time, if any, is removed with it.",
		Syntax:    "task remove <label or number>",
		Examples:  []string{`task remove "Paint Frames"`, "task remove 7"},
	},
	{
		Scope:     "standard",
		Operation: "list",
		ShortDesc: "List standard times",
		LongDesc:  "Lists the standard hours (per 12 units) for each task that has one.",
		Syntax:    "standard list",
		Examples:  []string{"standard list"},
	},
	{
		Scope:     "standard",
		Operation: "set",
		ShortDesc: "Set a task's standard time (admin)",
		LongDesc:  "Sets or overwrites the standard hours to produce 12 units of a task. Existing reports keep their recorded efficiency.",
		Syntax:    "standard set <task or number> <hours>",
		Examples:  []string{`standard set "Cut Copper Pipes (Inlets & Exhaust)" 4`, "standard set 7 4"},
	},
	{
		Scope:     "reports",
		Operation: "clear",
		ShortDesc: "Clear all reports (admin)",
		LongDesc:  "Empties the report log after confirmation. Team members, tasks, and standard times are untouched.",
		Syntax:    "reports clear",
		Examples:  []string{"reports clear"},
	},
	{
		Scope:     "export",
		Operation: "",
		ShortDesc: "Export reports to a spreadsheet (admin)",
		LongDesc:  "Writes all reports to an .xlsx file. The default filename embeds today's date.",
		Syntax:    "export [filename]",
		Examples:  []string{"export", "export august.xlsx"},
	},
	{
		Scope:     "system",
		Operation: "exit",
		ShortDesc: "Exit the program",
		LongDesc:  "Exits the program. 'quit' does the same.",
		Syntax:    "exit",
		Examples:  []string{"exit"},
	},
}
