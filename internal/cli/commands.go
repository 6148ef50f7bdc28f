package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

type command struct {
	name    string
	args    string
	summary string
	run     func(ctx context.Context, s *session, args []string) error
	subs    []command
}

func commands() []command {
	return []command{
		{name: "init", summary: "Initialize a project in the repository root", run: runInit},
		{name: "status", summary: "Show a summary of the project", run: runStatus},
		{name: "print", args: "[--json] [--all]", summary: "Print the tasks of the project", run: runPrint},
		{name: "print-task", args: "ID", summary: "Print one task", run: runPrintTask},
		{name: "due", args: "[--within 48h] [--notify]", summary: "List tasks that are due soon or overdue", run: runDue},
		{name: "categories", summary: "Manage categories", subs: []command{
			{name: "add", summary: "Add categories", run: runCategoriesAdd},
			{name: "remove", summary: "Remove unused categories", run: runCategoriesRemove},
			{name: "edit", summary: "Rename a category", run: runCategoriesEdit},
			{name: "list", summary: "List categories", run: runCategoriesList},
			{name: "print", args: "[--all] ID", summary: "Print one category and its tasks", run: runCategoriesPrint},
			{name: "default", summary: "Choose the category new tasks go to", run: runCategoriesDefault},
		}},
		{name: "tasks", summary: "Manage tasks", subs: []command{
			{name: "add", summary: "Add tasks", run: runTasksAdd},
			{name: "remove", summary: "Remove tasks", run: runTasksRemove},
			{name: "archive", summary: "Archive tasks", run: runTasksArchive},
			{name: "unarchive", summary: "Restore archived tasks", run: runTasksUnarchive},
			{name: "assign", summary: "Assign users to a task", run: runTasksAssign},
			{name: "unassign", summary: "Unassign users from a task", run: runTasksUnassign},
			{name: "move", summary: "Move tasks to another category", run: runTasksMove},
			{name: "edit", summary: "Edit a task, its checklist or due date", run: runTasksEdit},
			{name: "list", args: "[--all]", summary: "List tasks", run: runTasksList},
			{name: "print", args: "[ID]", summary: "Print one task", run: runTasksPrint},
		}},
		{name: "users", summary: "Manage users", subs: []command{
			{name: "add", summary: "Add users from git history or by hand", run: runUsersAdd},
			{name: "remove", summary: "Remove users", run: runUsersRemove},
			{name: "edit", summary: "Edit a user", run: runUsersEdit},
			{name: "assign", summary: "Assign tasks to a user", run: runUsersAssign},
			{name: "list", summary: "List users", run: runUsersList},
			{name: "print", args: "ID", summary: "Print one user and their tasks", run: runUsersPrint},
			{name: "status", summary: "Show the workload of every user", run: runUsersStatus},
		}},
	}
}

// resolve finds the command named by args and returns the remaining
// arguments. A group named without a subcommand is returned as is.
func resolve(cmds []command, args []string) (command, []string, error) {
	name := args[0]
	for _, cmd := range cmds {
		if cmd.name != name {
			continue
		}
		if cmd.subs == nil || len(args) == 1 {
			return cmd, args[1:], nil
		}
		sub, rest, err := resolve(cmd.subs, args[1:])
		if err != nil {
			return command{}, nil, fmt.Errorf("%s: %w", cmd.name, err)
		}
		sub.name = cmd.name + " " + sub.name
		return sub, rest, nil
	}
	return command{}, nil, fmt.Errorf("unknown command %q, run `crabd help` for usage", name)
}

func (c *CLI) usage(w io.Writer, global *flag.FlagSet) {
	fmt.Fprintf(w, "crabd - a task tracker that lives in your repository\n\n")
	fmt.Fprintf(w, "Usage:\n  crabd [flags] <command> [arguments]\n\nCommands:\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, cmd := range commands() {
		fmt.Fprintf(tw, "  %s\t%s\n", strings.TrimSpace(cmd.name+" "+cmd.args), cmd.summary)
		for _, sub := range cmd.subs {
			fmt.Fprintf(tw, "    %s\t%s\n", strings.TrimSpace(sub.name+" "+sub.args), sub.summary)
		}
	}
	fmt.Fprintf(tw, "  version\tShow version\n")
	fmt.Fprintf(tw, "  help\tShow this help\n")
	tw.Flush()

	fmt.Fprintf(w, "\nFlags:\n")
	global.SetOutput(w)
	global.PrintDefaults()
}

func (c *CLI) groupUsage(w io.Writer, group command) {
	fmt.Fprintf(w, "Usage:\n  crabd %s <command>\n\nCommands:\n", group.name)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, sub := range group.subs {
		fmt.Fprintf(tw, "  %s\t%s\n", strings.TrimSpace(sub.name+" "+sub.args), sub.summary)
	}
	tw.Flush()
}

// flagSet returns a flag set for a command's own flags.
func (s *session) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet("crabd "+name, flag.ContinueOnError)
	fs.SetOutput(s.stderr)
	return fs
}
