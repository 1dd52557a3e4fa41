package main

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
)

const appName = "teambuilder"

// Command is one devtool subcommand
type Command interface {
	Name() string
	Description() string
	Run(ctx context.Context, args []string) error
}

// Registry holds the subcommands in name order
type Registry struct {
	commands []Command
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds cmd; a second command with the same name is a programming
// error and panics at startup
func (r *Registry) Register(cmd Command) {
	i, found := slices.BinarySearchFunc(r.commands, cmd.Name(), func(c Command, name string) int {
		return strings.Compare(c.Name(), name)
	})
	if found {
		panic(fmt.Sprintf("devtool: command %q registered twice", cmd.Name()))
	}
	r.commands = slices.Insert(r.commands, i, cmd)
}

// Get looks a command up by name
func (r *Registry) Get(name string) (Command, bool) {
	i := slices.IndexFunc(r.commands, func(c Command) bool { return c.Name() == name })
	if i < 0 {
		return nil, false
	}
	return r.commands[i], true
}

// List returns the commands sorted by name
func (r *Registry) List() []Command {
	return slices.Clone(r.commands)
}

// PrintHelp writes usage and the command table to w
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintf(w, "Usage: devtool <command> [args...]   (%s)\n\nAvailable Commands:\n", appName)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, cmd := range r.commands {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.Name(), cmd.Description())
	}
	_ = tw.Flush()
}
