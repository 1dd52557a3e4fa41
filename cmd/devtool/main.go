package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func newRegistry() *Registry {
	r := NewRegistry()
	r.Register(&WaitForDBCommand{connect: connectPool})
	r.Register(&MigrateCommand{connect: connectPool})
	r.Register(&SeedCommand{connect: connectPool})
	return r
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	registry := newRegistry()
	if len(args) < 1 {
		registry.PrintHelp(out)
		return 1
	}

	cmd, ok := registry.Get(args[0])
	if !ok {
		PrintError("unknown command %q", args[0])
		registry.PrintHelp(out)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.Run(ctx, args[1:]); err != nil {
		PrintError("%s: %v", cmd.Name(), err)
		return 1
	}
	return 0
}
