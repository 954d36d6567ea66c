package main

import (
	"os"
)

func newRegistry() *Registry {
	registry := NewRegistry()
	registry.Register(&MigrateCommand{})
	registry.Register(&SyncCommand{})
	registry.Register(&SpawnCommand{})
	registry.Register(&InspectCommand{})
	registry.Register(&HistoryCommand{})
	registry.Register(&DaemonCommand{})
	registry.Register(&GemsCommand{out: os.Stdout})
	registry.Register(&EnchantmentsCommand{out: os.Stdout})
	return registry
}

func main() {
	registry := newRegistry()

	if len(os.Args) < 2 {
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	cmd, ok := registry.Get(os.Args[1])
	if !ok {
		PrintError("unknown command %q", os.Args[1])
		registry.PrintHelp(os.Stdout)
		os.Exit(1)
	}

	if err := cmd.Run(os.Args[2:]); err != nil {
		PrintError("%s: %v", cmd.Name(), err)
		os.Exit(1)
	}
}
