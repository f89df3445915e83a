package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"hatch-dbh/cmd/hatch-dbh/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := commands.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
