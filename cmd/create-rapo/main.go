// Package main is the entry point for the create-rapo CLI.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rapo/cli/internal/cmd"
	"github.com/rapo/cli/internal/cmdutil"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := cmd.NewRootCmd().ExecuteContext(ctx)
	code, report := cmdutil.ExitCode(err)
	if report {
		cmdutil.PrintError(os.Stderr, err)
	}
	stop()
	os.Exit(code)
}
