// Package main provides the pageshot command line tool: a self-bootstrapping
// wrapper around Playwright that renders HTML documents in a mobile-emulated
// browser and drives them with scripted action lists.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nShutting down...")
		cancel()
	}()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pageshot",
		Short: "Load HTML in a mobile-emulated browser and run scripted actions",
		Long: `pageshot loads an HTML document in a mobile-emulated Playwright browser
and executes a JSON-scripted list of actions against it: click, scroll,
wait, type and screenshot.

Run "pageshot setup" once to provision the isolated browser environment
next to the binary and register the shell alias; after that the "run"
command (or the alias) drives pages.`,
		Version: version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSetupCommand())
	rootCmd.AddCommand(newRunCommand())

	return rootCmd
}
