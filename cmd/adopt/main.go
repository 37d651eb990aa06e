// Package main provides the entry point for the adopt CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version     = "0.1.0-dev"
	globalDir   string
	globalToday string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "adopt",
		Short:         "Pet adoption catalog with printable adoption cards",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalDir, "dir", "C", "", "Directory containing .adopt (default: current directory)")
	rootCmd.PersistentFlags().StringVar(&globalToday, "today", "", "Pin today's date (YYYY-MM-DD) instead of reading the system clock")

	rootCmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newImportCmd(),
		newExportCmd(),
		newListCmd(),
		newShowCmd(),
		newCardCmd(),
		newPreviewCmd(),
		newRemoveCmd(),
		newServeCmd(),
	)

	return rootCmd
}
