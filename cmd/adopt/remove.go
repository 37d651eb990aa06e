package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "remove <id-or-name>",
		Short: "Remove a listing from the catalog",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runRemove(cmd *cobra.Command, ref string, force bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	return withDeps(ctx, func(d *Deps) error {
		listing, err := d.ListingHandler.HandleGet(ctx, ref)
		if err != nil {
			return err
		}

		if !force {
			prompt := fmt.Sprintf("Remove %s (%s)?", listing.Record.Name(), listing.ID)
			if !confirmAction(cmd.InOrStdin(), out, prompt) {
				fmt.Fprintln(out, "Cancelled.")
				return nil
			}
		}

		if _, err := d.ListingHandler.HandleRemove(ctx, listing.ID); err != nil {
			return fmt.Errorf("removing listing: %w", err)
		}

		fmt.Fprintf(out, "Removed %s\n", listing.Record.Name())
		return nil
	})
}

func confirmAction(in io.Reader, out io.Writer, prompt string) bool {
	reader := bufio.NewReader(in)
	fmt.Fprintf(out, "%s [y/N]: ", prompt)
	response, _ := reader.ReadString('\n') // EOF or error counts as "no"
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
