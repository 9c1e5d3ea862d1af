package main

import (
	"errors"
	"fmt"

	"github.com/arthur-debert/identified/identified/store"
	"github.com/spf13/cobra"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>...",
	Short: "Toggle the done state of items by identifier",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		for _, id := range args {
			if err := s.Toggle(id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					// The item may have been removed since the id was
					// captured; report and keep going.
					fmt.Printf("not found: %s\n", id)
					continue
				}
				return fmt.Errorf("failed to toggle %s: %w", id, err)
			}
			fmt.Printf("toggled %s\n", id)
		}
		return nil
	},
}
