package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rmOffsets []int

var rmCmd = &cobra.Command{
	Use:   "rm [<id>...]",
	Short: "Remove items by identifier or by display position",
	Long: `Remove items from the list.

With identifier arguments, each item is removed by its UUID. With --at,
the given display positions are resolved to identifiers in a single locked
operation before anything is removed, so the positions refer to the list
exactly as shown by the last 'todos list'. Out-of-range positions are
ignored.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 && len(rmOffsets) == 0 {
			return fmt.Errorf("provide item ids or --at offsets")
		}

		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		for _, id := range args {
			existed, err := s.Delete(id)
			if err != nil {
				return fmt.Errorf("failed to remove %s: %w", id, err)
			}
			if !existed {
				fmt.Printf("not found: %s\n", id)
				continue
			}
			fmt.Printf("removed %s\n", id)
		}

		if len(rmOffsets) > 0 {
			removed, err := s.DeleteAtOffsets(rmOffsets...)
			if err != nil {
				return fmt.Errorf("failed to remove at offsets: %w", err)
			}
			fmt.Printf("removed %d item(s)\n", removed)
		}
		return nil
	},
}

func init() {
	rmCmd.Flags().IntSliceVar(&rmOffsets, "at", nil, "display positions to remove (comma separated)")
}
