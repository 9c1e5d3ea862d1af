package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/arthur-debert/identified/types"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	listDone    bool
	listPending bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List items in display order",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore()
		if err != nil {
			return err
		}
		defer func() { _ = s.Close() }()

		items := s.List()
		if listDone || listPending {
			filtered := items[:0]
			for _, item := range items {
				if (listDone && item.Done) || (listPending && !item.Done) {
					filtered = append(filtered, item)
				}
			}
			items = filtered
		}

		return printItems(items)
	},
}

func init() {
	listCmd.Flags().BoolVar(&listDone, "done", false, "show only completed items")
	listCmd.Flags().BoolVar(&listPending, "pending", false, "show only pending items")
}

// printItems renders items in the configured output format.
func printItems(items []types.Item) error {
	switch cfg.GetString("format") {
	case "json":
		data, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal items: %w", err)
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(items)
		if err != nil {
			return fmt.Errorf("failed to marshal items: %w", err)
		}
		fmt.Print(string(data))
	case "text":
		for i, item := range items {
			mark := " "
			if item.Done {
				mark = "x"
			}
			fmt.Printf("%3d [%s] %s  %s\n", i, mark, item.Title, item.UUID)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q, using text\n", cfg.GetString("format"))
		for i, item := range items {
			fmt.Printf("%3d %s  %s\n", i, item.Title, item.UUID)
		}
	}
	return nil
}
