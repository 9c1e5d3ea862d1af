// This is the main entry point for the todos CLI, a small list manager
// built on the identified collection and its JSON file store.
// Build with: go build -o bin/todos ./cmd/todos
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
