package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/identified/identified/store"
	"github.com/arthur-debert/identified/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	storePath string
	format    string
)

var cfg = viper.New()

var rootCmd = &cobra.Command{
	Use:   "todos",
	Short: "Todos CLI - identifier-keyed list management",
	Long: `Todos manages a simple list stored as an ordered JSON file. Every item
has a stable UUID, and all mutations are keyed by it; positions are only a
display concern.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (TODOS_*)
3. Configuration files (custom path or default locations)

Configuration file discovery:
  TODOS_CONFIG=/path/to/config.yaml  # Custom config file path
  ./todos.yaml                       # Current directory
  ~/.todos/todos.yaml                # User directory

Examples:
  todos add "Buy groceries"
  todos list
  todos done 7f9c24e5-...
  todos rm --at 0,2`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&storePath, "store", "s", "", "path to the list file (default todos.json)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "output format: text|json|yaml")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doneCmd)
	rootCmd.AddCommand(rmCmd)
}

// initConfig wires viper so flags, TODOS_* environment variables, and a
// yaml config file all resolve the same keys.
func initConfig() {
	if configFile := os.Getenv("TODOS_CONFIG"); configFile != "" {
		cfg.SetConfigFile(configFile)
	} else {
		cfg.SetConfigName("todos")
		cfg.SetConfigType("yaml")
		cfg.AddConfigPath(".")
		cfg.AddConfigPath("$HOME/.todos")
	}

	cfg.AutomaticEnv()
	cfg.SetEnvPrefix("TODOS")
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	// Missing config files are fine; flags and env still apply.
	_ = cfg.ReadInConfig()
	_ = cfg.BindPFlags(rootCmd.PersistentFlags())
}

// openStore opens the list file resolved from flag, env, or config.
func openStore() (types.Store, error) {
	path := cfg.GetString("store")
	if path == "" {
		path = "todos.json"
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("invalid store path: %w", err)
	}

	return store.New(absPath)
}
