// Root command for the stockroom CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/shelftools/stockroom/internal/paths"
	"github.com/shelftools/stockroom/pkg/stockroom"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagFile      string
	flagJSON      bool
)

// configFile holds the inventory_file value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configFile string

var rootCmd = &cobra.Command{
	Use:     "stockroom",
	Short:   "Stockroom is a retail inventory manager",
	Long: `Stockroom keeps a small retail inventory in a plain-text file and
lets you list, add, restock, remove, and value the stocked items, either
through subcommands or an interactive menu.

Run with no subcommand to open the interactive menu.`,
	Version: stockroom.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configFile = cfg.GetString(cfgKeyFile)
		return nil
	},
	Args: cobra.NoArgs,
	// Bare invocation opens the interactive menu.
	RunE: runMenu,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: $(CWD)/.stockroom)")
	rootCmd.PersistentFlags().StringVar(&flagFile, "file", "", "inventory file (default: $(CWD)/inventory.txt)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(findCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(totalCmd)
	rootCmd.AddCommand(menuCmd)
}

// resolveConfigDir returns the configuration directory following the
// precedence chain: --config-dir flag > STOCKROOM_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}

// resolveFile returns the inventory file path following the precedence
// chain: --file flag > config.yaml inventory_file > STOCKROOM_FILE env > default.
func resolveFile() (string, error) {
	return paths.ResolveFile(flagFile, configFile)
}
