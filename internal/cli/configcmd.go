package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configServer string

// configCmd groups the configuration subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the catman configuration",
	Long:  `Create and inspect the catman configuration file.`,
}

// configCreateCmd writes a fresh configuration file
var configCreateCmd = &cobra.Command{
	Use:   "create --server URL",
	Short: "Create the catman configuration file",
	Long: `Create the catman configuration file pointing at a catalog server.

Example:
  catman config create --server http://localhost:5000
  catman config create --server catalog.example.com --config ./catman.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if configServer == "" {
			return fmt.Errorf("server is required")
		}

		cfg := &Config{
			Version: "1.0",
			Server:  MorphServer(configServer),
		}
		if err := cfg.ValidateConfig(); err != nil {
			return err
		}
		if err := cfg.WriteConfig(configFile); err != nil {
			return err
		}

		if jsonOutput {
			printJSON(map[string]string{
				"config": configFile,
				"server": cfg.Server,
			})
		} else {
			fmt.Printf("Configuration written to %s\n", configFile)
			cfg.Print()
		}
		return nil
	},
}

// configShowCmd prints the active configuration
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the active catman configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := LoadConfig(configFile); err != nil {
			return err
		}
		cfg := GetConfig()

		if jsonOutput {
			printJSON(map[string]string{
				"config":   configFile,
				"server":   cfg.Server,
				"username": cfg.Username,
			})
		} else {
			cfg.Print()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configCreateCmd)
	configCmd.AddCommand(configShowCmd)

	configCreateCmd.Flags().StringVar(&configServer, "server", "", "URL of the catalog server")
	configCreateCmd.MarkFlagRequired("server")
}
