package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"payctl/internal/config"
	"payctl/internal/logging"
)

var (
	// Variables to hold flag values
	serverURL      string
	logLevel       string
	requestTimeout int
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage payctl configuration",
	Long:  "View and update payctl configuration settings",
}

var configGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Get configuration value",
	Long:  "Display specific configuration value or all configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		out := cmd.OutOrStdout()

		// If no argument is provided, show all config
		if len(args) == 0 {
			fmt.Fprintln(out, "Current configuration:")
			fmt.Fprintf(out, "Server URL: %s\n", cfg.ServerURL)
			fmt.Fprintf(out, "Log level: %s\n", cfg.LogLevel)
			fmt.Fprintf(out, "Request timeout: %s\n", cfg.RequestTimeout())
			if cfg.Email != "" {
				fmt.Fprintf(out, "Email: %s\n", cfg.Email)
			}
			return nil
		}

		// Show specific config value
		switch args[0] {
		case "server-url":
			fmt.Fprintln(out, cfg.ServerURL)
		case "log-level":
			fmt.Fprintln(out, cfg.LogLevel)
		case "request-timeout":
			fmt.Fprintln(out, int(cfg.RequestTimeout().Seconds()))
		case "email":
			fmt.Fprintln(out, cfg.Email)
		default:
			return fmt.Errorf("unknown configuration key: %s", args[0])
		}

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set configuration values",
	Long:  "Update configuration settings like server URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadGlobalConfig()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		out := cmd.OutOrStdout()

		// Update configuration based on provided flags
		configUpdated := false

		if serverURL != "" {
			oldURL := cfg.ServerURL
			cfg.ServerURL = serverURL
			fmt.Fprintf(out, "Server URL updated: %s -> %s\n", oldURL, serverURL)
			configUpdated = true
		}

		if logLevel != "" {
			if _, err := logrus.ParseLevel(logLevel); err != nil {
				return fmt.Errorf("invalid log level: %w", err)
			}
			cfg.LogLevel = logLevel
			fmt.Fprintf(out, "Log level updated: %s\n", logLevel)
			configUpdated = true
		}

		if requestTimeout != 0 {
			if requestTimeout < 0 {
				return fmt.Errorf("request timeout must be positive: %d", requestTimeout)
			}
			cfg.RequestTimeoutSeconds = requestTimeout
			fmt.Fprintf(out, "Request timeout updated: %ds\n", requestTimeout)
			configUpdated = true
		}

		// Save configuration if it was updated
		if configUpdated {
			if err := config.SaveGlobalConfig(cfg); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			printSuccess(out, "Configuration updated successfully.")
		} else {
			fmt.Fprintln(out, "No changes were made to the configuration.")
		}

		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long:  "Create a new configuration file with default values",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := config.GetGlobalConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		out := cmd.OutOrStdout()

		// Check if config file exists
		if _, err := os.Stat(configPath); err == nil {
			printWarning(out, "Configuration file already exists.")
			fmt.Fprintln(out, "Use 'payctl config set' to modify existing configuration.")
			return nil
		}

		cfg := config.Default()
		if serverURL != "" {
			cfg.ServerURL = serverURL
		}

		if err := config.SaveGlobalConfig(cfg); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}

		printSuccess(out, "Configuration initialized successfully.")
		fmt.Fprintf(out, "Configuration file created at: %s\n", configPath)
		return nil
	},
}

var configPathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show configuration file paths",
	Long:  "Display paths to the configuration, token and log files",
	RunE: func(cmd *cobra.Command, args []string) error {
		globalConfigDir, err := config.GetGlobalConfigDir()
		if err != nil {
			return err
		}
		globalConfigPath, err := config.GetGlobalConfigPath()
		if err != nil {
			return err
		}
		globalTokenPath := filepath.Join(globalConfigDir, ".auth_token")
		logPath := filepath.Join(globalConfigDir, logging.LogFileName)

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Global config paths:")
		fmt.Fprintf(out, "- Config directory: %s\n", globalConfigDir)
		fmt.Fprintf(out, "- Config file: %s\n", globalConfigPath)
		fmt.Fprintf(out, "- Auth token file: %s\n", globalTokenPath)
		fmt.Fprintf(out, "- Log file: %s\n", logPath)

		// Check existence
		fmt.Fprintln(out, "\nExistence status:")
		for _, entry := range []struct{ name, path string }{
			{"Config file", globalConfigPath},
			{"Auth token", globalTokenPath},
			{"Log file", logPath},
		} {
			if _, err := os.Stat(entry.path); os.IsNotExist(err) {
				fmt.Fprintf(out, "- %s: Does not exist\n", entry.name)
			} else {
				fmt.Fprintf(out, "- %s: Exists\n", entry.name)
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathsCmd)

	configSetCmd.Flags().StringVar(&serverURL, "server-url", "", "Set API server URL")
	configSetCmd.Flags().StringVar(&logLevel, "log-level", "", "Set log level (debug, info, warn, error)")
	configSetCmd.Flags().IntVar(&requestTimeout, "request-timeout", 0, "Set request timeout in seconds")

	configInitCmd.Flags().StringVar(&serverURL, "server-url", "", "Set API server URL")
}
