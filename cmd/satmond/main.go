// Command satmond runs the satellite status, telemetry and users HTTP services.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"satellite-monitor-backend/config"
)

var (
	logger     = log.New(os.Stdout, "satmond ", log.LstdFlags)
	configPath string
	cfg        *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "satmond",
	Short: "Satmond serves simulated satellite status and telemetry.",
	Long: `Satmond runs the satellite status service, the satellite telemetry service
and the users service. The configuration file is taken from --config, then the
CONFIG_PATH environment variable, then ./config/config.yaml.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" {
			return nil
		}
		path := resolveConfigPath(configPath)
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		logger.Printf("configuration loaded successfully from %s", path)
		cfg = loaded
		return nil
	},
}

func resolveConfigPath(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "./config/config.yaml" // Default path for local development
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to the YAML configuration file")
	rootCmd.AddCommand(statusCmd, telemetryCmd, usersCmd, allCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
