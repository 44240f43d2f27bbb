// Package app implements the mcpconf CLI commands
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/mcpconf/mcpconf/pkg/registry"
)

var (
	cfgFile string
	debug   bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "mcpconf",
	Short:         "MCP server registry management",
	Long:          "Manage a registry of MCP server definitions and convert them between client configuration formats.",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/mcpconf/config.yaml)")
	rootCmd.PersistentFlags().StringP("registry", "r", "mcp-registry.yaml",
		"registry file path")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable debug logging")

	_ = viper.BindPFlag("registry", rootCmd.PersistentFlags().Lookup("registry"))
}

func initConfig() {
	viper.SetDefault("registry", "mcp-registry.yaml")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mcpconf"))
		}
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("MCPCONF")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			fmt.Fprintf(os.Stderr, "warning: could not read config file: %v\n", err)
		}
	}

	if debug {
		if l, err := zap.NewDevelopment(); err == nil {
			logger = l
		}
	}
}

// registryLoader returns the loader for the configured registry path.
func registryLoader() *registry.Loader {
	return registry.NewLoader(viper.GetString("registry"))
}

// openRegistry loads the configured registry, creating an empty one in
// memory when the file does not exist yet.
func openRegistry() (*registry.Registry, error) {
	return registryLoader().LoadOrInit(registry.WithLogger(logger))
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
