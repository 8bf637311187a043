package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"notectl/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the notectl configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}

		if _, err := os.Stat(path); err == nil {
			fatal("Error", fmt.Errorf("config file already exists at %s", path))
		}

		if err := config.Write(config.Default(), path); err != nil {
			fatal("Error writing config", err)
		}

		fmt.Printf("Config written to %s\n", path)
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := cfgFile
		if path == "" {
			path = config.DefaultPath()
		}
		fmt.Println(path)
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}
