package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "weatherfetch",
	Short: "Fetch and render current weather from OpenWeatherMap",
	Long: `weatherfetch resolves a location, fetches current weather from
OpenWeatherMap, caches the response, and renders it through a
user-defined text template.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to the configuration file")
}

func main() {
	// A .env file is optional; it can carry WF_LOCATION.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
