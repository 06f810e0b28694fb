package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/khoulihan/weatherfetch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration values",
}

var configSetKeyCmd = &cobra.Command{
	Use:   "set-key KEY",
	Short: "Set the OpenWeatherMap API key",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetKey,
}

var configSetGeocodingKeyCmd = &cobra.Command{
	Use:   "set-geocoding-key KEY",
	Short: "Set the Google geocoding API key used for address lookup",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetGeocodingKey,
}

var configSetUnitsCmd = &cobra.Command{
	Use:   "set-units UNITS",
	Short: "Set the default unit system (standard, metric or imperial)",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetUnits,
}

var configSetCacheCmd = &cobra.Command{
	Use:   "set-cache MINUTES",
	Short: "Set how long fetched responses stay fresh, in minutes",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetCache,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configSetKeyCmd)
	configCmd.AddCommand(configSetGeocodingKeyCmd)
	configCmd.AddCommand(configSetUnitsCmd)
	configCmd.AddCommand(configSetCacheCmd)
}

func runConfigSetKey(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cfg.SetAPIKey(args[0])
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("API key set.")
	return nil
}

func runConfigSetGeocodingKey(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cfg.SetGeocodingAPIKey(args[0])
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Geocoding API key set.")
	return nil
}

func runConfigSetUnits(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := cfg.SetUnits(args[0]); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Default units set.")
	return nil
}

func runConfigSetCache(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	minutes, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("cache duration must be a whole number of minutes")
	}
	if err := cfg.SetCacheDuration(minutes); err != nil {
		return err
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Cache duration set.")
	return nil
}
