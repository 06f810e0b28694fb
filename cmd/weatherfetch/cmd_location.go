package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/khoulihan/weatherfetch/internal/config"
	"github.com/khoulihan/weatherfetch/internal/geocode"
)

var locationCmd = &cobra.Command{
	Use:   "location",
	Short: "Manage saved locations",
	Long:  `Save, delete, and set the default named location.`,
}

var locationSaveCmd = &cobra.Command{
	Use:   "save NAME",
	Short: "Save a named location",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocationSave,
}

var locationDeleteCmd = &cobra.Command{
	Use:   "delete NAME",
	Short: "Delete a named location",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocationDelete,
}

var locationSetDefaultCmd = &cobra.Command{
	Use:   "set-default NAME",
	Short: "Set the default location",
	Args:  cobra.ExactArgs(1),
	RunE:  runLocationSetDefault,
}

var (
	locationLatitude  string
	locationLongitude string
	locationAddress   string
)

func init() {
	rootCmd.AddCommand(locationCmd)
	locationCmd.AddCommand(locationSaveCmd)
	locationCmd.AddCommand(locationDeleteCmd)
	locationCmd.AddCommand(locationSetDefaultCmd)

	f := locationSaveCmd.Flags()
	f.StringVar(&locationLatitude, "latitude", "", "latitude of the location")
	f.StringVar(&locationLongitude, "longitude", "", "longitude of the location")
	f.StringVar(&locationAddress, "address", "", "address to resolve to coordinates")
}

func runLocationSave(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	lat, lon := locationLatitude, locationLongitude

	if locationAddress != "" {
		lat, lon, err = geocode.Locate(locationAddress, cfg.GeocodingAPIKey())
		if err != nil {
			if errors.Is(err, geocode.ErrNotFound) {
				return fmt.Errorf("location could not be determined from the provided address")
			}
			return err
		}
	} else if (lat == "") != (lon == "") {
		return fmt.Errorf("both longitude and latitude options are required if either is specified")
	}

	if lat == "" {
		return fmt.Errorf("no location information was specified: use --address or --latitude and --longitude")
	}

	cfg.SaveNamedLocation(args[0], lat, lon)
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Location saved.")
	return nil
}

func runLocationDelete(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if err := cfg.DeleteLocation(args[0]); err != nil {
		return fmt.Errorf("location not found")
	}
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Location deleted.")
	return nil
}

func runLocationSetDefault(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	cfg.SetDefaultLocation(args[0])
	if err := cfg.Save(); err != nil {
		return err
	}
	fmt.Println("Default location set.")
	return nil
}
