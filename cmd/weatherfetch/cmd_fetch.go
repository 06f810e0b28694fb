package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/khoulihan/weatherfetch/internal/cache"
	"github.com/khoulihan/weatherfetch/internal/config"
	"github.com/khoulihan/weatherfetch/internal/geocode"
	"github.com/khoulihan/weatherfetch/internal/render"
	"github.com/khoulihan/weatherfetch/internal/weather"
	"github.com/khoulihan/weatherfetch/internal/weather/providers"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch current weather and render it",
	Long: `Fetch current weather for a location and render it through a template.
The location can be a saved name, an address, or raw coordinates; with
none given, the configured default location is used.`,
	RunE: runFetch,
}

var (
	fetchLatitude  string
	fetchLongitude string
	fetchAddress   string
	fetchLocation  string
	fetchTemplate  string
	fetchUnits     string
	fetchOut       string
)

func init() {
	rootCmd.AddCommand(fetchCmd)

	f := fetchCmd.Flags()
	f.StringVar(&fetchLatitude, "latitude", "", "latitude of the location")
	f.StringVar(&fetchLongitude, "longitude", "", "longitude of the location")
	f.StringVar(&fetchAddress, "address", "", "address to resolve to coordinates")
	f.StringVar(&fetchLocation, "location", "", "name of a saved location (also read from WF_LOCATION)")
	f.StringVar(&fetchTemplate, "template", "", "name of a saved output template")
	f.StringVar(&fetchUnits, "units", "", "unit system: standard, metric or imperial")
	f.StringVar(&fetchOut, "out", "", "write output to a file instead of stdout")
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	lat, lon := fetchLatitude, fetchLongitude

	locationName := fetchLocation
	if locationName == "" {
		locationName = os.Getenv("WF_LOCATION")
	}

	switch {
	case locationName != "":
		lat, lon, err = cfg.NamedLocation(locationName)
		if err != nil {
			return fmt.Errorf("the specified location was not found")
		}
	case fetchAddress != "":
		lat, lon, err = geocode.Locate(fetchAddress, cfg.GeocodingAPIKey())
		if err != nil {
			if errors.Is(err, geocode.ErrNotFound) {
				return fmt.Errorf("location could not be determined from the provided address")
			}
			return err
		}
	case (lat == "") != (lon == ""):
		return fmt.Errorf("both longitude and latitude options are required if either is specified")
	}

	if lat == "" {
		if def := cfg.DefaultLocation(); def != "" {
			lat, lon, err = cfg.NamedLocation(def)
			if err != nil {
				// Deleting a location clears the default, so this
				// means the config was edited by hand.
				return fmt.Errorf("the default location no longer exists")
			}
		}
	}
	if lat == "" {
		return fmt.Errorf("no location specified: use --address, --location, or --latitude and --longitude")
	}

	if cfg.APIKey() == "" {
		return fmt.Errorf("API key for OpenWeatherMap.org has not been set")
	}

	units := fetchUnits
	if units == "" {
		units = cfg.Units()
	}
	if !slices.Contains(config.ValidUnits, units) {
		return fmt.Errorf("invalid units %q: specify one of standard, metric, imperial", units)
	}

	cacheDir, err := config.CacheDir()
	if err != nil {
		return err
	}

	client := providers.NewClient(&http.Client{Timeout: 30 * time.Second})
	svc := weather.NewService(client, cache.New(cacheDir), cfg.APIKey(), cfg.CacheDuration())

	report, err := svc.GetWeather(cmd.Context(), lat, lon, units)
	if err != nil {
		return err
	}

	var templateText string
	templateName := fetchTemplate
	if templateName == "" {
		templateName = cfg.DefaultTemplate()
	}
	if templateName != "" {
		templateText, err = cfg.Template(templateName)
		if err != nil {
			return fmt.Errorf("specified template does not exist")
		}
	}

	out := render.Render(report, templateText)

	if fetchOut == "" {
		fmt.Println(out)
		return nil
	}
	if err := os.WriteFile(fetchOut, []byte(out), 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
