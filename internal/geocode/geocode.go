// Package geocode resolves free-form addresses to coordinates using
// the Google geocoding API.
package geocode

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/kelvins/geocoder"
)

// ErrNotFound is returned when the geocoding API answered but had no
// coordinates for the address.
var ErrNotFound = errors.New("could not find location of address")

// noResultsMessage is the message the geocoder library returns for a
// ZERO_RESULTS response. It exports no sentinel errors, so the message
// text is the only way to tell an empty result from a failed request.
const noResultsMessage = "No results found."

// mapError distinguishes a genuine empty result from transport, quota
// and decoding failures.
func mapError(err error) error {
	if err.Error() == noResultsMessage {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return fmt.Errorf("geocoding failed: %w", err)
}

// Locate resolves an address to latitude and longitude strings.
// Callers must not attempt a weather fetch when this fails.
func Locate(address, apiKey string) (lat, lon string, err error) {
	if apiKey == "" {
		return "", "", errors.New("geocoding API key has not been set")
	}

	geocoder.ApiKey = apiKey

	location, err := geocoder.Geocoding(geocoder.Address{Street: address})
	if err != nil {
		return "", "", mapError(err)
	}

	lat = strconv.FormatFloat(location.Latitude, 'f', -1, 64)
	lon = strconv.FormatFloat(location.Longitude, 'f', -1, 64)
	return lat, lon, nil
}
