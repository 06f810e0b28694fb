// Package providers contains the HTTP client for the OpenWeatherMap
// current-weather endpoint.
package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const openWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// TransportError indicates the request could not be sent or received
// at all (DNS failure, connection refused, timeout).
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed to reach weather API: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// StatusError indicates a response with a non-200 status. The body is
// kept for diagnostics.
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("received error response from API: %d", e.Status)
}

// Client fetches current weather from OpenWeatherMap. It holds no
// caching logic; it performs exactly one round trip per call.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a Client using the given HTTP client, which is
// expected to carry the transport timeout.
func NewClient(httpClient *http.Client) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    openWeatherBaseURL,
	}
}

// Fetch performs one GET against the current-weather endpoint and
// returns the raw response body. Coordinates are passed through as
// strings, preserving the precision the caller supplied.
func (c *Client) Fetch(ctx context.Context, lat, lon, units, apiKey string) ([]byte, error) {
	values := url.Values{}
	values.Set("lat", lat)
	values.Set("lon", lon)
	values.Set("appid", apiKey)
	values.Set("units", units)

	u := fmt.Sprintf("%s?%s", c.baseURL, values.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Status: resp.StatusCode, Body: body}
	}

	return body, nil
}
