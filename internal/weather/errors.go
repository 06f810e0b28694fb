package weather

import "fmt"

// MalformedDataError indicates that a cached or fetched payload is
// missing expected structure, or references a condition code the
// normalizer does not know. Normalization is all-or-nothing; no partial
// report accompanies this error.
type MalformedDataError struct {
	Reason string
	Err    error
}

func (e *MalformedDataError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed weather data: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("malformed weather data: %s", e.Reason)
}

func (e *MalformedDataError) Unwrap() error {
	return e.Err
}

// APIError is the single failure surfaced by Service.GetWeather. It
// wraps whichever fetch or normalization error caused the invocation
// to fail.
type APIError struct {
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *APIError) Unwrap() error {
	return e.Err
}
