package weather

import (
	"time"

	"github.com/shopspring/decimal"
)

// Report is the normalized view of one current-weather response.
// All rounding happens during normalization; renderers must use these
// values as-is.
type Report struct {
	// CalculatedAt is when the provider computed the measurement, UTC.
	CalculatedAt time.Time

	// Temperature and FeelsLike are rounded to 1 fractional digit.
	Temperature decimal.Decimal
	FeelsLike   decimal.Decimal

	Pressure int // hPa
	Humidity int // percent

	// Icon is a glyph for the reported condition; IconColour is the
	// matching hex colour.
	Icon       string
	IconColour string

	Wind Wind

	// Sunrise and Sunset carry the fixed-offset zone reported by the
	// provider for the queried location.
	Sunrise time.Time
	Sunset  time.Time
}

// Wind holds the normalized wind reading. Direction is one of the 16
// compass-rose labels, or empty when the payload did not include a
// bearing.
type Wind struct {
	// Speed is rounded to 2 fractional digits.
	Speed     decimal.Decimal
	Direction string
}
