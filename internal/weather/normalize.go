package weather

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

// Condition glyphs keyed by the provider's icon code. The glyphs are
// nerd font weather icons.
// TODO: Allow alternative glyph sets for terminals without a nerd font.
var conditionIcons = map[string]string{
	"01d": "",
	"01n": "",
	"02d": "",
	"02n": "",
	"03d": "",
	"03n": "",
	"04d": "",
	"04n": "",
	"09d": "",
	"09n": "",
	"10d": "",
	"10n": "",
	"11d": "",
	"11n": "",
	"13d": "",
	"13n": "",
	"50d": "",
	"50n": "",
}

// Hex colours for each condition code. Must cover exactly the same
// codes as conditionIcons; init enforces that.
var conditionColours = map[string]string{
	"01d": "#e5c07b",
	"01n": "#34e2e2",
	"02d": "#e5c07b",
	"02n": "#34e2e2",
	"03d": "#eea825",
	"03n": "#56b6c2",
	"04d": "#abb2bf",
	"04n": "#6f737b",
	"09d": "#abb2bf",
	"09n": "#6f737b",
	"10d": "#abb2bf",
	"10n": "#6f737b",
	"11d": "#e06c75",
	"11n": "#e05661",
	"13d": "#f2f2f2",
	"13n": "#abb2bf",
	"50d": "#abb2bf",
	"50n": "#6f737b",
}

func init() {
	if len(conditionIcons) != len(conditionColours) {
		panic("weather: condition icon and colour tables differ in size")
	}
	for code := range conditionIcons {
		if _, ok := conditionColours[code]; !ok {
			panic(fmt.Sprintf("weather: condition code %q has an icon but no colour", code))
		}
	}
}

// payload is the subset of the provider response the normalizer
// consumes. Scalars are pointers so that absent keys can be told apart
// from legitimate zero values (0% humidity, a UTC offset of 0).
type payload struct {
	Dt       *int64             `json:"dt"`
	Timezone *int               `json:"timezone"`
	Main     *payloadMain       `json:"main" validate:"required"`
	Weather  []payloadCondition `json:"weather" validate:"required,min=1,dive"`
	Wind     *payloadWind       `json:"wind" validate:"required"`
	Sys      *payloadSys        `json:"sys" validate:"required"`
}

type payloadMain struct {
	Temp      *decimal.Decimal `json:"temp"`
	FeelsLike *decimal.Decimal `json:"feels_like"`
	Pressure  *int             `json:"pressure"`
	Humidity  *int             `json:"humidity"`
}

type payloadCondition struct {
	Icon string `json:"icon" validate:"required"`
}

type payloadWind struct {
	Speed *decimal.Decimal `json:"speed"`
	// Deg may legitimately be absent; the report then carries no
	// direction.
	Deg *decimal.Decimal `json:"deg"`
}

type payloadSys struct {
	Sunrise *int64 `json:"sunrise"`
	Sunset  *int64 `json:"sunset"`
}

// requiredScalars reports the first required scalar field missing from
// the payload. The section pointers are known to be non-nil by the
// time this runs.
func (p *payload) requiredScalars() error {
	checks := []struct {
		name    string
		present bool
	}{
		{"dt", p.Dt != nil},
		{"timezone", p.Timezone != nil},
		{"main.temp", p.Main.Temp != nil},
		{"main.feels_like", p.Main.FeelsLike != nil},
		{"main.pressure", p.Main.Pressure != nil},
		{"main.humidity", p.Main.Humidity != nil},
		{"wind.speed", p.Wind.Speed != nil},
		{"sys.sunrise", p.Sys.Sunrise != nil},
		{"sys.sunset", p.Sys.Sunset != nil},
	}
	for _, c := range checks {
		if !c.present {
			return &MalformedDataError{Reason: fmt.Sprintf("missing field %q", c.name)}
		}
	}
	return nil
}

// Normalize transforms a raw provider response into a Report. It is a
// pure function: no I/O, and byte-for-byte identical input yields an
// identical report. Any structural problem yields a MalformedDataError
// and no report.
func Normalize(raw []byte) (*Report, error) {
	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, &MalformedDataError{Reason: "payload is not valid JSON", Err: err}
	}
	if err := validate.Struct(&p); err != nil {
		return nil, &MalformedDataError{Reason: "payload is missing required structure", Err: err}
	}
	if err := p.requiredScalars(); err != nil {
		return nil, err
	}

	// The weather field is a list; per the API docs the first entry is
	// the primary condition.
	code := p.Weather[0].Icon
	icon, ok := conditionIcons[code]
	if !ok {
		return nil, &MalformedDataError{Reason: fmt.Sprintf("unknown condition code %q", code)}
	}
	colour := conditionColours[code]

	// Sunrise and sunset are reported in the local time of the queried
	// point: a fixed-offset zone built from the payload's UTC offset,
	// never the machine's zone.
	zone := time.FixedZone("local", *p.Timezone)

	report := &Report{
		CalculatedAt: time.Unix(*p.Dt, 0).UTC(),
		Temperature:  p.Main.Temp.Round(1),
		FeelsLike:    p.Main.FeelsLike.Round(1),
		Pressure:     *p.Main.Pressure,
		Humidity:     *p.Main.Humidity,
		Icon:         icon,
		IconColour:   colour,
		Wind: Wind{
			Speed: p.Wind.Speed.Round(2),
		},
		Sunrise: time.Unix(*p.Sys.Sunrise, 0).In(zone),
		Sunset:  time.Unix(*p.Sys.Sunset, 0).In(zone),
	}

	if p.Wind.Deg != nil {
		deg, _ := p.Wind.Deg.Float64()
		report.Wind.Direction = interpretDirection(deg)
	}

	return report, nil
}

// cardinal describes one 22.5° wedge of the compass rose.
// Reference: http://snowfence.umn.edu/Components/winddirectionanddegrees.htm
type cardinal struct {
	lower, upper float64
	label        string
}

var cardinals = [16]cardinal{
	{348.75, 11.25, "N"},
	{11.25, 33.75, "NNE"},
	{33.75, 56.25, "NE"},
	{56.25, 78.75, "ENE"},
	{78.75, 101.25, "E"},
	{101.25, 123.75, "ESE"},
	{123.75, 146.25, "SE"},
	{146.25, 168.75, "SSE"},
	{168.75, 191.25, "S"},
	{191.25, 213.75, "SSW"},
	{213.75, 236.25, "SW"},
	{236.25, 258.75, "WSW"},
	{258.75, 281.25, "W"},
	{281.25, 303.75, "WNW"},
	{303.75, 326.25, "NW"},
	{326.25, 348.75, "NNW"},
}

// interpretDirection maps a wind bearing to a compass-rose label.
// Because the N wedge wraps around 0°, each wedge is first matched
// loosely (>= lower or < upper); the first loose match becomes the
// fallback, and a later wedge that matches both bounds wins outright.
// For bearings outside [0, 360) no wedge matches tightly and the
// fallback is returned.
func interpretDirection(degrees float64) string {
	candidate := ""
	for _, c := range cardinals {
		if degrees >= c.lower || degrees < c.upper {
			if candidate == "" {
				candidate = c.label
			} else if degrees >= c.lower && degrees < c.upper {
				return c.label
			}
		}
	}
	return candidate
}
