package weather

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// samplePayload builds a well-formed provider response with the given
// numeric fields spliced in verbatim, so tests control the exact JSON
// number literals the normalizer sees.
func samplePayload(temp, feelsLike, speed string) []byte {
	return []byte(fmt.Sprintf(`{
		"dt": 1700000000,
		"timezone": 3600,
		"main": {"temp": %s, "feels_like": %s, "pressure": 1013, "humidity": 62},
		"weather": [{"icon": "01d"}],
		"wind": {"speed": %s, "deg": 180},
		"sys": {"sunrise": 1699942800, "sunset": 1699978800}
	}`, temp, feelsLike, speed))
}

func TestNormalize(t *testing.T) {
	report, err := Normalize(samplePayload("21.04", "19.5", "3.456"))
	require.NoError(t, err)

	assert.Equal(t, time.Unix(1700000000, 0).UTC(), report.CalculatedAt)
	assert.Equal(t, "21.0", report.Temperature.StringFixed(1))
	assert.Equal(t, "19.5", report.FeelsLike.StringFixed(1))
	assert.Equal(t, 1013, report.Pressure)
	assert.Equal(t, 62, report.Humidity)
	assert.Equal(t, "", report.Icon)
	assert.Equal(t, "#e5c07b", report.IconColour)
	assert.Equal(t, "3.46", report.Wind.Speed.StringFixed(2))
	assert.Equal(t, "S", report.Wind.Direction)

	// Sunrise and sunset carry the location's offset, not the
	// machine's zone.
	assert.True(t, report.Sunrise.Equal(time.Unix(1699942800, 0)))
	assert.True(t, report.Sunset.Equal(time.Unix(1699978800, 0)))
	_, offset := report.Sunrise.Zone()
	assert.Equal(t, 3600, offset)
	_, offset = report.Sunset.Zone()
	assert.Equal(t, 3600, offset)
}

func TestNormalizeRounding(t *testing.T) {
	tests := []struct {
		temp      string
		wantTemp  string
		speed     string
		wantSpeed string
	}{
		{"21.04", "21.0", "3.456", "3.46"},
		{"21.05", "21.1", "3.455", "3.46"},
		{"21", "21.0", "3", "3.00"},
		{"-5.25", "-5.3", "0.004", "0.00"},
		{"0", "0.0", "0.005", "0.01"},
	}
	for _, tt := range tests {
		t.Run(tt.temp+"/"+tt.speed, func(t *testing.T) {
			report, err := Normalize(samplePayload(tt.temp, tt.temp, tt.speed))
			require.NoError(t, err)
			assert.Equal(t, tt.wantTemp, report.Temperature.StringFixed(1))
			assert.Equal(t, tt.wantTemp, report.FeelsLike.StringFixed(1))
			assert.Equal(t, tt.wantSpeed, report.Wind.Speed.StringFixed(2))
		})
	}
}

func TestNormalizeDeterministic(t *testing.T) {
	raw := samplePayload("21.04", "19.5", "3.456")

	first, err := Normalize(raw)
	require.NoError(t, err)
	second, err := Normalize(raw)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNormalizeUnknownIconCode(t *testing.T) {
	raw := []byte(`{
		"dt": 1700000000,
		"timezone": 0,
		"main": {"temp": 21.0, "feels_like": 21.0, "pressure": 1013, "humidity": 62},
		"weather": [{"icon": "99x"}],
		"wind": {"speed": 3.0, "deg": 90},
		"sys": {"sunrise": 1699942800, "sunset": 1699978800}
	}`)

	report, err := Normalize(raw)
	assert.Nil(t, report)

	var malformed *MalformedDataError
	require.ErrorAs(t, err, &malformed)
	assert.Contains(t, malformed.Reason, "99x")
}

func TestNormalizeMissingStructure(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			"not JSON",
			`{{{`,
		},
		{
			"missing main",
			`{"dt": 1, "timezone": 0, "weather": [{"icon": "01d"}], "wind": {"speed": 1, "deg": 0}, "sys": {"sunrise": 1, "sunset": 2}}`,
		},
		{
			"empty weather list",
			`{"dt": 1, "timezone": 0, "main": {"temp": 1, "feels_like": 1, "pressure": 1, "humidity": 1}, "weather": [], "wind": {"speed": 1, "deg": 0}, "sys": {"sunrise": 1, "sunset": 2}}`,
		},
		{
			"missing wind",
			`{"dt": 1, "timezone": 0, "main": {"temp": 1, "feels_like": 1, "pressure": 1, "humidity": 1}, "weather": [{"icon": "01d"}], "sys": {"sunrise": 1, "sunset": 2}}`,
		},
		{
			"missing sys.sunrise",
			`{"dt": 1, "timezone": 0, "main": {"temp": 1, "feels_like": 1, "pressure": 1, "humidity": 1}, "weather": [{"icon": "01d"}], "wind": {"speed": 1, "deg": 0}, "sys": {"sunset": 2}}`,
		},
		{
			"missing dt",
			`{"timezone": 0, "main": {"temp": 1, "feels_like": 1, "pressure": 1, "humidity": 1}, "weather": [{"icon": "01d"}], "wind": {"speed": 1, "deg": 0}, "sys": {"sunrise": 1, "sunset": 2}}`,
		},
		{
			"missing timezone",
			`{"dt": 1, "main": {"temp": 1, "feels_like": 1, "pressure": 1, "humidity": 1}, "weather": [{"icon": "01d"}], "wind": {"speed": 1, "deg": 0}, "sys": {"sunrise": 1, "sunset": 2}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report, err := Normalize([]byte(tt.raw))
			assert.Nil(t, report)

			var malformed *MalformedDataError
			assert.ErrorAs(t, err, &malformed)
		})
	}
}

func TestNormalizeZeroValuesAreValid(t *testing.T) {
	// A UTC offset of 0 and 0% humidity are legitimate values, not
	// missing fields.
	raw := []byte(`{
		"dt": 1700000000,
		"timezone": 0,
		"main": {"temp": 0, "feels_like": 0, "pressure": 1013, "humidity": 0},
		"weather": [{"icon": "01n"}],
		"wind": {"speed": 0, "deg": 0},
		"sys": {"sunrise": 1699942800, "sunset": 1699978800}
	}`)

	report, err := Normalize(raw)
	require.NoError(t, err)
	assert.Equal(t, "0.0", report.Temperature.StringFixed(1))
	assert.Equal(t, 0, report.Humidity)
	assert.Equal(t, "N", report.Wind.Direction)
	_, offset := report.Sunrise.Zone()
	assert.Equal(t, 0, offset)
}

func TestNormalizeMissingWindDeg(t *testing.T) {
	raw := []byte(`{
		"dt": 1700000000,
		"timezone": 3600,
		"main": {"temp": 21.0, "feels_like": 21.0, "pressure": 1013, "humidity": 62},
		"weather": [{"icon": "01d"}],
		"wind": {"speed": 3.0},
		"sys": {"sunrise": 1699942800, "sunset": 1699978800}
	}`)

	report, err := Normalize(raw)
	require.NoError(t, err)
	assert.Empty(t, report.Wind.Direction)
}

func TestInterpretDirection(t *testing.T) {
	tests := []struct {
		degrees float64
		want    string
	}{
		{0, "N"},
		{11.24, "N"},
		{11.25, "NNE"},
		{33.74, "NNE"},
		{33.75, "NE"},
		{90, "E"},
		{180, "S"},
		{270, "W"},
		{348.74, "NNW"},
		{348.75, "N"},
		{359.9, "N"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v", tt.degrees), func(t *testing.T) {
			assert.Equal(t, tt.want, interpretDirection(tt.degrees))
		})
	}
}

// The icon and colour tables must always cover the same condition
// codes; a code with a glyph but no colour (or vice versa) is a
// programming error.
func TestConditionTablesAligned(t *testing.T) {
	assert.Equal(t, len(conditionIcons), len(conditionColours))
	for code := range conditionIcons {
		assert.Contains(t, conditionColours, code)
	}
	for code := range conditionColours {
		assert.Contains(t, conditionIcons, code)
	}
}
