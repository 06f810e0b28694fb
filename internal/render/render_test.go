package render

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/khoulihan/weatherfetch/internal/weather"
)

func sampleReport() *weather.Report {
	zone := time.FixedZone("local", 3600)
	return &weather.Report{
		CalculatedAt: time.Date(2023, 11, 14, 12, 13, 20, 0, time.UTC),
		Temperature:  decimal.RequireFromString("21.0"),
		FeelsLike:    decimal.RequireFromString("19.5"),
		Pressure:     1013,
		Humidity:     62,
		Icon:         "",
		IconColour:   "#e5c07b",
		Wind: weather.Wind{
			Speed:     decimal.RequireFromString("3.46"),
			Direction: "S",
		},
		Sunrise: time.Date(2023, 11, 14, 6, 40, 0, 0, zone),
		Sunset:  time.Date(2023, 11, 14, 16, 40, 0, 0, zone),
	}
}

func TestRender(t *testing.T) {
	out := Render(sampleReport(), "|temperature| feels like |feels_like|")
	assert.Equal(t, "21.0 feels like 19.5", out)
}

func TestRenderAllTokens(t *testing.T) {
	tests := []struct {
		template string
		want     string
	}{
		{"|icon|", ""},
		{"|icon_colour|", "#e5c07b"},
		{"|pressure|hPa", "1013hPa"},
		{"|humidity|%", "62%"},
		{"|wind_speed| |wind_direction|", "3.46 S"},
		{"up |sunrise| down |sunset|", "up 06:40 down 16:40"},
		{"|calculated_at|", "2023-11-14 12:13:20 +0000 UTC"},
	}
	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			assert.Equal(t, tt.want, Render(sampleReport(), tt.template))
		})
	}
}

func TestRenderKeepsTrailingZeros(t *testing.T) {
	report := sampleReport()
	report.Temperature = decimal.RequireFromString("21")
	report.FeelsLike = decimal.RequireFromString("19")
	report.Wind.Speed = decimal.RequireFromString("3")
	out := Render(report, "|temperature| |feels_like| |wind_speed|")
	assert.Equal(t, "21.0 19.0 3.00", out)
}

func TestRenderUnknownTokenIsKept(t *testing.T) {
	out := Render(sampleReport(), "|temperature| and |bogus|")
	assert.Equal(t, "21.0 and |bogus|", out)
}

func TestRenderDefaultTemplate(t *testing.T) {
	assert.Equal(t, "21.0", Render(sampleReport(), ""))
}

func TestRenderAbsentWindDirection(t *testing.T) {
	report := sampleReport()
	report.Wind.Direction = ""
	assert.Equal(t, "3.46 ", Render(report, "|wind_speed| |wind_direction|"))
}
