// Package render turns a weather report into output text by literal
// token substitution. Tokens look like |temperature|; anything the
// renderer does not recognize is left untouched.
package render

import (
	"strconv"
	"strings"

	"github.com/khoulihan/weatherfetch/internal/weather"
)

// DefaultTemplate is used when no template is configured or supplied.
const DefaultTemplate = "|temperature|"

// Render applies a template to a report. All numeric values were
// rounded during normalization; the renderer only stringifies them.
func Render(report *weather.Report, template string) string {
	if template == "" {
		template = DefaultTemplate
	}

	// Ordered token table; substitution is plain substring
	// replacement, not a template engine. Decimals are written with
	// their full fractional digits (StringFixed, not String, which
	// trims trailing zeros): the values were already rounded during
	// normalization, so this is formatting only.
	subs := []struct {
		token string
		value string
	}{
		{"icon", report.Icon},
		{"icon_colour", report.IconColour},
		{"temperature", report.Temperature.StringFixed(1)},
		{"feels_like", report.FeelsLike.StringFixed(1)},
		{"calculated_at", report.CalculatedAt.String()},
		{"pressure", strconv.Itoa(report.Pressure)},
		{"humidity", strconv.Itoa(report.Humidity)},
		{"sunrise", report.Sunrise.Format("15:04")},
		{"sunset", report.Sunset.Format("15:04")},
		{"wind_speed", report.Wind.Speed.StringFixed(2)},
		{"wind_direction", report.Wind.Direction},
	}

	out := template
	for _, s := range subs {
		out = strings.ReplaceAll(out, "|"+s.token+"|", s.value)
	}
	return out
}
