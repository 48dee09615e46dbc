package render

import (
	"fmt"
	"html/template"
	"time"

	"github.com/bgraf/trackmap/geotrack"
	"github.com/bgraf/trackmap/util/dates"
	"github.com/goodsign/monday"
)

const dateLayout = "2 January 2006"

// FormatDate formats a date with month names of the given locale, e.g. "3 Mai 2021" for de_DE.
func FormatDate(t time.Time, locale string) string {
	return monday.Format(t, dateLayout, monday.Locale(locale))
}

// FormatSpan formats the days covered by a track.
func FormatSpan(from, to time.Time, locale string) string {
	if dates.EqualDate(from, to) {
		return FormatDate(from, locale)
	}

	return fmt.Sprintf("%s – %s", FormatDate(from, locale), FormatDate(to, locale))
}

// TrackSummary is the page subtitle: covered days and track length.
func TrackSummary(stats geotrack.Stats, locale string) string {
	if stats.Samples == 0 {
		return ""
	}

	return fmt.Sprintf("%s · %.1f km", FormatSpan(stats.From.Local(), stats.To.Local(), locale), stats.LengthKm)
}

func makeTemplateFuncmap(locale string) template.FuncMap {
	return template.FuncMap{
		"formatDate": func(t time.Time) string {
			return FormatDate(t, locale)
		},
		"today": time.Now,
	}
}
