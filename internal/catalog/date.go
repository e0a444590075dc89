package catalog

import (
	"regexp"
	"strings"
	"time"
)

// UnknownYear is assigned when a release date cannot be parsed. It lies
// outside [MinYear, MaxYear], so such tracks never reach the working set.
const UnknownYear = 0

type dateFormat struct {
	pattern *regexp.Regexp
	layout  string
}

// Release dates show up at year, month or day precision, occasionally with a
// time of day attached.
var releaseDateFormats = []dateFormat{
	{regexp.MustCompile(`^\d{4}$`), "2006"},
	{regexp.MustCompile(`^\d{4}-\d{2}$`), "2006-01"},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`), "2006-01-02"},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), "2006-01-02 15:04:05"},
	{regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(\.\d+)?(Z|[+-]\d{2}:\d{2})$`), time.RFC3339Nano},
	{regexp.MustCompile(`^\d{4}/\d{2}/\d{2}$`), "2006/01/02"},
	{regexp.MustCompile(`^\d{1,2}/\d{1,2}/\d{4}$`), "1/2/2006"},
}

// parseReleaseYear returns the year of a release date, and false when the
// value matches no known format.
func parseReleaseYear(ds string) (int, bool) {
	ds = strings.TrimSpace(ds)
	for _, f := range releaseDateFormats {
		if !f.pattern.MatchString(ds) {
			continue
		}
		date, err := time.Parse(f.layout, ds)
		if err != nil {
			return UnknownYear, false
		}
		return date.Year(), true
	}
	return UnknownYear, false
}
