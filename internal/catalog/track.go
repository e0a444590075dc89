package catalog

import (
	"math"
	"strconv"
	"strings"
)

// The working set only keeps tracks released within these years, inclusive.
const (
	MinYear = 1920
	MaxYear = 2023
)

// Track is the canonical, immutable form of a catalog row.
type Track struct {
	TrackName        string  `yaml:"track"`
	ArtistName       string  `yaml:"artist"`
	TrackPopularity  float64 `yaml:"track_popularity"`
	ArtistPopularity float64 `yaml:"artist_popularity"`
	Danceability     float64 `yaml:"danceability"`
	Energy           float64 `yaml:"energy"`
	ReleaseYear      int     `yaml:"release_year"`
	PrimaryGenre     string  `yaml:"primary_genre"`
}

// InRange reports whether the track belongs in the working set.
func (t Track) InRange() bool {
	return t.ReleaseYear >= MinYear && t.ReleaseYear <= MaxYear
}

// Decade returns the decade the track was released in, e.g. 1990 for 1994.
func (t Track) Decade() int {
	return DecadeOf(t.ReleaseYear)
}

// DecadeOf floors year to its decade.
func DecadeOf(year int) int {
	return int(math.Floor(float64(year)/10)) * 10
}

// Normalize converts every row into exactly one Track. Malformed fields fall
// back to defaults and are never reported as errors.
func Normalize(rows []RawRow) []Track {
	tracks, _ := NormalizeWithDiagnostics(rows)
	return tracks
}

// NormalizeWithDiagnostics is Normalize, also counting every field that had
// to be defaulted.
func NormalizeWithDiagnostics(rows []RawRow) ([]Track, Diagnostics) {
	diag := newDiagnostics()
	tracks := make([]Track, 0, len(rows))
	for _, row := range rows {
		tracks = append(tracks, NormalizeRow(row, &diag))
	}
	return tracks, diag
}

// NormalizeRow converts a single row. diag may be nil.
func NormalizeRow(row RawRow, diag *Diagnostics) Track {
	if diag == nil {
		d := newDiagnostics()
		diag = &d
	}
	diag.Rows++

	year, ok := parseReleaseYear(row.Get(ColReleaseDate))
	if !ok {
		diag.UnparseableDates++
	}

	genre := ResolveGenre(row.Get(ColGenres), row.Get(ColGenre))
	if genre == UnknownGenre {
		diag.UnknownGenres++
	}

	return Track{
		TrackName:        row.Get(ColTrackName),
		ArtistName:       row.Get(ColArtistName),
		TrackPopularity:  diag.number(row, ColTrackPopularity),
		ArtistPopularity: diag.number(row, ColArtistPopularity),
		Danceability:     diag.number(row, ColDanceability),
		Energy:           diag.number(row, ColEnergy),
		ReleaseYear:      year,
		PrimaryGenre:     genre,
	}
}

// parseNumber reads a float cell. Empty, non-numeric and non-finite values
// are rejected.
func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// WorkingSet returns the tracks released within [MinYear, MaxYear] and the
// number dropped. The input is left untouched.
func WorkingSet(tracks []Track) ([]Track, int) {
	kept := make([]Track, 0, len(tracks))
	for _, t := range tracks {
		if t.InRange() {
			kept = append(kept, t)
		}
	}
	return kept, len(tracks) - len(kept)
}
