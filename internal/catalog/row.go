package catalog

// Source table columns read by the normalizer. Any other column is ignored.
const (
	ColTrackPopularity  = "popularity_track"
	ColArtistPopularity = "popularity_artist"
	ColDanceability     = "danceability"
	ColEnergy           = "energy"
	ColReleaseDate      = "release_date"
	ColGenres           = "genres"
	ColGenre            = "genre"
	ColTrackName        = "name_track"
	ColArtistName       = "name_artist"
)

// Columns lists the columns the normalizer reads, in the order they are
// reported by diagnostics.
var Columns = []string{
	ColTrackPopularity,
	ColArtistPopularity,
	ColDanceability,
	ColEnergy,
	ColReleaseDate,
	ColGenres,
	ColGenre,
	ColTrackName,
	ColArtistName,
}

// RawRow is a single decoded row of the source table, keyed by column name.
// Nothing about its contents is guaranteed.
type RawRow map[string]string

// Get returns the cell for col, or "" when the column is absent.
func (r RawRow) Get(col string) string {
	return r[col]
}
