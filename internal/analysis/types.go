package analysis

import "github.com/ademuri/music-trends/internal/catalog"

// GenreCount is the number of tracks whose primary genre is Genre.
type GenreCount struct {
	Genre string `yaml:"genre"`
	Count int    `yaml:"count"`
}

// Overview is the opening summary of the working set.
type Overview struct {
	TotalTracks    int          `yaml:"total_tracks"`
	MeanPopularity float64      `yaml:"mean_popularity"`
	FirstYear      int          `yaml:"first_year"`
	LastYear       int          `yaml:"last_year"`
	YearSpan       int          `yaml:"year_span"`
	TopGenres      []GenreCount `yaml:"top_genres"`
}

// Segment is one genre's slice of a decade's stacked bar.
type Segment struct {
	Genre string `yaml:"genre"`
	Y0    int    `yaml:"y0"`
	Y1    int    `yaml:"y1"`
	Value int    `yaml:"value"`
}

// DecadeStack is the stacked bar for one decade.
type DecadeStack struct {
	Decade   int       `yaml:"decade"`
	Segments []Segment `yaml:"segments"`
	Height   int       `yaml:"height"`
}

// Timeline is the stacked genre-by-decade series.
type Timeline struct {
	Genres    []string      `yaml:"genres"`
	Decades   []int         `yaml:"decades"`
	Stacks    []DecadeStack `yaml:"stacks"`
	MaxHeight int           `yaml:"max_height"`
}

// ArtistStat is the rollup of one artist's tracks.
type ArtistStat struct {
	Name                 string   `yaml:"name"`
	TrackCount           int      `yaml:"track_count"`
	MeanTrackPopularity  float64  `yaml:"mean_track_popularity"`
	MeanArtistPopularity float64  `yaml:"mean_artist_popularity"`
	Genres               []string `yaml:"genres"`
}

// Scatter is the danceability/energy point cloud.
type Scatter struct {
	Genre    string          `yaml:"genre,omitempty"`
	Filtered int             `yaml:"filtered"`
	Points   []catalog.Track `yaml:"points"`
}

// ArtistRanking is the ranked artist list for the current filter.
type ArtistRanking struct {
	Genre    string       `yaml:"genre,omitempty"`
	Filter   ArtistFilter `yaml:"filter"`
	Eligible int          `yaml:"eligible"`
	Artists  []ArtistStat `yaml:"artists"`
}
