package analysis

import "github.com/ademuri/music-trends/internal/catalog"

// MaxScatterPoints is the point count above which the scatter view samples.
const MaxScatterPoints = 10000

// SampleForDisplay thins tracks for plotting by keeping every
// floor(len/limit)-th track once there are more than limit of them. It is a
// display concern only and never feeds an aggregate.
func SampleForDisplay(tracks []catalog.Track, limit int) []catalog.Track {
	if limit <= 0 || len(tracks) <= limit {
		return append([]catalog.Track(nil), tracks...)
	}
	step := len(tracks) / limit
	out := make([]catalog.Track, 0, len(tracks)/step+1)
	for i := 0; i < len(tracks); i += step {
		out = append(out, tracks[i])
	}
	return out
}

// BuildScatter filters tracks to genre, or keeps all of them when genre is
// empty, and samples the result for display.
func BuildScatter(tracks []catalog.Track, genre string) Scatter {
	filtered := FilterByGenre(tracks, genre)
	return Scatter{
		Genre:    genre,
		Filtered: len(filtered),
		Points:   SampleForDisplay(filtered, MaxScatterPoints),
	}
}
