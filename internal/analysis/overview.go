package analysis

import "github.com/ademuri/music-trends/internal/catalog"

// OverviewGenres is the number of genres listed in the overview.
const OverviewGenres = 10

// BuildOverview summarizes the whole working set. The genre list comes from
// TopGenres so it always agrees with the other genre views.
func BuildOverview(tracks []catalog.Track) Overview {
	o := Overview{
		TotalTracks: len(tracks),
		TopGenres:   TopGenres(tracks, OverviewGenres, 0),
	}
	if len(tracks) == 0 {
		return o
	}

	var popularity float64
	o.FirstYear, o.LastYear = tracks[0].ReleaseYear, tracks[0].ReleaseYear
	for _, t := range tracks {
		popularity += t.TrackPopularity
		o.FirstYear = min(o.FirstYear, t.ReleaseYear)
		o.LastYear = max(o.LastYear, t.ReleaseYear)
	}
	o.MeanPopularity = popularity / float64(len(tracks))
	o.YearSpan = o.LastYear - o.FirstYear
	return o
}
