package analysis

import (
	"sort"

	"github.com/ademuri/music-trends/internal/catalog"
)

// MinArtistTracks is the number of tracks an artist needs to be ranked.
const MinArtistTracks = 3

// RankBy names the metric artists are ranked by.
type RankBy string

const (
	RankByPopularity       RankBy = "popularity"
	RankByTrackCount       RankBy = "trackCount"
	RankByArtistPopularity RankBy = "artistPopularity"
)

// RankMetrics lists every RankBy value in display order.
var RankMetrics = []RankBy{RankByPopularity, RankByTrackCount, RankByArtistPopularity}

// Order picks which end of the ranking is shown.
type Order string

const (
	OrderTop    Order = "top"
	OrderBottom Order = "bottom"
)

// ArtistCounts lists the selectable ranking sizes in display order.
var ArtistCounts = []int{5, 10, 15, 20}

// ArtistFilter parameterizes RankedArtists.
type ArtistFilter struct {
	Count  int    `yaml:"count" validate:"gt=0"`
	RankBy RankBy `yaml:"rank_by" validate:"oneof=popularity trackCount artistPopularity"`
	Order  Order  `yaml:"order" validate:"oneof=top bottom"`
}

// DefaultArtistFilter is the ranking shown before any filter change.
func DefaultArtistFilter() ArtistFilter {
	return ArtistFilter{Count: 10, RankBy: RankByPopularity, Order: OrderTop}
}

// rollupArtists aggregates tracks per artist in first-seen order.
func rollupArtists(tracks []catalog.Track) []ArtistStat {
	type acc struct {
		stat       ArtistStat
		trackPop   float64
		artistPop  float64
		seenGenres map[string]bool
	}

	index := make(map[string]int)
	var accs []*acc
	for _, t := range tracks {
		i, ok := index[t.ArtistName]
		if !ok {
			i = len(accs)
			index[t.ArtistName] = i
			accs = append(accs, &acc{
				stat:       ArtistStat{Name: t.ArtistName},
				seenGenres: make(map[string]bool),
			})
		}
		a := accs[i]
		a.stat.TrackCount++
		a.trackPop += t.TrackPopularity
		a.artistPop += t.ArtistPopularity
		if !a.seenGenres[t.PrimaryGenre] {
			a.seenGenres[t.PrimaryGenre] = true
			a.stat.Genres = append(a.stat.Genres, t.PrimaryGenre)
		}
	}

	stats := make([]ArtistStat, 0, len(accs))
	for _, a := range accs {
		n := float64(a.stat.TrackCount)
		a.stat.MeanTrackPopularity = a.trackPop / n
		a.stat.MeanArtistPopularity = a.artistPop / n
		stats = append(stats, a.stat)
	}
	return stats
}

// ArtistRollup maps each artist to the rollup of their tracks.
func ArtistRollup(tracks []catalog.Track) map[string]ArtistStat {
	out := make(map[string]ArtistStat)
	for _, s := range rollupArtists(tracks) {
		out[s.Name] = s
	}
	return out
}

// EligibleArtists returns the rollups of artists with at least
// MinArtistTracks tracks, in first-seen order.
func EligibleArtists(tracks []catalog.Track) []ArtistStat {
	var out []ArtistStat
	for _, s := range rollupArtists(tracks) {
		if s.TrackCount >= MinArtistTracks {
			out = append(out, s)
		}
	}
	return out
}

func (r RankBy) metric(s ArtistStat) float64 {
	switch r {
	case RankByTrackCount:
		return float64(s.TrackCount)
	case RankByArtistPopularity:
		return s.MeanArtistPopularity
	default:
		return s.MeanTrackPopularity
	}
}

// RankedArtists sorts the eligible artists by the filter's metric,
// descending, flips the result for OrderBottom and keeps the first Count.
func RankedArtists(tracks []catalog.Track, filter ArtistFilter) []ArtistStat {
	return rankArtists(EligibleArtists(tracks), filter)
}

func rankArtists(eligible []ArtistStat, filter ArtistFilter) []ArtistStat {
	sorted := append([]ArtistStat(nil), eligible...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return filter.RankBy.metric(sorted[i]) > filter.RankBy.metric(sorted[j])
	})
	if filter.Order == OrderBottom {
		for i, j := 0, len(sorted)-1; i < j; i, j = i+1, j-1 {
			sorted[i], sorted[j] = sorted[j], sorted[i]
		}
	}
	if filter.Count >= 0 && len(sorted) > filter.Count {
		sorted = sorted[:filter.Count]
	}
	return sorted
}

// BuildArtistRanking ranks the artists of genre, or of every genre when
// genre is empty.
func BuildArtistRanking(tracks []catalog.Track, genre string, filter ArtistFilter) ArtistRanking {
	eligible := EligibleArtists(FilterByGenre(tracks, genre))
	return ArtistRanking{
		Genre:    genre,
		Filter:   filter,
		Eligible: len(eligible),
		Artists:  rankArtists(eligible, filter),
	}
}
