package analysis

import (
	"sort"

	"github.com/ademuri/music-trends/internal/catalog"
)

// FilterByGenre returns the tracks whose primary genre is genre. An empty
// genre means no filter. The result never shares storage with tracks.
func FilterByGenre(tracks []catalog.Track, genre string) []catalog.Track {
	if genre == "" {
		return append([]catalog.Track(nil), tracks...)
	}
	var out []catalog.Track
	for _, t := range tracks {
		if t.PrimaryGenre == genre {
			out = append(out, t)
		}
	}
	return out
}

// countGenres counts tracks per primary genre in first-seen order. Tracks
// without a genre are skipped.
func countGenres(tracks []catalog.Track) []GenreCount {
	index := make(map[string]int)
	var counts []GenreCount
	for _, t := range tracks {
		if t.PrimaryGenre == "" {
			continue
		}
		i, ok := index[t.PrimaryGenre]
		if !ok {
			i = len(counts)
			index[t.PrimaryGenre] = i
			counts = append(counts, GenreCount{Genre: t.PrimaryGenre})
		}
		counts[i].Count++
	}
	return counts
}

// GenreCounts maps each primary genre to its number of tracks. The Unknown
// genre is counted like any other.
func GenreCounts(tracks []catalog.Track) map[string]int {
	out := make(map[string]int)
	for _, gc := range countGenres(tracks) {
		out[gc.Genre] = gc.Count
	}
	return out
}

// TopGenres returns up to n genres by descending track count. Genres with
// fewer than minCount tracks are left out; minCount <= 0 keeps everything.
// Ties keep the order in which the genres first appear in tracks.
func TopGenres(tracks []catalog.Track, n, minCount int) []GenreCount {
	var counts []GenreCount
	for _, gc := range countGenres(tracks) {
		if gc.Count >= minCount {
			counts = append(counts, gc)
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
