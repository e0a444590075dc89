package analysis

import (
	"sort"

	"github.com/ademuri/music-trends/internal/catalog"
)

// Defaults for the timeline's genre selection.
const (
	TimelineGenres   = 8
	TimelineMinTotal = 50
)

// DecadeTable counts tracks per genre and decade. Missing pairs read as 0.
type DecadeTable struct {
	counts map[string]map[int]int
	genres []string
}

// GenreByDecade groups tracks by primary genre and release decade.
func GenreByDecade(tracks []catalog.Track) DecadeTable {
	table := DecadeTable{counts: make(map[string]map[int]int)}
	for _, t := range tracks {
		if t.PrimaryGenre == "" {
			continue
		}
		byDecade, ok := table.counts[t.PrimaryGenre]
		if !ok {
			byDecade = make(map[int]int)
			table.counts[t.PrimaryGenre] = byDecade
			table.genres = append(table.genres, t.PrimaryGenre)
		}
		byDecade[t.Decade()]++
	}
	return table
}

// Count returns the number of tracks of genre released in decade.
func (d DecadeTable) Count(genre string, decade int) int {
	return d.counts[genre][decade]
}

// Total returns the number of tracks of genre across all decades.
func (d DecadeTable) Total(genre string) int {
	total := 0
	for _, n := range d.counts[genre] {
		total += n
	}
	return total
}

// Genres returns the genres in the order they were first seen.
func (d DecadeTable) Genres() []string {
	return append([]string(nil), d.genres...)
}

// ValidTimelineGenres picks the genres worth stacking: known genres with
// more than minTotal tracks, ranked by total and capped at topN. A negative
// topN keeps every valid genre.
func ValidTimelineGenres(tracks []catalog.Track, topN, minTotal int) []string {
	return validGenres(GenreByDecade(tracks), topN, minTotal)
}

func validGenres(table DecadeTable, topN, minTotal int) []string {
	type total struct {
		genre string
		n     int
	}
	var totals []total
	for _, g := range table.genres {
		if g == catalog.UnknownGenre {
			continue
		}
		if n := table.Total(g); n > minTotal {
			totals = append(totals, total{g, n})
		}
	}
	sort.SliceStable(totals, func(i, j int) bool {
		return totals[i].n > totals[j].n
	})
	if topN >= 0 && len(totals) > topN {
		totals = totals[:topN]
	}

	genres := make([]string, 0, len(totals))
	for _, t := range totals {
		genres = append(genres, t.genre)
	}
	return genres
}

// Decades returns every decade present in tracks, ascending.
func Decades(tracks []catalog.Track) []int {
	seen := make(map[int]bool)
	var decades []int
	for _, t := range tracks {
		d := t.Decade()
		if !seen[d] {
			seen[d] = true
			decades = append(decades, d)
		}
	}
	sort.Ints(decades)
	return decades
}

// BuildTimeline stacks the valid timeline genres for every decade of the
// working set.
func BuildTimeline(tracks []catalog.Track) Timeline {
	table := GenreByDecade(tracks)
	tl := Timeline{
		Genres:  validGenres(table, TimelineGenres, TimelineMinTotal),
		Decades: Decades(tracks),
	}

	for _, decade := range tl.Decades {
		stack := DecadeStack{Decade: decade}
		for _, g := range tl.Genres {
			v := table.Count(g, decade)
			stack.Segments = append(stack.Segments, Segment{
				Genre: g,
				Y0:    stack.Height,
				Y1:    stack.Height + v,
				Value: v,
			})
			stack.Height += v
		}
		if stack.Height > tl.MaxHeight {
			tl.MaxHeight = stack.Height
		}
		tl.Stacks = append(tl.Stacks, stack)
	}
	return tl
}
