package analysis

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/ademuri/music-trends/internal/catalog"
)

// artistFixture builds ten artists with known track counts. Artist i has
// trackCounts[i] tracks with popularity 10*i and artist popularity 100-10*i.
func artistFixture() []catalog.Track {
	trackCounts := []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	var tracks []catalog.Track
	for i, n := range trackCounts {
		for j := 0; j < n; j++ {
			genre := "pop"
			if j%2 == 1 {
				genre = "rock"
			}
			tracks = append(tracks, catalog.Track{
				TrackName:        fmt.Sprintf("track %d-%d", i, j),
				ArtistName:       fmt.Sprintf("artist %d", i),
				TrackPopularity:  float64(10 * i),
				ArtistPopularity: float64(100 - 10*i),
				PrimaryGenre:     genre,
				ReleaseYear:      2000,
			})
		}
	}
	return tracks
}

func names(stats []ArtistStat) []string {
	var out []string
	for _, s := range stats {
		out = append(out, s.Name)
	}
	return out
}

func TestArtistRollup(t *testing.T) {
	tracks := []catalog.Track{
		{ArtistName: "A", TrackPopularity: 40, ArtistPopularity: 80, PrimaryGenre: "pop"},
		{ArtistName: "B", TrackPopularity: 10, ArtistPopularity: 20, PrimaryGenre: "jazz"},
		{ArtistName: "A", TrackPopularity: 60, ArtistPopularity: 70, PrimaryGenre: "rock"},
		{ArtistName: "A", TrackPopularity: 80, ArtistPopularity: 60, PrimaryGenre: "pop"},
	}

	got := ArtistRollup(tracks)
	want := map[string]ArtistStat{
		"A": {Name: "A", TrackCount: 3, MeanTrackPopularity: 60, MeanArtistPopularity: 70, Genres: []string{"pop", "rock"}},
		"B": {Name: "B", TrackCount: 1, MeanTrackPopularity: 10, MeanArtistPopularity: 20, Genres: []string{"jazz"}},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ArtistRollup() = %+v, want %+v", got, want)
	}
}

func TestRankedArtistsBottomByTrackCount(t *testing.T) {
	filter := ArtistFilter{Count: 5, RankBy: RankByTrackCount, Order: OrderBottom}

	got := RankedArtists(artistFixture(), filter)
	want := []string{"artist 2", "artist 3", "artist 4", "artist 5", "artist 6"}
	if !reflect.DeepEqual(names(got), want) {
		t.Errorf("RankedArtists() = %v, want %v", names(got), want)
	}
	for _, s := range got {
		if s.TrackCount < MinArtistTracks {
			t.Errorf("%s has %d tracks, below the ranking floor", s.Name, s.TrackCount)
		}
	}
}

func TestRankedArtists(t *testing.T) {
	tests := []struct {
		name   string
		filter ArtistFilter
		want   []string
	}{
		{
			"top by popularity",
			ArtistFilter{Count: 3, RankBy: RankByPopularity, Order: OrderTop},
			[]string{"artist 9", "artist 8", "artist 7"},
		},
		{
			"top by artist popularity",
			ArtistFilter{Count: 3, RankBy: RankByArtistPopularity, Order: OrderTop},
			[]string{"artist 2", "artist 3", "artist 4"},
		},
		{
			"top by track count",
			ArtistFilter{Count: 2, RankBy: RankByTrackCount, Order: OrderTop},
			[]string{"artist 9", "artist 8"},
		},
		{
			"count larger than eligible",
			ArtistFilter{Count: 20, RankBy: RankByPopularity, Order: OrderBottom},
			[]string{"artist 2", "artist 3", "artist 4", "artist 5", "artist 6", "artist 7", "artist 8", "artist 9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RankedArtists(artistFixture(), tt.filter)
			if !reflect.DeepEqual(names(got), tt.want) {
				t.Errorf("RankedArtists() = %v, want %v", names(got), tt.want)
			}
		})
	}
}

func TestBuildArtistRanking(t *testing.T) {
	tracks := artistFixture()

	r := BuildArtistRanking(tracks, "rock", DefaultArtistFilter())
	// Only artists with six or more tracks have three rock tracks.
	if r.Eligible != 5 {
		t.Errorf("Eligible = %d, want 5", r.Eligible)
	}
	for _, s := range r.Artists {
		if !reflect.DeepEqual(s.Genres, []string{"rock"}) {
			t.Errorf("%s genres = %v, want only rock", s.Name, s.Genres)
		}
	}

	all := BuildArtistRanking(tracks, "", DefaultArtistFilter())
	if all.Eligible != 8 || len(all.Artists) != 8 {
		t.Errorf("unfiltered ranking = %d eligible, %d shown", all.Eligible, len(all.Artists))
	}
	if !reflect.DeepEqual(all.Artists[0].Genres, []string{"pop", "rock"}) {
		t.Errorf("genres = %v, want first-seen order", all.Artists[0].Genres)
	}
}
