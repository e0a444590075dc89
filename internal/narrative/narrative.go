// Package narrative assembles what a presentation sink needs to draw one
// scene: the state snapshot and that scene's freshly computed aggregates.
package narrative

import (
	"fmt"
	"time"

	"github.com/ademuri/music-trends/internal/analysis"
	"github.com/ademuri/music-trends/internal/catalog"
	"github.com/ademuri/music-trends/internal/scene"
)

// Frame is everything needed to render one scene. Exactly one of the view
// fields is set, matching State.Scene.
type Frame struct {
	State       scene.Snapshot
	Title       string
	Description string
	ChartTitle  string
	Progress    float64

	Overview *analysis.Overview
	Timeline *analysis.Timeline
	Scatter  *analysis.Scatter
	Artists  *analysis.ArtistRanking
}

// Render computes the frame for snap from the full working set. Nothing is
// cached between calls.
func Render(c *catalog.Catalog, snap scene.Snapshot) Frame {
	f := Frame{
		State:       snap,
		Title:       snap.Scene.Title(),
		Description: snap.Scene.Description(),
		ChartTitle:  ChartTitle(snap),
		Progress:    snap.Scene.Progress(),
	}

	tracks := c.Tracks()
	switch snap.Scene {
	case scene.Overview:
		o := analysis.BuildOverview(tracks)
		f.Overview = &o
	case scene.GenreTimeline:
		tl := analysis.BuildTimeline(tracks)
		f.Timeline = &tl
	case scene.ScatterPlot:
		s := analysis.BuildScatter(tracks, snap.SelectedGenre)
		f.Scatter = &s
	case scene.ArtistAnalysis:
		r := analysis.BuildArtistRanking(tracks, snap.SelectedGenre, snap.ArtistFilter)
		f.Artists = &r
	}
	return f
}

// ChartTitle is the chart heading, which names the selected genre where the
// scene is filtered by it.
func ChartTitle(snap scene.Snapshot) string {
	switch snap.Scene {
	case scene.Overview:
		return "Top Genres"
	case scene.GenreTimeline:
		return "Tracks per Decade by Genre"
	case scene.ScatterPlot:
		if snap.HasGenre() {
			return fmt.Sprintf("Danceability vs Energy for %s", snap.SelectedGenre)
		}
		return "Danceability vs Energy by Genre"
	case scene.ArtistAnalysis:
		if snap.HasGenre() {
			return fmt.Sprintf("Top Artists in %s Genre", snap.SelectedGenre)
		}
		return "Top Artists by Average Track Popularity"
	}
	return ""
}

// Report holds every scene's view for one state, for a single static
// document.
type Report struct {
	GeneratedDate string                 `yaml:"generated_date"`
	State         scene.Snapshot         `yaml:"state"`
	Overview      analysis.Overview      `yaml:"overview"`
	Timeline      analysis.Timeline      `yaml:"timeline"`
	Scatter       analysis.Scatter       `yaml:"scatter"`
	Artists       analysis.ArtistRanking `yaml:"artists"`
}

// BuildReport renders all four scenes under snap's genre and artist filter.
func BuildReport(c *catalog.Catalog, snap scene.Snapshot) *Report {
	r := &Report{
		GeneratedDate: time.Now().Format("2006-01-02"),
		State:         snap,
	}
	for _, sc := range scene.All {
		s := snap
		s.Scene = sc
		f := Render(c, s)
		switch {
		case f.Overview != nil:
			r.Overview = *f.Overview
		case f.Timeline != nil:
			r.Timeline = *f.Timeline
		case f.Scatter != nil:
			r.Scatter = *f.Scatter
		case f.Artists != nil:
			r.Artists = *f.Artists
		}
	}
	return r
}
