/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/ademuri/music-trends/internal/analysis"
	"github.com/ademuri/music-trends/internal/narrative"
	"github.com/ademuri/music-trends/internal/scene"
)

// Analysis is one scene rendered as a table. The first row of results is the
// header.
type Analysis struct {
	results [][]string
	summary string
}

func (a Analysis) String() string {
	out := new(bytes.Buffer)
	table := tablewriter.NewWriter(out)
	table.Header(a.results[0])
	for _, row := range a.results[1:] {
		if err := table.Append(row); err != nil {
			return fmt.Sprintf("Error rendering table: %v", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Sprintf("Error rendering table: %v", err)
	}
	if a.summary != "" {
		fmt.Fprintf(out, "%s\n", a.summary)
	}
	return out.String()
}

func percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v*100)
}

func overviewAnalysis(o *analysis.Overview) Analysis {
	var a Analysis
	a.results = [][]string{{"Genre", "Tracks"}}
	for _, g := range o.TopGenres {
		a.results = append(a.results, []string{g.Genre, strconv.Itoa(g.Count)})
	}
	if len(o.TopGenres) == 0 {
		a.results = append(a.results, []string{"No valid genres found", "0"})
	}
	a.summary = fmt.Sprintf("Total tracks: %d\nAverage popularity: %.0f\nYear span: %d years (%d-%d)",
		o.TotalTracks, o.MeanPopularity, o.YearSpan, o.FirstYear, o.LastYear)
	return a
}

func timelineAnalysis(tl *analysis.Timeline) Analysis {
	var a Analysis
	header := []string{"Genre"}
	for _, d := range tl.Decades {
		header = append(header, fmt.Sprintf("%ds", d))
	}
	a.results = [][]string{header}

	for _, g := range tl.Genres {
		row := []string{g}
		for _, stack := range tl.Stacks {
			value := 0
			for _, seg := range stack.Segments {
				if seg.Genre == g {
					value = seg.Value
					break
				}
			}
			row = append(row, strconv.Itoa(value))
		}
		a.results = append(a.results, row)
	}

	total := []string{"Total"}
	for _, stack := range tl.Stacks {
		total = append(total, strconv.Itoa(stack.Height))
	}
	a.results = append(a.results, total)

	if len(tl.Genres) == 0 {
		a.summary = "No genre has enough tracks for the timeline"
	} else {
		a.summary = fmt.Sprintf("%d genres, tallest decade: %d tracks", len(tl.Genres), tl.MaxHeight)
	}
	return a
}

// scatterAnalysis lists the sampled points. rows limits how many are printed;
// zero or less prints all of them.
func scatterAnalysis(s *analysis.Scatter, rows int) Analysis {
	var a Analysis
	a.results = [][]string{{"Track", "Artist", "Genre", "Danceability", "Energy", "Popularity"}}
	points := s.Points
	if rows > 0 && rows < len(points) {
		points = points[:rows]
	}
	for _, p := range points {
		a.results = append(a.results, []string{
			p.TrackName,
			p.ArtistName,
			p.PrimaryGenre,
			percent(p.Danceability),
			percent(p.Energy),
			strconv.FormatFloat(p.TrackPopularity, 'f', -1, 64),
		})
	}

	genre := "all genres"
	if s.Genre != "" {
		genre = s.Genre
	}
	a.summary = fmt.Sprintf("%d tracks in %s, %d sampled for display", s.Filtered, genre, len(s.Points))
	return a
}

func artistsAnalysis(r *analysis.ArtistRanking) Analysis {
	var a Analysis
	a.results = [][]string{{"Artist", "Tracks", "Avg Track Popularity", "Avg Artist Popularity", "Genres"}}
	for _, s := range r.Artists {
		a.results = append(a.results, []string{
			s.Name,
			strconv.Itoa(s.TrackCount),
			fmt.Sprintf("%.1f", s.MeanTrackPopularity),
			fmt.Sprintf("%.1f", s.MeanArtistPopularity),
			strings.Join(s.Genres, ", "),
		})
	}
	a.summary = fmt.Sprintf("%s %d of %d artists by %s", r.Filter.Order, len(r.Artists), r.Eligible, r.Filter.RankBy)
	return a
}

// frameAnalysis picks the table for whichever view f carries.
func frameAnalysis(f narrative.Frame, rows int) Analysis {
	switch {
	case f.Overview != nil:
		return overviewAnalysis(f.Overview)
	case f.Timeline != nil:
		return timelineAnalysis(f.Timeline)
	case f.Scatter != nil:
		return scatterAnalysis(f.Scatter, rows)
	case f.Artists != nil:
		return artistsAnalysis(f.Artists)
	}
	return Analysis{results: [][]string{{"Empty"}}}
}

// printFrame writes a scene with its narrative heading.
func printFrame(out io.Writer, f narrative.Frame, rows int) {
	fmt.Fprintf(out, "%s\n%s\n\n%s\n", f.Title, f.Description, f.ChartTitle)
	fmt.Fprint(out, frameAnalysis(f, rows))
	fmt.Fprintf(out, "Scene %d of %d (%.0f%%)\n", int(f.State.Scene)+1, scene.Count, f.Progress)
}
