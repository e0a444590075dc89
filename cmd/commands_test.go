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
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"gopkg.in/yaml.v3"

	"github.com/ademuri/music-trends/internal/analysis"
	"github.com/ademuri/music-trends/internal/scene"
)

func TestPrintOverview(t *testing.T) {
	s := newTestSession(t)
	out := new(bytes.Buffer)
	if err := printOverview(out, s); err != nil {
		t.Fatalf("printOverview() error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Welcome to Spotify Music Trends", "Top Genres", "rock", "Total tracks: 119", "Year span: 46 years (1959-2005)", "Scene 1 of 4 (25%)"} {
		if !strings.Contains(got, want) {
			t.Errorf("printOverview output missing %q:\n%s", want, got)
		}
	}
	if got := testutil.ToFloat64(s.metrics.SceneRenders.WithLabelValues("overview")); got != 1 {
		t.Errorf("overview renders = %v, want 1", got)
	}
}

func TestOverviewAnalysisPlaceholder(t *testing.T) {
	a := overviewAnalysis(&analysis.Overview{})
	if got := a.String(); !strings.Contains(got, "No valid genres found") {
		t.Errorf("empty overview should show the placeholder row:\n%s", got)
	}
}

func TestPrintTimeline(t *testing.T) {
	s := newTestSession(t)
	out := new(bytes.Buffer)
	if err := printTimeline(out, s); err != nil {
		t.Fatalf("printTimeline() error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "rock") || !strings.Contains(got, "pop") {
		t.Errorf("timeline should list rock and pop:\n%s", got)
	}
	if strings.Contains(got, "jazz") {
		t.Errorf("jazz is below the timeline threshold:\n%s", got)
	}
}

func TestPrintScatter(t *testing.T) {
	s := newTestSession(t)
	out := new(bytes.Buffer)
	if err := printScatter(out, s, "jazz", 2); err != nil {
		t.Fatalf("printScatter() error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Danceability vs Energy for jazz", "51.4%", "73.0%", "4 tracks in jazz, 4 sampled for display"} {
		if !strings.Contains(got, want) {
			t.Errorf("printScatter output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Jazz Trio 2") {
		t.Errorf("printScatter should print only 2 rows:\n%s", got)
	}
}

func TestPrintArtists(t *testing.T) {
	s := newTestSession(t)
	out := new(bytes.Buffer)
	count := 2
	if err := printArtists(out, s, "", scene.FilterUpdate{Count: &count}); err != nil {
		t.Fatalf("printArtists() error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"Top Artists by Average Track Popularity", "Rock Band", "Pop Star", "top 2 of 3 artists by popularity"} {
		if !strings.Contains(got, want) {
			t.Errorf("printArtists output missing %q:\n%s", want, got)
		}
	}
}

func TestPrintArtistsRejectsInvalidFilter(t *testing.T) {
	s := newTestSession(t)
	rankBy := analysis.RankBy("loudness")

	err := printArtists(new(bytes.Buffer), s, "", scene.FilterUpdate{RankBy: &rankBy})
	if !errors.Is(err, scene.ErrInvalidFilterValue) {
		t.Fatalf("printArtists() error = %v, want ErrInvalidFilterValue", err)
	}
	if got := testutil.ToFloat64(s.metrics.RejectedTransitions.WithLabelValues("filter_value")); got != 1 {
		t.Errorf("rejected filter transitions = %v, want 1", got)
	}
}

func TestArtistsFilterFromFlags(t *testing.T) {
	if err := artistsCmd.Flags().Set("order", "bottom"); err != nil {
		t.Fatalf("setting --order: %v", err)
	}

	u := artistsFilterFromFlags(artistsCmd)
	if u.Order == nil || *u.Order != analysis.OrderBottom {
		t.Errorf("Order = %v, want bottom", u.Order)
	}
	if u.Count != nil || u.RankBy != nil {
		t.Errorf("unset flags should leave the filter alone: %+v", u)
	}
}

func TestRunReport(t *testing.T) {
	s := newTestSession(t)
	out := new(bytes.Buffer)
	if err := runReport(out, s, "pop"); err != nil {
		t.Fatalf("runReport() error: %v", err)
	}

	var report struct {
		State struct {
			Scene         string `yaml:"scene"`
			SelectedGenre string `yaml:"selected_genre"`
		} `yaml:"state"`
		Overview struct {
			TotalTracks int `yaml:"total_tracks"`
		} `yaml:"overview"`
		Scatter struct {
			Filtered int `yaml:"filtered"`
		} `yaml:"scatter"`
	}
	if err := yaml.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("report is not valid YAML: %v", err)
	}
	if report.State.Scene != "overview" || report.State.SelectedGenre != "pop" {
		t.Errorf("report state = %+v", report.State)
	}
	if report.Overview.TotalTracks != 119 {
		t.Errorf("report total tracks = %d, want 119", report.Overview.TotalTracks)
	}
	if report.Scatter.Filtered != 55 {
		t.Errorf("report scatter filtered = %d, want 55", report.Scatter.Filtered)
	}
}

func TestPrintDiagnostics(t *testing.T) {
	s := newTestSession(t)
	out := new(bytes.Buffer)
	if err := printDiagnostics(out, s); err != nil {
		t.Fatalf("printDiagnostics() error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"music_trends_rows_loaded_total", "music_trends_rows_out_of_range_total", "119 of 120 rows kept"} {
		if !strings.Contains(got, want) {
			t.Errorf("printDiagnostics output missing %q:\n%s", want, got)
		}
	}
}
