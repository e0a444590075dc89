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
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/ademuri/music-trends/internal/analysis"
	"github.com/ademuri/music-trends/internal/logger"
	"github.com/ademuri/music-trends/internal/metrics"
	"github.com/ademuri/music-trends/internal/scene"
)

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func loadedExploreModel(t *testing.T, path string) *exploreModel {
	t.Helper()
	log, _ := logger.NewTestLogger()
	m := newExploreModel(log, metrics.New(), path)
	m.Update(m.Init()())
	return m
}

func TestExploreWalkthrough(t *testing.T) {
	m := loadedExploreModel(t, writeTestCatalog(t))
	if m.err != nil {
		t.Fatalf("load error: %v", m.err)
	}
	if !strings.Contains(m.View(), "Welcome to Spotify Music Trends") {
		t.Errorf("first view should be the overview:\n%s", m.View())
	}

	m.Update(keys("2"))
	if m.frame.Timeline == nil {
		t.Fatalf("expected the timeline after pressing 2")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	snap := m.state.Snapshot()
	if snap.Scene != scene.ScatterPlot || snap.SelectedGenre != "pop" {
		t.Fatalf("after enter state = %+v, want scatter plot for pop", snap)
	}
	if m.frame.Scatter == nil || m.frame.Scatter.Filtered != 55 {
		t.Errorf("scatter frame = %+v, want 55 pop tracks", m.frame.Scatter)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.frame.Artists == nil || m.frame.Artists.Genre != "pop" {
		t.Fatalf("artist frame = %+v, want pop artists", m.frame.Artists)
	}

	m.Update(keys("c"))
	m.Update(keys("r"))
	m.Update(keys("o"))
	want := analysis.ArtistFilter{Count: 15, RankBy: analysis.RankByTrackCount, Order: analysis.OrderBottom}
	if got := m.state.Snapshot().ArtistFilter; got != want {
		t.Errorf("artist filter = %+v, want %+v", got, want)
	}

	m.Update(keys("x"))
	snap = m.state.Snapshot()
	if snap.HasGenre() || snap.Scene != scene.ArtistAnalysis {
		t.Errorf("after clearing state = %+v", snap)
	}
	if len(m.frame.Artists.Artists) != 3 {
		t.Errorf("cleared ranking has %d artists, want 3", len(m.frame.Artists.Artists))
	}
}

func TestExploreRejectsNavigationPastTheEnd(t *testing.T) {
	m := loadedExploreModel(t, writeTestCatalog(t))
	m.Update(keys("4"))
	m.Update(tea.KeyMsg{Type: tea.KeyRight})

	if m.state.Snapshot().Scene != scene.ArtistAnalysis {
		t.Errorf("scene = %s, want artist-analysis", m.state.Snapshot().Scene)
	}
	if m.status == "" {
		t.Errorf("a rejected navigation should be reported")
	}
	if got := testutil.ToFloat64(m.metrics.RejectedTransitions.WithLabelValues("scene_index")); got != 1 {
		t.Errorf("rejected scene transitions = %v, want 1", got)
	}
}

func TestExploreLoadError(t *testing.T) {
	m := loadedExploreModel(t, filepath.Join(t.TempDir(), "missing.csv"))
	if m.err == nil {
		t.Fatalf("expected a load error")
	}
	if !strings.Contains(m.View(), "Error loading data") {
		t.Errorf("view should show the load error:\n%s", m.View())
	}

	// Navigation is ignored once the load failed.
	m.Update(keys("2"))
	if m.state != nil {
		t.Errorf("state should stay unset after a load error")
	}

	_, cmd := m.Update(keys("q"))
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q should return tea.Quit")
	}
}

func TestCycle(t *testing.T) {
	if got := cycle(analysis.ArtistCounts, 20); got != 5 {
		t.Errorf("cycle(counts, 20) = %d, want 5", got)
	}
	if got := cycle(analysis.ArtistCounts, 7); got != 5 {
		t.Errorf("cycle(counts, 7) = %d, want 5", got)
	}
	if got := cycle(analysis.RankMetrics, analysis.RankByPopularity); got != analysis.RankByTrackCount {
		t.Errorf("cycle(metrics, popularity) = %s", got)
	}
}

func TestExploreLogsOffTheTerminal(t *testing.T) {
	flag := exploreCmd.Flags().Lookup("log_file")
	if flag == nil {
		t.Fatalf("explore should have a --log_file flag")
	}
	if want := filepath.Join(os.TempDir(), "music-trends-explore.log"); flag.DefValue != want {
		t.Errorf("--log_file default = %q, want %q", flag.DefValue, want)
	}

	path := filepath.Join(t.TempDir(), "explore.log")
	log, err := newFileLogger(path)
	if err != nil {
		t.Fatalf("newFileLogger() error: %v", err)
	}
	m := newExploreModel(log, metrics.New(), writeTestCatalog(t))
	m.Update(m.Init()())
	log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "catalog loaded") {
		t.Errorf("log file missing the load line:\n%s", data)
	}
}
