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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ademuri/music-trends/internal/analysis"
	"github.com/ademuri/music-trends/internal/catalog"
	"github.com/ademuri/music-trends/internal/metrics"
	"github.com/ademuri/music-trends/internal/narrative"
	"github.com/ademuri/music-trends/internal/scene"
)

// exploreRows caps the scatter listing so a scene fits on one screen.
const exploreRows = 15

var (
	accent = lipgloss.Color("#1DB954")
	muted  = lipgloss.Color("#8CA1AE")
	alert  = lipgloss.Color("#FF6B6B")
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(accent)
	descriptionStyle = lipgloss.NewStyle().Foreground(muted)
	chartTitleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
	cursorStyle      = lipgloss.NewStyle().Bold(true).Foreground(accent)
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(alert)
	helpStyle        = lipgloss.NewStyle().Foreground(muted)
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Walks through the four scenes interactively",
	Long: `Opens a terminal session with the overview, genre timeline, scatter plot
and artist ranking. Pick a genre on the timeline to follow it through the
later scenes.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExplore(); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

var exploreLogFile string

func init() {
	rootCmd.AddCommand(exploreCmd)

	// The session owns the terminal, so logs cannot go to stderr.
	exploreCmd.Flags().StringVar(&exploreLogFile, "log_file",
		filepath.Join(os.TempDir(), "music-trends-explore.log"), "file to write logs to while exploring")
}

func runExplore() error {
	log, err := newFileLogger(exploreLogFile)
	if err != nil {
		return err
	}
	defer log.Sync()

	m := newExploreModel(log, metrics.New(), viper.GetString("data"))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("runExplore: %w", err)
	}
	return nil
}

type loadedMsg struct {
	catalog *catalog.Catalog
	err     error
}

type exploreModel struct {
	log     *zap.SugaredLogger
	metrics *metrics.Metrics
	path    string

	session *session
	state   *scene.State
	frame   narrative.Frame

	// Index into the timeline's genres.
	cursor int
	status string
	err    error
}

func newExploreModel(log *zap.SugaredLogger, m *metrics.Metrics, path string) *exploreModel {
	return &exploreModel{
		log:     log.With("session", uuid.NewString()),
		metrics: m,
		path:    path,
	}
}

func loadCatalogCmd(log *zap.SugaredLogger, m *metrics.Metrics, path string) tea.Cmd {
	return func() tea.Msg {
		c, err := loadCatalog(log, m, path)
		return loadedMsg{catalog: c, err: err}
	}
}

func (m *exploreModel) Init() tea.Cmd {
	return loadCatalogCmd(m.log, m.metrics, m.path)
}

func (m *exploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.session = &session{log: m.log, catalog: msg.catalog, metrics: m.metrics}
		m.state = m.session.newState()
		m.state.Subscribe(func(scene.Snapshot) {
			m.frame = m.session.render(m.state)
		})
		m.frame = m.session.render(m.state)
		return m, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == nil {
			return m, nil
		}
		m.status = ""
		m.handleKey(key)
	}
	return m, nil
}

func (m *exploreModel) handleKey(key string) {
	current := int(m.state.Snapshot().Scene)
	switch key {
	case "1", "2", "3", "4":
		m.goTo(int(key[0] - '1'))
	case "right", "l", "n":
		m.goTo(current + 1)
	case "left", "h", "p":
		m.goTo(current - 1)
	}

	switch scene.Scene(current) {
	case scene.GenreTimeline:
		m.handleTimelineKey(key)
	case scene.ArtistAnalysis:
		m.handleArtistKey(key)
	}
}

func (m *exploreModel) goTo(n int) {
	if err := m.state.GoToScene(n); err != nil {
		m.status = m.session.rejected(err).Error()
	}
}

func (m *exploreModel) handleTimelineKey(key string) {
	if m.frame.Timeline == nil || len(m.frame.Timeline.Genres) == 0 {
		return
	}
	genres := m.frame.Timeline.Genres
	switch key {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(genres)-1 {
			m.cursor++
		}
	case "enter":
		m.state.SelectGenreFromTimeline(genres[min(m.cursor, len(genres)-1)])
	}
}

func (m *exploreModel) handleArtistKey(key string) {
	filter := m.state.Snapshot().ArtistFilter
	var u scene.FilterUpdate
	switch key {
	case "c":
		count := cycle(analysis.ArtistCounts, filter.Count)
		u.Count = &count
	case "r":
		rankBy := cycle(analysis.RankMetrics, filter.RankBy)
		u.RankBy = &rankBy
	case "o":
		order := cycle([]analysis.Order{analysis.OrderTop, analysis.OrderBottom}, filter.Order)
		u.Order = &order
	case "x":
		m.state.ClearGenre()
		return
	default:
		return
	}
	if err := m.state.SetArtistFilter(u); err != nil {
		m.status = m.session.rejected(err).Error()
	}
}

// cycle returns the option after current, wrapping around. An unknown current
// value yields the first option.
func cycle[T comparable](options []T, current T) T {
	for i, o := range options {
		if o == current {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

func (m *exploreModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error loading data: %v", m.err)) +
			"\n\n" + helpStyle.Render("q: quit") + "\n"
	}
	if m.state == nil {
		return fmt.Sprintf("Loading %s...\n", m.path)
	}

	f := m.frame
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n%s\n\n", titleStyle.Render(f.Title), descriptionStyle.Render(f.Description))
	fmt.Fprintf(&b, "%s\n", chartTitleStyle.Render(f.ChartTitle))
	b.WriteString(frameAnalysis(f, exploreRows).String())

	if f.Timeline != nil && len(f.Timeline.Genres) > 0 {
		genre := f.Timeline.Genres[min(m.cursor, len(f.Timeline.Genres)-1)]
		fmt.Fprintf(&b, "\n%s\n", cursorStyle.Render("> "+genre))
	}
	if f.State.HasGenre() {
		fmt.Fprintf(&b, "\nSelected genre: %s\n", f.State.SelectedGenre)
	}
	if m.status != "" {
		fmt.Fprintf(&b, "\n%s\n", errorStyle.Render(m.status))
	}

	fmt.Fprintf(&b, "\n%s %.0f%%\n", progressBar(f.Progress, 20), f.Progress)
	b.WriteString(helpStyle.Render(helpLine(f.State.Scene)))
	b.WriteString("\n")
	return b.String()
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = max(0, min(width, filled))
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

func helpLine(sc scene.Scene) string {
	keys := []string{"1-4/←→: scenes"}
	switch sc {
	case scene.GenreTimeline:
		keys = append(keys, "↑↓: genre", "enter: explore genre")
	case scene.ArtistAnalysis:
		keys = append(keys, "c: count", "r: rank by", "o: order", "x: clear filters")
	}
	keys = append(keys, "q: quit")
	return strings.Join(keys, "  ")
}
