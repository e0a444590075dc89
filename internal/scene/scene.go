// Package scene holds the narrative's view state: which scene is showing,
// which genre is selected and how artists are ranked. All mutation goes
// through the transitions on State.
package scene

import "fmt"

// Scene is one of the four fixed presentation states.
type Scene int

const (
	Overview Scene = iota
	GenreTimeline
	ScatterPlot
	ArtistAnalysis
)

// Count is the number of scenes.
const Count = 4

// All lists the scenes in narrative order.
var All = []Scene{Overview, GenreTimeline, ScatterPlot, ArtistAnalysis}

type info struct {
	name        string
	title       string
	description string
}

var scenes = [Count]info{
	{
		name:        "overview",
		title:       "Welcome to Spotify Music Trends",
		description: "How music has changed over the years, starting with some basic stats.",
	},
	{
		name:        "genre-timeline",
		title:       "How Genres Changed Over Time",
		description: "Which genres were popular in each decade. Pick a genre to explore it in detail.",
	},
	{
		name:        "scatter-plot",
		title:       "Danceability vs Energy Analysis",
		description: "How danceable and energetic songs are. Point size shows popularity.",
	},
	{
		name:        "artist-analysis",
		title:       "Most Popular Artists",
		description: "Artists ranked by their tracks. Change the ranking to find hidden gems.",
	},
}

// Valid reports whether s is one of the four scenes.
func (s Scene) Valid() bool {
	return s >= 0 && s < Count
}

func (s Scene) String() string {
	if !s.Valid() {
		return fmt.Sprintf("scene(%d)", int(s))
	}
	return scenes[s].name
}

// Title is the heading shown above the scene.
func (s Scene) Title() string {
	if !s.Valid() {
		return ""
	}
	return scenes[s].title
}

// Description is the one-line narrative text under the title.
func (s Scene) Description() string {
	if !s.Valid() {
		return ""
	}
	return scenes[s].description
}

// Progress is the share of the narrative reached at s, in percent.
func (s Scene) Progress() float64 {
	return float64(s+1) / Count * 100
}

// MarshalYAML writes the scene by name.
func (s Scene) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
