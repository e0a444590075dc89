package scene

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/ademuri/music-trends/internal/analysis"
)

var (
	// ErrInvalidSceneIndex is returned when navigating outside [0, Count).
	ErrInvalidSceneIndex = errors.New("invalid scene index")

	// ErrInvalidFilterValue is returned for a non-positive artist count or an
	// unknown rank metric or order.
	ErrInvalidFilterValue = errors.New("invalid filter value")
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func getValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Snapshot is a frozen copy of the view state, read once per render.
type Snapshot struct {
	Scene         Scene                 `yaml:"scene"`
	SelectedGenre string                `yaml:"selected_genre,omitempty"`
	ArtistFilter  analysis.ArtistFilter `yaml:"artist_filter"`
}

// HasGenre reports whether a genre filter is active.
func (s Snapshot) HasGenre() bool {
	return s.SelectedGenre != ""
}

// FilterUpdate is a partial artist filter change. Nil fields are left alone.
type FilterUpdate struct {
	Count  *int
	RankBy *analysis.RankBy
	Order  *analysis.Order
}

// State owns the session's view state. It is not safe for concurrent use; the
// session drives it from a single event loop.
type State struct {
	snap        Snapshot
	log         *zap.SugaredLogger
	subscribers []func(Snapshot)
}

// New returns the initial state: the overview, no genre, top 10 artists by
// popularity. log may be nil.
func New(log *zap.SugaredLogger) *State {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &State{
		snap: Snapshot{
			Scene:        Overview,
			ArtistFilter: analysis.DefaultArtistFilter(),
		},
		log: log,
	}
}

// Snapshot returns a copy of the current state.
func (s *State) Snapshot() Snapshot {
	return s.snap
}

// Subscribe registers fn to be called with the new snapshot after every
// successful transition.
func (s *State) Subscribe(fn func(Snapshot)) {
	s.subscribers = append(s.subscribers, fn)
}

// commit replaces the whole snapshot at once, so compound transitions are
// never observed half applied.
func (s *State) commit(op string, next Snapshot) {
	s.snap = next
	s.log.Debugw("scene transition",
		"op", op,
		"scene", next.Scene.String(),
		"genre", next.SelectedGenre,
		"count", next.ArtistFilter.Count,
		"rank_by", next.ArtistFilter.RankBy,
		"order", next.ArtistFilter.Order,
	)
	for _, fn := range s.subscribers {
		fn(next)
	}
}

// GoToScene shows scene n. Navigating to the current scene re-renders it.
func (s *State) GoToScene(n int) error {
	if !Scene(n).Valid() {
		s.log.Warnw("rejected scene change", "scene", n)
		return fmt.Errorf("%w: %d not in [0, %d)", ErrInvalidSceneIndex, n, Count)
	}
	next := s.snap
	next.Scene = Scene(n)
	s.commit("goToScene", next)
	return nil
}

// SelectGenre sets the genre filter without changing the scene.
func (s *State) SelectGenre(genre string) {
	next := s.snap
	next.SelectedGenre = genre
	s.commit("selectGenre", next)
}

// SelectGenreFromTimeline selects genre and moves to the scatter plot in one
// step.
func (s *State) SelectGenreFromTimeline(genre string) {
	next := s.snap
	next.SelectedGenre = genre
	next.Scene = ScatterPlot
	s.commit("selectGenreFromTimeline", next)
}

// ClearGenre drops the genre filter and refreshes the artist analysis in one
// step.
func (s *State) ClearGenre() {
	next := s.snap
	next.SelectedGenre = ""
	next.Scene = ArtistAnalysis
	s.commit("clearGenre", next)
}

// SetArtistFilter applies a partial filter change. An invalid result is
// rejected as a whole and leaves the state untouched.
func (s *State) SetArtistFilter(u FilterUpdate) error {
	next := s.snap
	if u.Count != nil {
		next.ArtistFilter.Count = *u.Count
	}
	if u.RankBy != nil {
		next.ArtistFilter.RankBy = *u.RankBy
	}
	if u.Order != nil {
		next.ArtistFilter.Order = *u.Order
	}

	if err := getValidator().Struct(next.ArtistFilter); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			s.log.Warnw("rejected artist filter", "field", verrs[0].Field(), "value", verrs[0].Value())
			return fmt.Errorf("%w: %s=%v", ErrInvalidFilterValue, verrs[0].Field(), verrs[0].Value())
		}
		return fmt.Errorf("%w: %v", ErrInvalidFilterValue, err)
	}

	s.commit("setArtistFilter", next)
	return nil
}
