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
	"errors"
	"fmt"
	"io"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ademuri/music-trends/internal/catalog"
	"github.com/ademuri/music-trends/internal/logger"
	"github.com/ademuri/music-trends/internal/metrics"
	"github.com/ademuri/music-trends/internal/narrative"
	"github.com/ademuri/music-trends/internal/scene"
)

// session is the state shared by every command: a logger, the loaded
// catalog and the diagnostics registry.
type session struct {
	log     *zap.SugaredLogger
	catalog *catalog.Catalog
	metrics *metrics.Metrics
}

func newLogger() (*zap.SugaredLogger, error) {
	log, err := logger.New(viper.GetString("log_level"), viper.GetString("log_format"))
	if err != nil {
		return nil, fmt.Errorf("newLogger: %w", err)
	}
	return log, nil
}

func newFileLogger(path string) (*zap.SugaredLogger, error) {
	log, err := logger.NewFile(viper.GetString("log_level"), viper.GetString("log_format"), path)
	if err != nil {
		return nil, fmt.Errorf("newFileLogger: %w", err)
	}
	return log, nil
}

// loadCatalog reads and normalizes the CSV at path, recording diagnostics in
// m. The returned error is a *catalog.LoadError.
func loadCatalog(log *zap.SugaredLogger, m *metrics.Metrics, path string) (*catalog.Catalog, error) {
	log.Infow("loading catalog", "path", path)
	c, err := catalog.Open(path)
	if err != nil {
		log.Errorw("loading catalog failed", "path", path, "error", err)
		return nil, err
	}

	m.RecordCatalog(c)
	d := c.Diagnostics()
	log.Infow("catalog loaded", "rows", d.Rows, "tracks", c.Len(), "out_of_range", d.OutOfRange)
	log.Debugw("coercion fallbacks",
		"defaulted_fields", d.Defaulted(),
		"unparseable_dates", d.UnparseableDates,
		"unknown_genres", d.UnknownGenres,
	)
	return c, nil
}

func openSession() (*session, error) {
	log, err := newLogger()
	if err != nil {
		return nil, err
	}

	m := metrics.New()
	c, err := loadCatalog(log, m, viper.GetString("data"))
	if err != nil {
		return nil, err
	}
	return &session{log: log, catalog: c, metrics: m}, nil
}

func (s *session) Close() {
	s.log.Sync()
}

func (s *session) newState() *scene.State {
	return scene.New(s.log)
}

// rejected counts a refused transition and passes err through.
func (s *session) rejected(err error) error {
	reason := "other"
	switch {
	case errors.Is(err, scene.ErrInvalidSceneIndex):
		reason = "scene_index"
	case errors.Is(err, scene.ErrInvalidFilterValue):
		reason = "filter_value"
	}
	s.metrics.RejectedTransitions.WithLabelValues(reason).Inc()
	return err
}

// render computes the current scene of st.
func (s *session) render(st *scene.State) narrative.Frame {
	snap := st.Snapshot()
	s.metrics.SceneRenders.WithLabelValues(snap.Scene.String()).Inc()
	return narrative.Render(s.catalog, snap)
}

// printScene moves st to sc and prints it to out.
func (s *session) printScene(out io.Writer, st *scene.State, sc scene.Scene, rows int) error {
	if err := st.GoToScene(int(sc)); err != nil {
		return s.rejected(err)
	}
	printFrame(out, s.render(st), rows)
	return nil
}
