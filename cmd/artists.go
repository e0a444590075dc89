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
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ademuri/music-trends/internal/analysis"
	"github.com/ademuri/music-trends/internal/scene"
)

var artistsGenre string
var artistsNumber int
var artistsRankBy string
var artistsOrder string
var artistsCmd = &cobra.Command{
	Use:   "artists",
	Short: "Ranks artists with at least three tracks",
	Long: `Scene 4: artists ranked by average track popularity, track count or
average artist popularity. Use --order bottom to find hidden gems.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer s.Close()

		filter := artistsFilterFromFlags(cmd)
		if err := printArtists(os.Stdout, s, artistsGenre, filter); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(artistsCmd)

	def := analysis.DefaultArtistFilter()
	artistsCmd.Flags().StringVarP(&artistsGenre, "genre", "g", "", "only rank tracks of this primary genre")
	artistsCmd.Flags().IntVarP(&artistsNumber, "count", "n", def.Count, "number of artists to show")
	artistsCmd.Flags().StringVar(&artistsRankBy, "rank-by", string(def.RankBy), "popularity, trackCount or artistPopularity")
	artistsCmd.Flags().StringVar(&artistsOrder, "order", string(def.Order), "top or bottom")
}

// artistsFilterFromFlags collects only the flags the user set.
func artistsFilterFromFlags(cmd *cobra.Command) scene.FilterUpdate {
	var u scene.FilterUpdate
	if cmd.Flags().Changed("count") {
		u.Count = &artistsNumber
	}
	if cmd.Flags().Changed("rank-by") {
		r := analysis.RankBy(artistsRankBy)
		u.RankBy = &r
	}
	if cmd.Flags().Changed("order") {
		o := analysis.Order(artistsOrder)
		u.Order = &o
	}
	return u
}

func printArtists(out io.Writer, s *session, genre string, u scene.FilterUpdate) error {
	st := s.newState()
	if err := st.SetArtistFilter(u); err != nil {
		return fmt.Errorf("printArtists: %w", s.rejected(err))
	}
	st.SelectGenre(genre)
	return s.printScene(out, st, scene.ArtistAnalysis, 0)
}
