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

	"github.com/ademuri/music-trends/internal/scene"
)

var scatterGenre string
var scatterRows int
var scatterCmd = &cobra.Command{
	Use:   "scatter",
	Short: "Lists tracks by danceability and energy",
	Long: `Scene 3: the danceability/energy point cloud, optionally for one genre.
Large catalogs are sampled down to at most 10000 points.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer s.Close()

		if err := printScatter(os.Stdout, s, scatterGenre, scatterRows); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(scatterCmd)

	scatterCmd.Flags().StringVarP(&scatterGenre, "genre", "g", "", "only show tracks of this primary genre")
	scatterCmd.Flags().IntVarP(&scatterRows, "rows", "n", 25, "number of points to print, 0 for all")
}

func printScatter(out io.Writer, s *session, genre string, rows int) error {
	st := s.newState()
	st.SelectGenre(genre)
	return s.printScene(out, st, scene.ScatterPlot, rows)
}
