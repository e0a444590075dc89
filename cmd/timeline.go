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

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Shows how genres changed decade by decade",
	Long: `Scene 2: track counts per decade for the most common genres. Only genres
with more than 50 tracks are shown, and Unknown is left out.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer s.Close()

		if err := printTimeline(os.Stdout, s); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(timelineCmd)
}

func printTimeline(out io.Writer, s *session) error {
	return s.printScene(out, s.newState(), scene.GenreTimeline, 0)
}
