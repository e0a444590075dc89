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
	"strconv"

	"github.com/spf13/cobra"
)

var diagnosticsCmd = &cobra.Command{
	Use:   "diagnostics",
	Short: "Shows how much of the source table needed cleaning",
	Long: `Lists the number of rows loaded, numeric fields that fell back to 0,
release dates that could not be read and rows outside 1920-2023.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openSession()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer s.Close()

		if err := printDiagnostics(os.Stdout, s); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(diagnosticsCmd)
}

func printDiagnostics(out io.Writer, s *session) error {
	samples, err := s.metrics.Samples()
	if err != nil {
		return fmt.Errorf("printDiagnostics: %w", err)
	}

	var a Analysis
	a.results = [][]string{{"Metric", "Labels", "Value"}}
	for _, sample := range samples {
		a.results = append(a.results, []string{
			sample.Name,
			sample.Labels,
			strconv.FormatFloat(sample.Value, 'f', -1, 64),
		})
	}
	d := s.catalog.Diagnostics()
	a.summary = fmt.Sprintf("%d of %d rows kept", s.catalog.Len(), d.Rows)
	fmt.Fprint(out, a)
	return nil
}
