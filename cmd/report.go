package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ademuri/music-trends/internal/narrative"
)

var reportGenre string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generates the whole narrative as one YAML document",
	Long:  `Renders all four scenes for the given genre and writes them as a single YAML report.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s, err := openSession()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
		defer s.Close()

		if err := runReport(os.Stdout, s, reportGenre); err != nil {
			fmt.Fprintf(os.Stderr, "Error generating report: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.Flags().StringVarP(&reportGenre, "genre", "g", "", "genre selected for the scatter and artist views")
}

func runReport(out io.Writer, s *session, genre string) error {
	st := s.newState()
	st.SelectGenre(genre)
	report := narrative.BuildReport(s.catalog, st.Snapshot())

	encoder := yaml.NewEncoder(out)
	encoder.SetIndent(2)
	if err := encoder.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	s.log.Infow("report written", "genre", genre, "tracks", report.Overview.TotalTracks)
	return nil
}
