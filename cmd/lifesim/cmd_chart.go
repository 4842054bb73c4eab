package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/oakheart-games/lifesim/internal/format"
)

var chartFlags struct {
	markdown bool
}

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Print the element effectiveness chart",
	RunE:  runChart,
}

func init() {
	chartCmd.Flags().BoolVar(&chartFlags.markdown, "markdown", false, "render as a Markdown table")
}

func runChart(cmd *cobra.Command, _ []string) error {
	mode := configuredMode()
	if chartFlags.markdown {
		mode = format.Markdown
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, chartTable(mode))
	fmt.Fprintln(out, ancientWorldNote())
	return nil
}
