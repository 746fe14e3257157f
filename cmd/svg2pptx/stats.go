package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ivlev/svg2pptx/internal/convert"
)

// NewStatsCmd creates the stats command.
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <input.svg>",
		Short: "Inspect a document's animations without converting",
		Long: `Stats parses the document's animations and prints counters,
warnings and the derived complexity, without generating timing XML.`,
		Args: cobra.ExactArgs(1),
		RunE: runStatsCmd,
	}
}

func runStatsCmd(cmd *cobra.Command, args []string) error {
	root, err := parseDocument(args[0])
	if err != nil {
		return err
	}

	stats := convert.Stats(root)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "animations: %d\n", stats.Total)
	fmt.Fprintf(out, "elements:   %d\n", stats.UniqueElements)
	fmt.Fprintf(out, "duration:   %.2fs\n", stats.Duration)
	fmt.Fprintf(out, "complexity: %s\n", stats.Complexity)
	for _, w := range stats.Warnings {
		fmt.Fprintf(out, "warning:    %s\n", w)
	}
	return nil
}
