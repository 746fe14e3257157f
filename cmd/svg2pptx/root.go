package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for svg2pptx.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "svg2pptx",
		Short: "Convert SVG animations to presentation timing XML",
		Long: `svg2pptx reads an SVG document's declarative animations (SMIL
attributes and CSS @keyframes) and re-expresses them as the
presentation format's native timing tree.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewConvertCmd())
	cmd.AddCommand(NewStatsCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
