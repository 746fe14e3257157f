package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivlev/svg2pptx/internal/config"
	"github.com/ivlev/svg2pptx/internal/convert"
	"github.com/ivlev/svg2pptx/internal/dom"
	"github.com/ivlev/svg2pptx/internal/pptx"
	"github.com/ivlev/svg2pptx/internal/sampler"
	"github.com/ivlev/svg2pptx/internal/system"
)

// NewConvertCmd creates the convert command.
func NewConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <input.svg>",
		Short: "Convert a document's animations to timing XML",
		Long: `Convert parses the SVG document, extracts its SMIL and CSS
animations, filters them through the policy gate and writes the
generated timing XML.

Examples:
  # Convert to stdout
  svg2pptx convert drawing.svg

  # Convert to a file with a scene dump for inspection
  svg2pptx convert drawing.svg -o timing.xml --scenes scenes.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: runConvertCmd,
	}

	cmd.Flags().StringP("output", "o", "", "Output path for the timing XML (default: stdout)")
	cmd.Flags().StringP("config", "c", "", "YAML config file with sampler/policy settings")
	cmd.Flags().Float64P("duration", "d", 0, "Target timeline duration in seconds (0 = derive)")
	cmd.Flags().Float64P("sample-rate", "r", 0, "Scene sample rate in Hz (0 = config default)")
	cmd.Flags().IntP("workers", "w", 0, "Sampling workers (0 = size by host CPUs)")
	cmd.Flags().String("scenes", "", "Also dump sampled scenes to this YAML file")
	cmd.Flags().Bool("stats", false, "Print a host resource report after conversion")

	return cmd
}

func runConvertCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if d, _ := cmd.Flags().GetFloat64("duration"); d > 0 {
		cfg.TargetDuration = d
	}
	if r, _ := cmd.Flags().GetFloat64("sample-rate"); r > 0 {
		cfg.Sampler.SampleRate = r
	}
	if w, _ := cmd.Flags().GetInt("workers"); w > 0 {
		cfg.Sampler.Workers = w
	} else if cfg.Sampler.Workers <= 1 {
		cfg.Sampler.Workers = system.WorkerCount()
	}

	root, err := parseDocument(args[0])
	if err != nil {
		return err
	}

	var mapper pptx.ShapeMapper
	if len(cfg.ShapeMap) > 0 {
		mapper = pptx.StaticMapper(cfg.ShapeMap)
	}

	result := convert.Convert(root, convert.Options{
		TargetDuration: cfg.TargetDuration,
		Sampler:        cfg.Sampler,
		Limits:         cfg.Limits,
		ShapeMap:       mapper,
	})

	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "[!] %s\n", w)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		fmt.Fprint(cmd.OutOrStdout(), result.XML)
	} else if err := os.WriteFile(output, []byte(result.XML), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}

	if scenesPath, _ := cmd.Flags().GetString("scenes"); scenesPath != "" {
		if err := sampler.WriteScenes(result.Scenes, scenesPath); err != nil {
			return fmt.Errorf("writing scenes: %w", err)
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "[*] %d animations converted, %d scenes, complexity %s\n",
		len(result.Definitions), len(result.Scenes), result.Summary.Complexity)

	if showStats, _ := cmd.Flags().GetBool("stats"); showStats || cfg.ShowStats {
		fmt.Fprintf(cmd.ErrOrStderr(), "[*] %s\n", system.Collect())
	}
	return nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

func parseDocument(path string) (*dom.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	root, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return root, nil
}
