package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/composure/composure/internal/composition"
	"github.com/composure/composure/internal/config"
	"github.com/composure/composure/internal/pipeline"
	"github.com/composure/composure/internal/preset"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("composure %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		}
	}

	in := flag.String("in", "", "input screenshot path (required)")
	out := flag.String("out", "composed.png", "output PNG path")
	presetID := flag.String("preset", "", "preset id to apply (defaults to the configured default preset)")
	padding := flag.Int("padding", -1, "override padding in pixels")
	radius := flag.Int("radius", -1, "override corner radius in pixels")
	background := flag.String("background", "", "override background preset id (sky, sunset, ocean, ...)")
	platform := flag.String("platform", "", "render at a platform size (twitter, instagram, ...)")
	listPresets := flag.Bool("list-presets", false, "list available presets and exit")
	flag.Parse()

	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := run(*in, *out, *presetID, *padding, *radius, *background, *platform, *listPresets); err != nil {
		log.Fatalf("composure: %v", err)
	}
}

func run(in, out, presetID string, padding, radius int, background, platform string, listPresets bool) error {
	presets, err := preset.NewManager()
	if err != nil {
		return fmt.Errorf("presets: %w", err)
	}

	if listPresets {
		for _, e := range presets.List() {
			fmt.Printf("%-12s %s\n", e.ID, e.Name)
		}
		return nil
	}

	if in == "" {
		return fmt.Errorf("no input image (use -in)")
	}

	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	if presetID == "" {
		presetID = cfg.Defaults.PresetID
	}

	p := pipeline.New()
	if presetID != "" {
		pr, ok := presets.Get(presetID)
		if !ok {
			return fmt.Errorf("unknown preset %q", presetID)
		}
		p.SetState(pr.Composition)
	}

	if err := p.LoadImage(in); err != nil {
		return err
	}

	applyOverrides(p, padding, radius, background, platform)

	if w, h, ok := p.OutputSize(); ok {
		log.Printf("rendering %dx%d canvas", w, h)
	}

	if err := p.ExportPNG(out); err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

// applyOverrides folds command-line overrides into the pipeline state.
func applyOverrides(p *pipeline.Pipeline, padding, radius int, background, platform string) {
	var u composition.StateUpdate
	if padding >= 0 {
		u.PaddingPx = &padding
	}
	if radius >= 0 {
		u.RadiusPx = &radius
	}
	if background != "" {
		u.Background = &composition.BackgroundConfig{
			Type:     composition.BackgroundTypePreset,
			PresetID: background,
		}
	}
	if platform != "" {
		out := p.State().Output
		out.Mode = composition.OutputModePlatform
		out.Platform = platform
		u.Output = &out
	}
	p.UpdateState(u)
}
