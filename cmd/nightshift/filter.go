package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/nightshift/internal/mediafx"
	"github.com/vovakirdan/nightshift/internal/platform/tui"
)

var (
	flagMode        string
	flagPreset      string
	flagSet         []string
	flagPresetsFile string
	flagListParams  bool
	flagRandomize   bool
	flagInteractive bool
)

var filterCmd = &cobra.Command{
	Use:   "filter",
	Short: "Compose a CSS filter for an image or video",
	Long: `Build a CSS filter string from slider values and presets.

Values start at their defaults; --preset is applied first, then each
--set in order. Out-of-range values are clamped. Rotation (images) and
playback speed (video) are printed separately as they are not filters.

Examples:
  nightshift filter --preset "neon pop"
  nightshift filter --mode video --preset retro-tape --set speed=1.5
  nightshift filter --set brightness=120 --set blur=1.5
  nightshift filter --random --seed 7
  nightshift filter --presets ./my-presets.yaml --list
  nightshift filter --interactive`,
	Args: cobra.NoArgs,
	Run:  runFilter,
}

func init() {
	filterCmd.Flags().StringVar(&flagMode, "mode", "image", "Media type: image or video")
	filterCmd.Flags().StringVar(&flagPreset, "preset", "", "Preset to apply first")
	filterCmd.Flags().StringArrayVar(&flagSet, "set", nil, "Slider value as key=value (repeatable)")
	filterCmd.Flags().StringVar(&flagPresetsFile, "presets", "", "YAML file with custom presets")
	filterCmd.Flags().BoolVar(&flagListParams, "list", false, "List sliders and presets, then exit")
	filterCmd.Flags().BoolVar(&flagRandomize, "random", false, "Randomize every slider")
	filterCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Open the interactive filter lab")
}

func runFilter(_ *cobra.Command, _ []string) {
	mode, err := mediafx.ParseMode(flagMode)
	if err != nil {
		fail("%v", err)
	}

	var custom []mediafx.Preset
	if flagPresetsFile != "" {
		custom, err = mediafx.LoadPresets(flagPresetsFile)
		if err != nil {
			fail("%v", err)
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if flagInteractive {
		editor, labErr := tui.RunFilterLab(mode, seed, custom)
		if labErr != nil {
			fail("filter lab: %v", labErr)
		}
		if editor != nil {
			printFilter(editor)
		}
		return
	}

	editor := mediafx.NewEditor(mode)
	if n := editor.AddPresets(custom...); len(custom) > 0 && n == 0 {
		logger.Warn("no custom presets for this mode", "mode", mode, "file", flagPresetsFile)
	}

	if flagListParams {
		printCatalog(editor)
		return
	}

	if err := applyFilterFlags(editor, rand.New(rand.NewSource(seed))); err != nil {
		fail("%v", err)
	}
	printFilter(editor)
}

// applyFilterFlags applies --preset, --random and each --set, in that order.
func applyFilterFlags(e *mediafx.Editor, rng mediafx.Rand) error {
	if flagPreset != "" {
		if err := e.ApplyPreset(flagPreset, rng); err != nil {
			return err
		}
	}
	if flagRandomize {
		e.Randomize(rng)
	}
	for _, kv := range flagSet {
		key, value, err := parseAssignment(kv)
		if err != nil {
			return err
		}
		if err := e.Set(key, value); err != nil {
			return err
		}
	}
	return nil
}

// parseAssignment splits "key=value" and parses the value.
func parseAssignment(kv string) (string, float64, error) {
	key, raw, ok := strings.Cut(kv, "=")
	if !ok {
		return "", 0, fmt.Errorf("invalid --set %q: want key=value", kv)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return "", 0, fmt.Errorf("invalid --set %q: %w", kv, err)
	}
	return strings.ToLower(strings.TrimSpace(key)), value, nil
}

func printFilter(e *mediafx.Editor) {
	fmt.Println(e.Filter())
	switch e.Mode() {
	case mediafx.ModeImage:
		fmt.Printf("rotate: %gdeg\n", e.Rotation())
	case mediafx.ModeVideo:
		fmt.Printf("playback-rate: %g\n", e.PlaybackRate())
	}
}

func printCatalog(e *mediafx.Editor) {
	fmt.Printf("Sliders (%s):\n\n", e.Mode())
	fmt.Printf("  %-10s  %-15s  %-12s  %-6s  %s\n", "Key", "Label", "Range", "Step", "Default")
	for _, pv := range e.Values() {
		rng := fmt.Sprintf("%g..%g%s", pv.Min, pv.Max, pv.Unit)
		fmt.Printf("  %-10s  %-15s  %-12s  %-6g  %g\n", pv.Key, pv.Label, rng, pv.Step, pv.Default)
	}

	fmt.Printf("\nPresets:\n\n")
	for _, p := range e.Presets() {
		desc := "randomizes every slider"
		if !p.Random {
			desc = fmt.Sprintf("%d value(s)", len(p.Values))
		}
		fmt.Printf("  %-12s  %-12s  %s\n", p.Name, mediafx.Slug(p.Name), desc)
	}
}
