// Package mediafx composes CSS filter strings for still images and video
// from a set of bounded adjustment sliders and named presets.
package mediafx

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownParam is returned when a key names no slider of the editor mode.
	ErrUnknownParam = errors.New("mediafx: unknown parameter")
	// ErrUnknownPreset is returned when a preset name matches nothing.
	ErrUnknownPreset = errors.New("mediafx: unknown preset")
	// ErrUnknownMode is returned by ParseMode for anything but image or video.
	ErrUnknownMode = errors.New("mediafx: unknown mode")
)

// Mode selects the slider set and presets of an editor.
type Mode int

const (
	ModeImage Mode = iota
	ModeVideo
)

// String returns the mode name used on the command line and in preset files.
func (m Mode) String() string {
	switch m {
	case ModeImage:
		return "image"
	case ModeVideo:
		return "video"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "image" or "video" (any case) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "image", "":
		return ModeImage, nil
	case "video":
		return ModeVideo, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownMode, s)
}

// Param describes one slider.
type Param struct {
	Key     string
	Label   string
	Min     float64
	Max     float64
	Step    float64
	Unit    string
	Default float64
}

// Clamp limits v to the slider range.
func (p Param) Clamp(v float64) float64 {
	if v < p.Min {
		return p.Min
	}
	if v > p.Max {
		return p.Max
	}
	return v
}

// Slider keys
const (
	KeyBrightness = "brightness"
	KeyContrast   = "contrast"
	KeySaturate   = "saturate"
	KeyBlur       = "blur"
	KeyHue        = "hue"
	KeyGrayscale  = "grayscale"
	KeySepia      = "sepia"
	KeyInvert     = "invert"
	KeyRotate     = "rotate"
	KeySpeed      = "speed"
)

// toneParams are shared by both modes, in filter order.
var toneParams = []Param{
	{Key: KeyBrightness, Label: "Brightness", Min: 0, Max: 200, Step: 1, Unit: "%", Default: 100},
	{Key: KeyContrast, Label: "Contrast", Min: 0, Max: 200, Step: 1, Unit: "%", Default: 100},
	{Key: KeySaturate, Label: "Saturation", Min: 0, Max: 200, Step: 1, Unit: "%", Default: 100},
	{Key: KeyBlur, Label: "Blur", Min: 0, Max: 20, Step: 0.1, Unit: "px"},
	{Key: KeyHue, Label: "Hue", Min: 0, Max: 360, Step: 1, Unit: "deg"},
	{Key: KeyGrayscale, Label: "Grayscale", Min: 0, Max: 100, Step: 1, Unit: "%"},
	{Key: KeySepia, Label: "Sepia", Min: 0, Max: 100, Step: 1, Unit: "%"},
	{Key: KeyInvert, Label: "Invert", Min: 0, Max: 100, Step: 1, Unit: "%"},
}

var (
	rotateParam = Param{Key: KeyRotate, Label: "Rotate", Min: 0, Max: 360, Step: 1, Unit: "deg"}
	speedParam  = Param{Key: KeySpeed, Label: "Playback Speed", Min: 0.25, Max: 2, Step: 0.05, Unit: "x", Default: 1}
)

// Params returns the sliders of a mode in display order.
func Params(m Mode) []Param {
	out := make([]Param, 0, len(toneParams)+1)
	out = append(out, toneParams...)
	if m == ModeVideo {
		return append(out, speedParam)
	}
	return append(out, rotateParam)
}

// lookupParam finds a slider by key.
func lookupParam(m Mode, key string) (Param, bool) {
	for _, p := range Params(m) {
		if p.Key == key {
			return p, true
		}
	}
	return Param{}, false
}
