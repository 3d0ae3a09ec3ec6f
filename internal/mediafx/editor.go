package mediafx

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Rand is the randomness source used by Randomize; *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// ParamValue pairs a slider with its current value.
type ParamValue struct {
	Param
	Value float64
}

// Editor holds the slider values of one media item.
type Editor struct {
	mode    Mode
	params  []Param
	values  map[string]float64
	presets []Preset
}

// NewEditor creates an editor with every slider at its default.
func NewEditor(m Mode) *Editor {
	e := &Editor{
		mode:    m,
		params:  Params(m),
		values:  make(map[string]float64),
		presets: BuiltinPresets(m),
	}
	e.Reset()
	return e
}

// Mode returns the editor mode.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Reset restores every slider to its default.
func (e *Editor) Reset() {
	for _, p := range e.params {
		e.values[p.Key] = p.Default
	}
}

// Set assigns a slider, clamping the value into its range.
func (e *Editor) Set(key string, value float64) error {
	p, ok := lookupParam(e.mode, key)
	if !ok {
		return fmt.Errorf("%w %q for %s", ErrUnknownParam, key, e.mode)
	}
	if math.IsNaN(value) {
		return fmt.Errorf("mediafx: %s: value is not a number", key)
	}
	e.values[key] = p.Clamp(value)
	return nil
}

// Value returns the current value of a slider, or 0 for an unknown key.
func (e *Editor) Value(key string) float64 {
	return e.values[key]
}

// Values returns all sliders with their values, in display order.
func (e *Editor) Values() []ParamValue {
	out := make([]ParamValue, len(e.params))
	for i, p := range e.params {
		out[i] = ParamValue{Param: p, Value: e.values[p.Key]}
	}
	return out
}

// Presets returns the presets available to this editor, built-in first.
func (e *Editor) Presets() []Preset {
	out := make([]Preset, len(e.presets))
	copy(out, e.presets)
	return out
}

// AddPresets makes custom presets of the editor's mode available and
// returns how many were added. Presets of the other mode are skipped.
// A custom preset replaces a built-in of the same name.
func (e *Editor) AddPresets(ps ...Preset) int {
	added := 0
	for _, p := range ps {
		m, err := p.validate()
		if err != nil || m != e.mode {
			continue
		}
		if i := e.findPreset(p.Name); i >= 0 {
			e.presets[i] = p
		} else {
			e.presets = append(e.presets, p)
		}
		added++
	}
	return added
}

func (e *Editor) findPreset(name string) int {
	for i, p := range e.presets {
		if p.matches(name) {
			return i
		}
	}
	return -1
}

// ApplyPreset applies the named preset. Only the sliders the preset names
// change; a random preset randomizes every slider using rng.
func (e *Editor) ApplyPreset(name string, rng Rand) error {
	i := e.findPreset(name)
	if i < 0 {
		return fmt.Errorf("%w %q for %s", ErrUnknownPreset, name, e.mode)
	}

	p := e.presets[i]
	if p.Random {
		e.Randomize(rng)
		return nil
	}
	for key, v := range p.Values {
		if err := e.Set(key, v); err != nil {
			return err
		}
	}
	return nil
}

// Randomize sets every slider to a random multiple of its step within range,
// rounded to two decimals. A nil rng uses a time-seeded source.
func (e *Editor) Randomize(rng Rand) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	for _, p := range e.params {
		steps := int(math.Round((p.Max - p.Min) / p.Step))
		pick := rng.Intn(steps + 1)
		e.values[p.Key] = round2(p.Min + float64(pick)*p.Step)
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Filter returns the CSS filter for the current values. Rotation and
// playback speed are not part of the filter.
func (e *Editor) Filter() string {
	v := e.values
	parts := []string{
		"brightness(" + formatNumber(v[KeyBrightness]) + "%)",
		"contrast(" + formatNumber(v[KeyContrast]) + "%)",
		"saturate(" + formatNumber(v[KeySaturate]) + "%)",
		"blur(" + formatNumber(v[KeyBlur]) + "px)",
		"hue-rotate(" + formatNumber(v[KeyHue]) + "deg)",
		"grayscale(" + formatNumber(v[KeyGrayscale]) + "%)",
		"sepia(" + formatNumber(v[KeySepia]) + "%)",
		"invert(" + formatNumber(v[KeyInvert]) + "%)",
	}
	return strings.Join(parts, " ")
}

// Rotation returns the image rotation in degrees; always 0 for video.
func (e *Editor) Rotation() float64 {
	if e.mode != ModeImage {
		return 0
	}
	return e.values[KeyRotate]
}

// PlaybackRate returns the video playback speed; always 1 for images.
func (e *Editor) PlaybackRate() float64 {
	if e.mode != ModeVideo {
		return 1
	}
	return e.values[KeySpeed]
}

// FormatValue renders a slider value with its unit, e.g. "112%" or "0.95x".
func FormatValue(pv ParamValue) string {
	return formatNumber(pv.Value) + pv.Unit
}

// formatNumber prints the shortest decimal form of v.
func formatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
