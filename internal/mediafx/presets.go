package mediafx

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Preset is a named bundle of slider values.
// A Random preset picks every slider value at random instead.
type Preset struct {
	Name   string             `yaml:"name"`
	Mode   string             `yaml:"mode"`
	Random bool               `yaml:"random,omitempty"`
	Values map[string]float64 `yaml:"values,omitempty"`
}

var imagePresets = []Preset{
	{Name: "Neon Pop", Mode: "image", Values: map[string]float64{
		KeyBrightness: 112, KeyContrast: 140, KeySaturate: 170, KeyHue: 18, KeyBlur: 0,
		KeyGrayscale: 0, KeySepia: 8, KeyInvert: 0, KeyRotate: 0,
	}},
	{Name: "Vintage", Mode: "image", Values: map[string]float64{
		KeyBrightness: 98, KeyContrast: 88, KeySaturate: 82, KeyHue: 0, KeyBlur: 0,
		KeyGrayscale: 0, KeySepia: 55, KeyInvert: 0, KeyRotate: 0,
	}},
	{Name: "Noir", Mode: "image", Values: map[string]float64{
		KeyBrightness: 102, KeyContrast: 136, KeySaturate: 30, KeyHue: 0, KeyBlur: 0,
		KeyGrayscale: 95, KeySepia: 0, KeyInvert: 0, KeyRotate: 0,
	}},
	{Name: "Dream", Mode: "image", Values: map[string]float64{
		KeyBrightness: 110, KeyContrast: 92, KeySaturate: 118, KeyHue: 28, KeyBlur: 1.2,
		KeyGrayscale: 0, KeySepia: 16, KeyInvert: 0, KeyRotate: 0,
	}},
	{Name: "Random", Mode: "image", Random: true},
}

var videoPresets = []Preset{
	{Name: "Cinematic", Mode: "video", Values: map[string]float64{
		KeyBrightness: 94, KeyContrast: 132, KeySaturate: 110, KeyBlur: 0, KeyHue: 6,
		KeyGrayscale: 0, KeySepia: 14, KeyInvert: 0, KeySpeed: 1,
	}},
	{Name: "Retro Tape", Mode: "video", Values: map[string]float64{
		KeyBrightness: 98, KeyContrast: 88, KeySaturate: 90, KeyBlur: 0.8, KeyHue: 0,
		KeyGrayscale: 8, KeySepia: 34, KeyInvert: 0, KeySpeed: 0.95,
	}},
	{Name: "Cyber", Mode: "video", Values: map[string]float64{
		KeyBrightness: 110, KeyContrast: 145, KeySaturate: 165, KeyBlur: 0, KeyHue: 36,
		KeyGrayscale: 0, KeySepia: 0, KeyInvert: 0, KeySpeed: 1.05,
	}},
	{Name: "Muted", Mode: "video", Values: map[string]float64{
		KeyBrightness: 100, KeyContrast: 108, KeySaturate: 52, KeyBlur: 0.2, KeyHue: 0,
		KeyGrayscale: 14, KeySepia: 0, KeyInvert: 0, KeySpeed: 1,
	}},
	{Name: "Random", Mode: "video", Random: true},
}

// BuiltinPresets returns the presets shipped for a mode, in display order.
func BuiltinPresets(m Mode) []Preset {
	src := imagePresets
	if m == ModeVideo {
		src = videoPresets
	}
	out := make([]Preset, len(src))
	copy(out, src)
	return out
}

// Slug returns the kebab-case form of a preset name ("Retro Tape" -> "retro-tape").
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}

// matches reports whether name selects p, by label or slug, ignoring case.
func (p Preset) matches(name string) bool {
	name = strings.TrimSpace(name)
	return strings.EqualFold(p.Name, name) || Slug(p.Name) == Slug(name)
}

// validate checks that a preset targets a known mode and only known sliders.
func (p Preset) validate() (Mode, error) {
	if strings.TrimSpace(p.Name) == "" {
		return 0, fmt.Errorf("mediafx: preset without a name")
	}
	m, err := ParseMode(p.Mode)
	if err != nil {
		return 0, fmt.Errorf("preset %q: %w", p.Name, err)
	}
	if !p.Random && len(p.Values) == 0 {
		return 0, fmt.Errorf("mediafx: preset %q sets no values", p.Name)
	}
	for key := range p.Values {
		if _, ok := lookupParam(m, key); !ok {
			return 0, fmt.Errorf("preset %q: %w %q for %s", p.Name, ErrUnknownParam, key, m)
		}
	}
	return m, nil
}

// presetFile is the YAML layout of a custom preset file.
type presetFile struct {
	Presets []Preset `yaml:"presets"`
}

// LoadPresets reads custom presets from a YAML file:
//
//	presets:
//	  - name: Sunset
//	    mode: image
//	    values: {brightness: 108, hue: 20, sepia: 30}
//	  - name: Chaos
//	    mode: video
//	    random: true
func LoadPresets(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read presets %s: %w", path, err)
	}

	var file presetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse presets %s: %w", path, err)
	}

	for i := range file.Presets {
		m, err := file.Presets[i].validate()
		if err != nil {
			return nil, fmt.Errorf("invalid presets %s: %w", path, err)
		}
		file.Presets[i].Mode = m.String()
	}
	return file.Presets, nil
}
