package main

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/nightshift/internal/mediafx"
)

func TestParseAssignment(t *testing.T) {
	tests := []struct {
		in      string
		key     string
		value   float64
		wantErr bool
	}{
		{"brightness=120", "brightness", 120, false},
		{" Blur = 1.5 ", "blur", 1.5, false},
		{"speed=0.95", "speed", 0.95, false},
		{"brightness", "", 0, true},
		{"hue=warm", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			key, value, err := parseAssignment(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseAssignment(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && (key != tt.key || value != tt.value) {
				t.Errorf("parseAssignment(%q) = (%q, %v)", tt.in, key, value)
			}
		})
	}
}

func TestApplyFilterFlags(t *testing.T) {
	defer func() {
		flagPreset, flagSet, flagRandomize = "", nil, false
	}()

	flagPreset = "retro-tape"
	flagSet = []string{"speed=1.5", "blur=50"}

	e := mediafx.NewEditor(mediafx.ModeVideo)
	if err := applyFilterFlags(e, rand.New(rand.NewSource(1))); err != nil {
		t.Fatalf("applyFilterFlags() failed: %v", err)
	}

	if e.PlaybackRate() != 1.5 {
		t.Errorf("--set should override the preset speed, got %v", e.PlaybackRate())
	}
	if e.Value(mediafx.KeyBlur) != 20 {
		t.Errorf("blur = %v, expected the clamp at 20", e.Value(mediafx.KeyBlur))
	}
	if e.Value(mediafx.KeySepia) != 34 {
		t.Errorf("sepia = %v, expected the preset value 34", e.Value(mediafx.KeySepia))
	}

	flagSet = []string{"rotate=90"}
	if err := applyFilterFlags(mediafx.NewEditor(mediafx.ModeVideo), nil); err == nil {
		t.Error("rotate is not a video slider and should fail")
	}
}
