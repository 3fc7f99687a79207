package config

import "sort"

// Presets holds the built-in demo signal pairs, keyed by mode then name.
var Presets = map[string]map[string]*Config{
	"continuous": {
		"rect-tri": {
			Mode: "continuous", X: "rect(t)", H: "tri(t)", Speed: 1,
			Description: "rectangular pulse convolved with triangular pulse",
		},
		"step-decay": {
			Mode: "continuous", X: "u(t)", H: "exp(-t)*u(t)", Speed: 1,
			Description: "unit step response of a first-order system",
		},
		"gaussian-window": {
			Mode: "continuous", X: "exp(-t^2)", H: "u(t)-u(t-1)", Speed: 1,
			Description: "gaussian pulse through a rectangular window",
		},
		"sinc-rect": {
			Mode: "continuous", X: "sinc(t)", H: "rect(t)", Speed: 1,
			Description: "band-limited pulse through a unit pulse",
		},
	},
	"discrete": {
		"finite": {
			Mode: "discrete", X: "[1, 2, 1]", H: "[1, 1]", Speed: 1,
			Description: "simple finite sequences",
		},
		"decay-diff": {
			Mode: "discrete", X: "0.9^n * u(n)", H: "[1, -0.5]", Speed: 1,
			Description: "exponential decay through a differencer",
		},
		"moving-average": {
			Mode: "discrete", X: "[1, 0, 1, 0, 1]", H: "[0.25, 0.25, 0.25, 0.25]", Speed: 1,
			Description: "impulse train through a 4-point moving average",
		},
		"impulse-shift": {
			Mode: "discrete", X: "[1, 2, 3]", H: "delta[n-3]", Speed: 1,
			Description: "sequence delayed by a shifted impulse",
		},
	},
}

func GetPreset(mode, preset string) *Config {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	cfg, ok := modePresets[preset]
	if !ok {
		return nil
	}
	out := *cfg
	out.Preset = preset
	return &out
}

func ListPresets(mode string) []string {
	modePresets, ok := Presets[mode]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modePresets))
	for name := range modePresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
