// Package priority validates source string priorities.
package priority

import (
	"errors"
	"strconv"
	"strings"
)

const (
	Min     = 0
	Max     = 1000
	Default = 100
)

var (
	// ErrRequired reports an empty priority value.
	ErrRequired = errors.New("priority is required")
	// ErrInvalid reports a value that is not an integer in [Min, Max].
	ErrInvalid = errors.New("priority must be an integer between 0 and 1000")
)

// Preset is one named priority offered by the editor. Lower values sort
// first.
type Preset struct {
	Value int
	// Key is the localization key of the preset label.
	Key string
}

var presets = []Preset{
	{Value: 60, Key: "web.source.priority.very_high"},
	{Value: 80, Key: "web.source.priority.high"},
	{Value: Default, Key: "web.source.priority.medium"},
	{Value: 120, Key: "web.source.priority.low"},
	{Value: 140, Key: "web.source.priority.very_low"},
}

// Presets returns the named priorities, highest first.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// IsPreset reports whether value has a named preset.
func IsPreset(value int) bool {
	for _, p := range presets {
		if p.Value == value {
			return true
		}
	}
	return false
}

// Parse reads a submitted priority.
func Parse(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ErrRequired
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < Min || value > Max {
		return 0, ErrInvalid
	}
	return value, nil
}
