package warp

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Preset is the external representation of a parameter record: a flat
// key-value map tagged with the filter it belongs to.
type Preset struct {
	FilterID string `json:"filterId"`
	Params   Params `json:"params"`
}

// Preset errors.
var (
	// ErrFilterMismatch is returned when a preset is applied to a filter
	// other than the one it was saved for.
	ErrFilterMismatch = errors.New("warp: preset filter id mismatch")

	// ErrUnknownFilter is returned when a preset references an unregistered
	// filter id.
	ErrUnknownFilter = errors.New("warp: unknown filter id")
)

// DecodePreset parses a JSON preset.
func DecodePreset(data []byte) (Preset, error) {
	var p Preset
	if err := json.Unmarshal(data, &p); err != nil {
		return Preset{}, fmt.Errorf("warp: decode preset: %w", err)
	}
	if _, ok := Lookup(p.FilterID); !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownFilter, p.FilterID)
	}
	return p, nil
}

// Encode serializes the preset as JSON.
func (p Preset) Encode() ([]byte, error) {
	return json.Marshal(p)
}

// Apply resolves the preset's record against the schema of the target
// filter. A preset saved for a different filter is rejected, never
// silently applied to the wrong schema.
func (p Preset) Apply(filterID string) (Params, error) {
	if p.FilterID != filterID {
		return nil, fmt.Errorf("%w: have %q, want %q", ErrFilterMismatch, p.FilterID, filterID)
	}
	d, ok := Lookup(filterID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFilter, filterID)
	}
	return Resolve(d, p.Params), nil
}
