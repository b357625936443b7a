// Package raycast casts rays from the player across a tile grid and turns the
// hits into the vertical wall columns of a first-person view.
package raycast

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownProfile is returned when a profile name has no preset.
var ErrUnknownProfile = errors.New("unknown graphics profile")

// Profile trades ray count and march depth for speed.
type Profile struct {
	Name     string `yaml:"name"`
	RayCount int    `yaml:"ray_count"`
	MaxDepth int    `yaml:"max_depth"`
}

// Built-in profiles.
var (
	ProfileLow    = Profile{Name: "low", RayCount: 30, MaxDepth: 200}
	ProfileMedium = Profile{Name: "medium", RayCount: 60, MaxDepth: 400}
	ProfileHigh   = Profile{Name: "high", RayCount: 120, MaxDepth: 800}
)

// Presets returns the built-in profiles from cheapest to most detailed.
func Presets() []Profile {
	return []Profile{ProfileLow, ProfileMedium, ProfileHigh}
}

// Find returns the profile called name from profiles.
func Find(profiles []Profile, name string) (Profile, error) {
	for _, p := range profiles {
		if strings.EqualFold(p.Name, name) {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, name)
}

// Validate checks that the profile can be rendered on a viewport of the
// given width.
func (p Profile) Validate(viewportWidth int) error {
	if p.RayCount <= 0 {
		return fmt.Errorf("profile %s: ray_count must be positive, got %d", p.Name, p.RayCount)
	}
	if p.MaxDepth <= 0 {
		return fmt.Errorf("profile %s: max_depth must be positive, got %d", p.Name, p.MaxDepth)
	}
	if p.RayCount > viewportWidth {
		return fmt.Errorf("profile %s: %d rays do not fit a %dpx viewport", p.Name, p.RayCount, viewportWidth)
	}
	return nil
}

// String returns "name (rays/depth)".
func (p Profile) String() string {
	return fmt.Sprintf("%s (%d/%d)", p.Name, p.RayCount, p.MaxDepth)
}
