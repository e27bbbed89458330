// Package identity models the local actor: a stable opaque identifier, a
// mutable display name, and a color derived purely from that name. Identity
// has no server-side record of its own - it only appears embedded inside the
// slots it has claimed.
package identity

import (
	"fmt"
	"unicode/utf16"
)

// Fixed saturation and lightness for derived colors. Only the hue varies, so
// every collaborator renders a given name identically without coordination.
const (
	colorSaturation = 70
	colorLightness  = 50
)

// Identity is the current actor. The zero value is a read-only identity:
// it can observe the board but never claim.
type Identity struct {
	ID   string // Stable opaque identifier, owned by the session bootstrap
	Name string // Display name chosen by the user, editable at any time
}

// Ready reports whether the identity may issue claims: both the identifier
// and a display name must be present.
func (i Identity) Ready() bool {
	return i.ID != "" && i.Name != ""
}

// Color returns the display color for this identity. It is recomputed from
// the name on every call rather than cached, so renaming is always
// immediately consistent.
func (i Identity) Color() string {
	return ColorFor(i.Name)
}

// WithName returns a copy of the identity with a new display name.
func (i Identity) WithName(name string) Identity {
	i.Name = name
	return i
}

// ColorFor derives a display color from a name. The name's UTF-16 code units
// are folded left to right into a 32-bit signed hash (h = c + (h<<5) - h),
// and the hash taken mod 360 selects a hue at fixed saturation and
// lightness. Deterministic across processes; collisions between distinct
// names are expected and fine - this is a display aid, not an identity
// scheme.
func ColorFor(name string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = int32(c) + (h << 5) - h
	}

	hue := int(h % 360)
	if hue < 0 {
		hue += 360
	}
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hue, colorSaturation, colorLightness)
}
