// Package blend implements the filter blend modes on premultiplied RGBA.
//
// All operations take premultiplied alpha values in the range 0-255; the
// top layer is the source and the bottom layer the backdrop.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - SVG 1.1 feBlend: https://www.w3.org/TR/SVG11/filters.html#feBlendElement
package blend

import (
	"fmt"
	"strings"
)

// Mode selects a blend formula.
type Mode uint8

const (
	Normal     Mode = iota // Result: A + B*(1-Qa)
	Multiply               // Result: A*(1-Qb) + B*(1-Qa) + A*B
	Screen                 // Result: A + B - A*B
	Darken                 // Result: min(A + B*(1-Qa), B + A*(1-Qb))
	Lighten                // Result: max(A + B*(1-Qa), B + A*(1-Qb))
	Difference             // Result: A + B - 2*min(A*Qb, B*Qa)
	Exclusion              // Result: A + B - 2*A*B
)

var modeNames = [...]string{
	Normal:     "normal",
	Multiply:   "multiply",
	Screen:     "screen",
	Darken:     "darken",
	Lighten:    "lighten",
	Difference: "difference",
	Exclusion:  "exclusion",
}

// String returns the CSS keyword of the mode.
func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", uint8(m))
}

// ParseMode parses a CSS blend mode keyword.
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if name == s {
			return Mode(i), nil
		}
	}
	return Normal, fmt.Errorf("blend: unknown mode %q", s)
}
