// Package condition provides composable per-pixel predicates; the trimmers
// use them to decide which pixels are background.
package condition

import (
	"context"
	"fmt"
	"image/color"
)

type Condition interface {
	fmt.Stringer
	Match(context.Context, color.RGBA) bool
}

// DefaultWhiteThreshold is the minimal value of every color channel for an
// opaque pixel to count as white. It is tuned for scans with off-white,
// noisy margins.
const DefaultWhiteThreshold = 100

// Background returns the classifier of "background" pixels: anything not
// fully opaque, or opaque and at least threshold bright in every channel.
func Background(threshold uint8) Condition {
	return Or{
		Translucent{},
		MinBrightness(threshold),
	}
}
