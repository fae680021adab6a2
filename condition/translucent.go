package condition

import (
	"context"
	"image/color"
)

// Translucent matches every pixel that is not fully opaque, whatever its
// color. Anti-aliased edges therefore never count as content.
type Translucent struct{}

var _ Condition = Translucent{}

func (Translucent) String() string {
	return "Translucent"
}

func (Translucent) Match(_ context.Context, c color.RGBA) bool {
	return c.A < 0xff
}
