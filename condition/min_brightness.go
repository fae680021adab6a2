package condition

import (
	"context"
	"fmt"
	"image/color"
)

// MinBrightness matches pixels with every one of R, G and B at or above
// the threshold. Alpha is not looked at.
type MinBrightness uint8

var _ Condition = MinBrightness(0)

func (t MinBrightness) String() string {
	return fmt.Sprintf("MinBrightness(%d)", uint8(t))
}

func (t MinBrightness) Match(_ context.Context, c color.RGBA) bool {
	v := uint8(t)
	return c.R >= v && c.G >= v && c.B >= v
}
