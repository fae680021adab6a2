package condition

import (
	"context"
	"fmt"
	"image/color"
)

type Static bool

var _ Condition = (Static)(false)

func (v Static) String() string {
	return fmt.Sprintf("%t", v)
}

func (v Static) Match(context.Context, color.RGBA) bool {
	return (bool)(v)
}
