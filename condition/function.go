package condition

import (
	"context"
	"fmt"
	"image/color"
)

type Function func(context.Context, color.RGBA) bool

var _ Condition = (Function)(nil)

func (fn Function) String() string {
	return fmt.Sprintf("<custom_function:%p>", fn)
}

func (fn Function) Match(ctx context.Context, c color.RGBA) bool {
	return fn(ctx, c)
}
