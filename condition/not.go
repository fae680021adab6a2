package condition

import (
	"context"
	"fmt"
	"image/color"
)

type Not struct {
	Condition Condition
}

var _ Condition = (*Not)(nil)

func (n Not) String() string {
	return fmt.Sprintf("Not(%s)", n.Condition)
}

func (n Not) Match(
	ctx context.Context,
	c color.RGBA,
) bool {
	return !n.Condition.Match(ctx, c)
}
