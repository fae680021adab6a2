package kernel

import (
	"context"
	"fmt"
	"image"

	"github.com/xaionaro-go/revealframes/condition"
	"github.com/xaionaro-go/revealframes/logger"
	"github.com/xaionaro-go/revealframes/raster"
)

type TrimMode int

const (
	TrimModeUndefined = TrimMode(iota)

	// TrimModeAllSides crops to the bounding box of the content.
	TrimModeAllSides

	// TrimModeExceptRight crops the left, top and bottom margins but
	// always keeps the original right edge, so content running into the
	// right margin is never cut.
	TrimModeExceptRight
)

func (m TrimMode) String() string {
	switch m {
	case TrimModeUndefined:
		return "undefined"
	case TrimModeAllSides:
		return "all_sides"
	case TrimModeExceptRight:
		return "except_right"
	default:
		return fmt.Sprintf("unknown_mode_%d", int(m))
	}
}

// Trim removes background margins around the content of a raster.
type Trim struct {
	Mode         TrimMode
	IsBackground condition.Condition
}

var _ Abstract = (*Trim)(nil)

func NewTrim(mode TrimMode, isBackground condition.Condition) *Trim {
	return &Trim{
		Mode:         mode,
		IsBackground: isBackground,
	}
}

func (t *Trim) String() string {
	return fmt.Sprintf("Trim(%s)", t.Mode)
}

func (t *Trim) Process(
	ctx context.Context,
	input *raster.Raster,
) (*raster.Raster, error) {
	w := input.Width()
	box := ContentBounds(ctx, input, t.IsBackground)
	logger.Tracef(ctx, "%s: content bounds of %s: %s", t, input, box)

	var rect image.Rectangle
	switch t.Mode {
	case TrimModeAllSides:
		if !box.IsValid() {
			return input, nil
		}
		rect = box.Rectangle()
	case TrimModeExceptRight:
		if box.MinX >= w || box.MinY > box.MaxY {
			return input, nil
		}
		rect = image.Rect(box.MinX, box.MinY, w, box.MaxY+1)
	default:
		return nil, fmt.Errorf("unsupported trim mode: %s", t.Mode)
	}
	return input.Crop(rect), nil
}

// ContentBounds scans every pixel and returns the inclusive bounding box
// of the pixels isBackground does not match. The box is invalid if there
// are none.
func ContentBounds(
	ctx context.Context,
	r *raster.Raster,
	isBackground condition.Condition,
) raster.BoundingBox {
	w, h := r.Width(), r.Height()
	box := raster.EmptyBoundingBox(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if isBackground.Match(ctx, r.At(x, y)) {
				continue
			}
			box.Add(x, y)
		}
	}
	return box
}
