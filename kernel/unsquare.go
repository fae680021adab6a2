package kernel

import (
	"context"
	"fmt"
	"image"

	"github.com/xaionaro-go/revealframes/raster"
)

const (
	DefaultUnsquareRatio    = 1.6
	DefaultSecondHalfOffset = 12
)

// Unsquare turns a page with two stacked halves into one wide strip: the
// canvas is Ratio times wider and half as tall, the top half stays where
// it was and the left half of the bottom part (starting SecondHalfOffset
// rows below the middle) is placed at x = original width.
//
// The geometry is tuned for one specific source layout, it is not a
// general purpose reshaper.
type Unsquare struct {
	Ratio            float64
	SecondHalfOffset int
}

var _ Abstract = (*Unsquare)(nil)

func NewUnsquare(ratio float64, secondHalfOffset int) *Unsquare {
	return &Unsquare{
		Ratio:            ratio,
		SecondHalfOffset: secondHalfOffset,
	}
}

func (u *Unsquare) String() string {
	return fmt.Sprintf("Unsquare(ratio:%g, offset:%d)", u.Ratio, u.SecondHalfOffset)
}

// OutputSize returns the canvas size for a w x h input.
func (u *Unsquare) OutputSize(w, h int) image.Point {
	return image.Pt(int(float64(w)*u.Ratio), h/2)
}

func (u *Unsquare) Process(
	ctx context.Context,
	input *raster.Raster,
) (*raster.Raster, error) {
	w, h := input.Width(), input.Height()
	size := u.OutputSize(w, h)
	if size.X <= 0 || size.Y <= 0 {
		return nil, ErrInvalidDimensions{Kernel: u.String(), Size: input.Size()}
	}

	long := raster.New(size.X, size.Y, raster.Background)
	long = long.Overlay(input, 0, 0)

	secondHalf := input.Crop(image.Rect(0, h/2+u.SecondHalfOffset, w/2, h))
	long = long.Overlay(secondHalf, w, 0)
	return long, nil
}
