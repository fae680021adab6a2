package kernel

import (
	"fmt"
	"image"
)

type ErrInvalidDimensions struct {
	Kernel string
	Size   image.Point
}

func (e ErrInvalidDimensions) Error() string {
	return fmt.Sprintf("%s cannot process a %dx%d raster", e.Kernel, e.Size.X, e.Size.Y)
}

type ErrStage struct {
	Index  int
	Kernel string
	Err    error
}

func (e ErrStage) Error() string {
	return fmt.Sprintf("stage #%d (%s) failed: %v", e.Index, e.Kernel, e.Err)
}

func (e ErrStage) Unwrap() error {
	return e.Err
}
