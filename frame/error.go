package frame

import (
	"fmt"
	"image"
)

// ErrShapeMismatch is returned when the two rasters of one identifier
// differ in size after normalization, so the masks of one would not line
// up with the other.
type ErrShapeMismatch struct {
	Esperanto image.Point
	English   image.Point
}

func (e ErrShapeMismatch) Error() string {
	return fmt.Sprintf(
		"the normalized images differ in size: esperanto is %dx%d, english is %dx%d",
		e.Esperanto.X, e.Esperanto.Y, e.English.X, e.English.Y,
	)
}
