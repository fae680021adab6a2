// Package kernel contains the raster transform stages of the
// normalization pipeline and the Sequence that chains them.
package kernel

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/revealframes/raster"
)

// Abstract is a single transform stage.
//
// Process must not modify its input: it either returns the input itself
// (identity) or a newly allocated raster.
type Abstract interface {
	fmt.Stringer
	Process(ctx context.Context, input *raster.Raster) (*raster.Raster, error)
}
