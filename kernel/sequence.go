package kernel

import (
	"context"
	"fmt"
	"strings"

	"github.com/xaionaro-go/revealframes/logger"
	"github.com/xaionaro-go/revealframes/raster"
)

// Sequence runs the kernels one after another, feeding the output of each
// one into the next.
type Sequence []Abstract

var _ Abstract = (Sequence)(nil)

func NewSequence(kernels ...Abstract) Sequence {
	return Sequence(kernels)
}

func (s Sequence) String() string {
	var result []string
	for _, k := range s {
		result = append(result, k.String())
	}
	return fmt.Sprintf("Sequence(%s)", strings.Join(result, " -> "))
}

func (s Sequence) Process(
	ctx context.Context,
	input *raster.Raster,
) (_ret *raster.Raster, _err error) {
	logger.Tracef(ctx, "Process: %s", input)
	defer func() { logger.Tracef(ctx, "/Process: %s: %v", _ret, _err) }()

	cur := input
	for idx, k := range s {
		out, err := k.Process(ctx, cur)
		if err != nil {
			return nil, ErrStage{Index: idx, Kernel: k.String(), Err: err}
		}
		logger.Debugf(ctx, "%s: %s -> %s", k, cur, out)
		cur = out
	}
	return cur, nil
}
