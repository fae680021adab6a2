package kernel

import (
	"context"
	"fmt"

	"github.com/xaionaro-go/revealframes/raster"
)

const DefaultPaddingFraction = 0.009

// Pad surrounds the raster with a uniform background border of
// floor(min(w,h) * Fraction) pixels.
type Pad struct {
	Fraction float64
}

var _ Abstract = (*Pad)(nil)

func NewPad(fraction float64) *Pad {
	return &Pad{Fraction: fraction}
}

func (p *Pad) String() string {
	return fmt.Sprintf("Pad(%g)", p.Fraction)
}

// Padding returns the border width for a w x h raster; it may be zero.
func (p *Pad) Padding(w, h int) int {
	return int(float64(min(w, h)) * p.Fraction)
}

func (p *Pad) Process(
	ctx context.Context,
	input *raster.Raster,
) (*raster.Raster, error) {
	w, h := input.Width(), input.Height()
	padding := p.Padding(w, h)
	padded := raster.New(w+padding*2, h+padding*2, raster.Background)
	return padded.Overlay(input, padding, padding), nil
}
