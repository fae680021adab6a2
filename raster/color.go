package raster

import (
	"image/color"
)

// Background is opaque white: the fill of every new canvas region and the
// reference color the trimmers strip away.
var Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}
