// Package raster provides the immutable RGBA raster the normalization
// stages and the frame composer pass around.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/anthonynsimon/bild/clone"
	"github.com/anthonynsimon/bild/transform"
)

// Raster is a dense 8-bit RGBA pixel grid anchored at (0,0).
//
// Every method that "changes" a Raster returns a new one, the receiver
// stays untouched, so a raster may be held by several stages at once.
type Raster struct {
	img *image.RGBA
}

// New allocates a w x h raster filled with the given color.
func New(w, h int, fill color.RGBA) *Raster {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Rect, image.NewUniform(fill), image.Point{}, draw.Src)
	return &Raster{img: img}
}

// FromImage copies an arbitrary decoded image into a Raster.
func FromImage(src image.Image) *Raster {
	return fromRGBA(clone.AsRGBA(src))
}

// fromRGBA takes ownership of a freshly allocated RGBA (Stride == 4*Dx)
// and moves its origin to (0,0).
func fromRGBA(img *image.RGBA) *Raster {
	img.Rect = img.Rect.Sub(img.Rect.Min)
	return &Raster{img: img}
}

func (r *Raster) String() string {
	return fmt.Sprintf("Raster(%dx%d)", r.Width(), r.Height())
}

func (r *Raster) Width() int {
	return r.img.Rect.Dx()
}

func (r *Raster) Height() int {
	return r.img.Rect.Dy()
}

// Size returns (width, height) as a point.
func (r *Raster) Size() image.Point {
	return r.img.Rect.Size()
}

func (r *Raster) Bounds() image.Rectangle {
	return r.img.Rect
}

// At returns the pixel at (x,y); out-of-bounds coordinates yield the zero
// color.
func (r *Raster) At(x, y int) color.RGBA {
	return r.img.RGBAAt(x, y)
}

// Image exposes the raster as a read-only image.Image for encoders.
func (r *Raster) Image() image.Image {
	return r.img
}

// Pix returns a copy of the row-major RGBA buffer.
func (r *Raster) Pix() []byte {
	return append([]byte(nil), r.img.Pix...)
}

func (r *Raster) Clone() *Raster {
	return fromRGBA(clone.AsRGBA(r.img))
}

// Crop returns the part of the raster inside rect. The rectangle is
// intersected with the bounds first, an empty intersection gives a 0x0
// raster.
func (r *Raster) Crop(rect image.Rectangle) *Raster {
	rect = rect.Intersect(r.img.Rect)
	if rect.Empty() {
		return New(0, 0, color.RGBA{})
	}
	return fromRGBA(transform.Crop(r.img, rect))
}

// Overlay returns a copy of r with src alpha-composited on top of it with
// its top-left corner at (x,y). Whatever falls outside of r is dropped.
func (r *Raster) Overlay(src *Raster, x, y int) *Raster {
	dst := r.Clone()
	at := image.Pt(x, y)
	draw.Draw(dst.img, src.img.Rect.Add(at), src.img, image.Point{}, draw.Over)
	return dst
}

// FillRect returns a copy of r with rect (clipped to the bounds) replaced
// by c.
func (r *Raster) FillRect(rect image.Rectangle, c color.RGBA) *Raster {
	dst := r.Clone()
	draw.Draw(dst.img, rect.Intersect(dst.img.Rect), image.NewUniform(c), image.Point{}, draw.Src)
	return dst
}

// Equal reports whether both rasters have the same size and pixels.
func (r *Raster) Equal(other *Raster) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.Size() != other.Size() {
		return false
	}
	w, h := r.Width(), r.Height()
	for y := 0; y < h; y++ {
		a := r.img.Pix[y*r.img.Stride : y*r.img.Stride+w*4]
		b := other.img.Pix[y*other.img.Stride : y*other.img.Stride+w*4]
		if string(a) != string(b) {
			return false
		}
	}
	return true
}
