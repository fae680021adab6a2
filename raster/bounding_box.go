package raster

import (
	"fmt"
	"image"
)

// BoundingBox is an inclusive pixel box. A box with MinX > MaxX or
// MinY > MaxY is empty.
type BoundingBox struct {
	MinX, MinY int
	MaxX, MaxY int
}

// EmptyBoundingBox returns the starting point of a content scan over a
// w x h raster: any pixel found shrinks it into a valid box.
func EmptyBoundingBox(w, h int) BoundingBox {
	return BoundingBox{MinX: w, MinY: h, MaxX: 0, MaxY: 0}
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("(%d,%d)-(%d,%d)", b.MinX, b.MinY, b.MaxX, b.MaxY)
}

func (b BoundingBox) IsValid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// Add grows the box to include (x,y).
func (b *BoundingBox) Add(x, y int) {
	b.MinX = min(b.MinX, x)
	b.MaxX = max(b.MaxX, x)
	b.MinY = min(b.MinY, y)
	b.MaxY = max(b.MaxY, y)
}

// Rectangle converts the inclusive box into a half-open image.Rectangle.
func (b BoundingBox) Rectangle() image.Rectangle {
	if !b.IsValid() {
		return image.Rectangle{}
	}
	return image.Rect(b.MinX, b.MinY, b.MaxX+1, b.MaxY+1)
}
