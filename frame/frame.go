// Package frame composes the normalized rasters of one identifier into the
// ordered "reveal" frame sequence a video is later assembled from.
package frame

import (
	"fmt"
	"image"

	"github.com/xaionaro-go/revealframes/raster"
)

// Frame is one output image and its position in the video. Frames with a
// lower Index come earlier.
type Frame struct {
	Index  int
	Label  string
	Raster *raster.Raster

	// Mask is the area painted over with the background color; empty for
	// fully revealed frames.
	Mask image.Rectangle
}

func (f Frame) String() string {
	return fmt.Sprintf("#%d %s %s", f.Index, f.Label, f.Raster)
}

// Sequence is the frames in write order.
type Sequence []Frame

func (s Sequence) Indices() []int {
	result := make([]int, 0, len(s))
	for _, f := range s {
		result = append(result, f.Index)
	}
	return result
}

// Collisions returns the indices used by more than one frame, in order of
// their first repeat. Writing such a sequence leaves only the last frame of
// each colliding index on disk.
func (s Sequence) Collisions() []int {
	seen := map[int]int{}
	var result []int
	for _, f := range s {
		seen[f.Index]++
		if seen[f.Index] == 2 {
			result = append(result, f.Index)
		}
	}
	return result
}

// Name returns the file name of a frame: "{identifier}-{index}.{ext}".
func Name(identifier string, index int, ext string) string {
	return fmt.Sprintf("%s-%d.%s", identifier, index, ext)
}
