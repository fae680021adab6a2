package codec

import (
	"context"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/xaionaro-go/revealframes/logger"
	"github.com/xaionaro-go/revealframes/raster"

	// register the decoders image.Decode does not know by itself
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode reads an image file of any supported format into a Raster.
func Decode(
	ctx context.Context,
	path string,
) (_ret *raster.Raster, _err error) {
	logger.Tracef(ctx, "Decode(ctx, '%s')", path)
	defer func() { logger.Tracef(ctx, "/Decode(ctx, '%s'): %v", path, _err) }()

	img, err := imgio.Open(path)
	if err != nil {
		return nil, ErrDecode{Path: path, Err: err}
	}
	r := raster.FromImage(img)
	logger.Debugf(ctx, "decoded '%s': %s", path, r)
	return r, nil
}
