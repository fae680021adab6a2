package codec

import (
	"context"
	"fmt"
	"image"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/xaionaro-go/revealframes/logger"
	"github.com/xaionaro-go/revealframes/raster"
	"golang.org/x/image/tiff"
)

const DefaultJPEGQuality = 95

// Encoder returns the imgio encoder of the format.
func Encoder(f Format, jpegQuality int) (imgio.Encoder, error) {
	switch f {
	case FormatPNG:
		return imgio.PNGEncoder(), nil
	case FormatJPEG:
		if jpegQuality <= 0 {
			jpegQuality = DefaultJPEGQuality
		}
		return imgio.JPEGEncoder(jpegQuality), nil
	case FormatBMP:
		return imgio.BMPEncoder(), nil
	case FormatTIFF:
		return func(w io.Writer, img image.Image) error {
			return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	default:
		return nil, fmt.Errorf("encoding to %s is not supported", f)
	}
}

// Encode writes the raster into path (creating or truncating it).
func Encode(
	ctx context.Context,
	path string,
	r *raster.Raster,
	f Format,
	jpegQuality int,
) (_err error) {
	logger.Tracef(ctx, "Encode(ctx, '%s', %s, %s)", path, r, f)
	defer func() { logger.Tracef(ctx, "/Encode(ctx, '%s'): %v", path, _err) }()

	enc, err := Encoder(f, jpegQuality)
	if err != nil {
		return ErrEncode{Path: path, Format: f, Err: err}
	}
	if err := imgio.Save(path, r.Image(), enc); err != nil {
		return ErrEncode{Path: path, Format: f, Err: err}
	}
	return nil
}
