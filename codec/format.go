// Package codec reads and writes rasters from/to image files.
package codec

import (
	"fmt"
	"strings"
)

type Format int

const (
	FormatUndefined = Format(iota)
	FormatPNG
	FormatJPEG
	FormatBMP
	FormatTIFF
	FormatWebP
	EndOfFormat
)

var _ interface {
	fmt.Stringer
	Set(string) error
	Type() string
} = (*Format)(nil)

func (f Format) String() string {
	switch f {
	case FormatUndefined:
		return "undefined"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	case FormatWebP:
		return "webp"
	default:
		return fmt.Sprintf("unknown_format_%d", int(f))
	}
}

// Extension is the file name suffix (without the dot).
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return "jpg"
	default:
		return f.String()
	}
}

func (f Format) MIMEType() string {
	switch f {
	case FormatPNG:
		return "image/png"
	case FormatJPEG:
		return "image/jpeg"
	case FormatBMP:
		return "image/bmp"
	case FormatTIFF:
		return "image/tiff"
	case FormatWebP:
		return "image/webp"
	}
	return ""
}

// CanEncode reports whether files of this format can be written; WebP is
// decode-only.
func (f Format) CanEncode() bool {
	switch f {
	case FormatPNG, FormatJPEG, FormatBMP, FormatTIFF:
		return true
	}
	return false
}

func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(s), "."))
	switch s {
	case "jpg":
		return FormatJPEG, nil
	case "tif":
		return FormatTIFF, nil
	}
	for f := FormatUndefined + 1; f < EndOfFormat; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return FormatUndefined, fmt.Errorf("unknown image format '%s'", s)
}

// Set implements pflag.Value.
func (f *Format) Set(s string) error {
	v, err := ParseFormat(s)
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// Type implements pflag.Value.
func (f *Format) Type() string {
	return "format"
}

func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(b []byte) error {
	return f.Set(string(b))
}
