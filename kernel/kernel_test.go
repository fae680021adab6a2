package kernel

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/facebookincubator/go-belt"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/revealframes/condition"
	"github.com/xaionaro-go/revealframes/logger"
	"github.com/xaionaro-go/revealframes/raster"
)

var (
	black = color.RGBA{A: 255}
	red   = color.RGBA{R: 255, A: 255}
)

func testCtx(t *testing.T) context.Context {
	ctx := logger.CtxWithNew(context.Background(), logger.LevelTrace)
	t.Cleanup(func() { belt.Flush(ctx) })
	return ctx
}

func isBackground() condition.Condition {
	return condition.Background(condition.DefaultWhiteThreshold)
}

func TestTrimAllSides(t *testing.T) {
	ctx := testCtx(t)
	in := raster.New(10, 10, raster.Background).
		FillRect(image.Rect(2, 3, 5, 6), black)

	out, err := NewTrim(TrimModeAllSides, isBackground()).Process(ctx, in)
	require.NoError(t, err)
	require.Equal(t, image.Pt(3, 3), out.Size())
	require.True(t, out.Equal(raster.New(3, 3, black)))
	require.Equal(t, raster.Background, in.At(0, 0), "input must stay untouched")
	require.Equal(t, image.Pt(10, 10), in.Size())
}

func TestTrimIsIdempotent(t *testing.T) {
	ctx := testCtx(t)
	trim := NewTrim(TrimModeAllSides, isBackground())
	in := raster.New(20, 15, raster.Background).
		FillRect(image.Rect(4, 2, 9, 12), black).
		FillRect(image.Rect(6, 5, 7, 6), raster.Background).
		FillRect(image.Rect(12, 7, 13, 8), red)

	once, err := trim.Process(ctx, in)
	require.NoError(t, err)
	require.Equal(t, image.Pt(9, 10), once.Size())

	twice, err := trim.Process(ctx, once)
	require.NoError(t, err)
	require.True(t, twice.Equal(once))
}

func TestTrimIdentityOnEmptyContent(t *testing.T) {
	ctx := testCtx(t)
	for _, tc := range []struct {
		name string
		in   *raster.Raster
	}{
		{"white", raster.New(100, 100, raster.Background)},
		{"transparent", raster.New(7, 3, color.RGBA{})},
		{"bright_gray", raster.New(5, 5, color.RGBA{R: 100, G: 120, B: 200, A: 255})},
		{"zero", raster.New(0, 0, raster.Background)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			for _, mode := range []TrimMode{TrimModeAllSides, TrimModeExceptRight} {
				out, err := NewTrim(mode, isBackground()).Process(ctx, tc.in)
				require.NoError(t, err)
				require.True(t, out.Equal(tc.in), mode.String())
			}
		})
	}
}

func TestTrimExceptRightKeepsRightEdge(t *testing.T) {
	ctx := testCtx(t)
	in := raster.New(10, 10, raster.Background).
		FillRect(image.Rect(2, 3, 5, 6), black)

	out, err := NewTrim(TrimModeExceptRight, isBackground()).Process(ctx, in)
	require.NoError(t, err)
	require.Equal(t, image.Pt(8, 3), out.Size())
	require.Equal(t, black, out.At(0, 0))
	require.Equal(t, raster.Background, out.At(7, 2))
}

func TestTrimIgnoresTranslucentPixels(t *testing.T) {
	ctx := testCtx(t)
	in := raster.New(6, 6, raster.Background).
		FillRect(image.Rect(0, 0, 6, 1), color.RGBA{A: 128}).
		FillRect(image.Rect(3, 3, 4, 4), black)

	out, err := NewTrim(TrimModeAllSides, isBackground()).Process(ctx, in)
	require.NoError(t, err)
	require.Equal(t, image.Pt(1, 1), out.Size())
}

func TestTrimUnsupportedMode(t *testing.T) {
	_, err := NewTrim(TrimModeUndefined, isBackground()).Process(testCtx(t), raster.New(1, 1, black))
	require.Error(t, err)
}

func TestUnsquareDimensions(t *testing.T) {
	ctx := testCtx(t)
	u := NewUnsquare(DefaultUnsquareRatio, DefaultSecondHalfOffset)
	for _, tc := range []struct {
		in       image.Point
		expected image.Point
	}{
		{image.Pt(100, 100), image.Pt(160, 50)},
		{image.Pt(101, 51), image.Pt(161, 25)},
		{image.Pt(5, 3), image.Pt(8, 1)},
		{image.Pt(640, 480), image.Pt(1024, 240)},
	} {
		out, err := u.Process(ctx, raster.New(tc.in.X, tc.in.Y, black))
		require.NoError(t, err)
		require.Equal(t, tc.expected, out.Size(), "%v", tc.in)
		require.Equal(t, tc.expected, u.OutputSize(tc.in.X, tc.in.Y))
	}
}

func TestUnsquareLayout(t *testing.T) {
	ctx := testCtx(t)
	// 8x20 page: top half black, bottom half red below a 2px gap.
	in := raster.New(8, 20, raster.Background).
		FillRect(image.Rect(0, 0, 8, 10), black).
		FillRect(image.Rect(0, 12, 8, 20), red)

	out, err := NewUnsquare(2, 2).Process(ctx, in)
	require.NoError(t, err)
	require.Equal(t, image.Pt(16, 10), out.Size())

	require.Equal(t, black, out.At(0, 0))
	require.Equal(t, black, out.At(7, 9))
	// second half: x in [0,4) of rows [12,20) lands at (8,0)
	require.Equal(t, red, out.At(8, 0))
	require.Equal(t, red, out.At(11, 7))
	require.Equal(t, raster.Background, out.At(12, 0))
	require.Equal(t, raster.Background, out.At(8, 8))
	require.Equal(t, raster.Background, out.At(15, 9))
}

func TestUnsquareInvalidDimensions(t *testing.T) {
	_, err := NewUnsquare(DefaultUnsquareRatio, DefaultSecondHalfOffset).Process(testCtx(t), raster.New(4, 1, black))
	require.ErrorAs(t, err, &ErrInvalidDimensions{})
}

func TestPadIsInvertible(t *testing.T) {
	ctx := testCtx(t)
	p := NewPad(DefaultPaddingFraction)
	in := raster.New(1000, 500, raster.Background).
		FillRect(image.Rect(0, 0, 1000, 1), black).
		FillRect(image.Rect(999, 0, 1000, 500), red)

	padding := p.Padding(1000, 500)
	require.Equal(t, 4, padding)

	out, err := p.Process(ctx, in)
	require.NoError(t, err)
	require.Equal(t, image.Pt(1008, 508), out.Size())
	require.Equal(t, raster.Background, out.At(0, 0))
	require.Equal(t, raster.Background, out.At(1007, 507))

	restored := out.Crop(image.Rect(padding, padding, out.Width()-padding, out.Height()-padding))
	require.True(t, restored.Equal(in))
}

func TestPadCanBeNoop(t *testing.T) {
	in := raster.New(160, 50, black)
	out, err := NewPad(DefaultPaddingFraction).Process(testCtx(t), in)
	require.NoError(t, err)
	require.True(t, out.Equal(in))
}

func TestNormalizerAllWhite(t *testing.T) {
	ctx := testCtx(t)
	in := raster.New(100, 100, raster.Background)

	out, err := NewNormalizer(DefaultNormalizerConfig()).Process(ctx, in)
	require.NoError(t, err)
	require.Equal(t, image.Pt(160, 50), out.Size())
	require.True(t, out.Equal(raster.New(160, 50, raster.Background)))
}

func TestNormalizerPage(t *testing.T) {
	ctx := testCtx(t)
	// a 1000x1000 page with a margin, content in both halves
	in := raster.New(1200, 1200, raster.Background).
		FillRect(image.Rect(100, 100, 1100, 590), black).
		FillRect(image.Rect(100, 612, 1100, 1100), red)

	out, err := NewNormalizer(DefaultNormalizerConfig()).Process(ctx, in)
	require.NoError(t, err)

	// trim-except-right: 1100x1000 starting at (100,100)
	// unsquare: 1760x500, top content 1000 wide, second half 550 wide at x=1100
	// trim-all: content spans x [0,1650), y [0,490) -> 1650x490
	// pad: floor(490*0.009) = 4
	require.Equal(t, image.Pt(1658, 498), out.Size())
	require.Equal(t, raster.Background, out.At(0, 0))
	require.Equal(t, black, out.At(4, 4))
	require.Equal(t, red, out.At(4+1100, 4))
	require.Equal(t, raster.Background, out.At(4+1000, 4))
}

type recordingKernel struct {
	Name  string
	Calls *[]string
	Err   error
}

func (k *recordingKernel) String() string { return k.Name }

func (k *recordingKernel) Process(ctx context.Context, in *raster.Raster) (*raster.Raster, error) {
	*k.Calls = append(*k.Calls, k.Name)
	if k.Err != nil {
		return nil, k.Err
	}
	return in.Clone(), nil
}

func TestSequence(t *testing.T) {
	ctx := testCtx(t)
	var calls []string
	s := NewSequence(
		&recordingKernel{Name: "a", Calls: &calls},
		&recordingKernel{Name: "b", Calls: &calls},
	)
	in := raster.New(2, 2, black)
	out, err := s.Process(ctx, in)
	require.NoError(t, err)
	require.True(t, out.Equal(in))
	require.Equal(t, []string{"a", "b"}, calls)
	require.Equal(t, "Sequence(a -> b)", s.String())

	out, err = NewSequence().Process(ctx, in)
	require.NoError(t, err)
	require.Same(t, in, out)
}

func TestSequenceStopsOnError(t *testing.T) {
	var calls []string
	errBoom := ErrInvalidDimensions{Kernel: "boom"}
	s := NewSequence(
		&recordingKernel{Name: "a", Calls: &calls, Err: errBoom},
		&recordingKernel{Name: "b", Calls: &calls},
	)
	_, err := s.Process(testCtx(t), raster.New(1, 1, black))
	require.ErrorIs(t, err, errBoom)
	var stageErr ErrStage
	require.ErrorAs(t, err, &stageErr)
	require.Equal(t, 0, stageErr.Index)
	require.Equal(t, []string{"a"}, calls)
}
