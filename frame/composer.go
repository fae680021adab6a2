package frame

import (
	"context"
	"fmt"
	"image"

	"github.com/xaionaro-go/revealframes/logger"
	"github.com/xaionaro-go/revealframes/raster"
)

const (
	DefaultPanels     = 3
	DefaultHoldFrames = 3

	// DefaultEnglishFrameIndex reuses the index of the last hold frame, so
	// by default the english frame replaces it on disk. Existing video
	// assembly scripts rely on this; set it to Panels-1+HoldFrames to keep
	// both.
	DefaultEnglishFrameIndex = DefaultPanels - 1 + DefaultHoldFrames - 1
)

type ComposerConfig struct {
	// Panels is the amount of columns the esperanto image is revealed in;
	// Panels-1 partially masked frames are produced.
	Panels int `yaml:"panels"`

	// HoldFrames is how many times the fully revealed image repeats.
	HoldFrames int `yaml:"hold_frames"`

	EnglishFrameIndex int `yaml:"english_frame_index"`
}

func DefaultComposerConfig() ComposerConfig {
	return ComposerConfig{
		Panels:            DefaultPanels,
		HoldFrames:        DefaultHoldFrames,
		EnglishFrameIndex: DefaultEnglishFrameIndex,
	}
}

func (cfg ComposerConfig) Validate() error {
	if cfg.Panels < 1 {
		return fmt.Errorf("panels must be at least 1, got %d", cfg.Panels)
	}
	if cfg.HoldFrames < 0 {
		return fmt.Errorf("hold_frames must not be negative, got %d", cfg.HoldFrames)
	}
	if cfg.EnglishFrameIndex < 0 {
		return fmt.Errorf("english_frame_index must not be negative, got %d", cfg.EnglishFrameIndex)
	}
	return nil
}

type Composer struct {
	Config ComposerConfig
}

func NewComposer(cfg ComposerConfig) *Composer {
	return &Composer{Config: cfg}
}

func (c *Composer) String() string {
	return fmt.Sprintf("Composer(panels:%d, hold:%d, english:#%d)",
		c.Config.Panels, c.Config.HoldFrames, c.Config.EnglishFrameIndex)
}

// Compose builds the frame sequence of one identifier:
//
//   - Panels-1 reveal frames: esperanto with everything right of
//     W*k/Panels painted over;
//   - HoldFrames copies of the untouched esperanto image;
//   - the english image at Config.EnglishFrameIndex.
func (c *Composer) Compose(
	ctx context.Context,
	esperanto *raster.Raster,
	english *raster.Raster,
) (_ret Sequence, _err error) {
	logger.Tracef(ctx, "Compose: %s, %s", esperanto, english)
	defer func() { logger.Tracef(ctx, "/Compose: %v %v", _ret.Indices(), _err) }()

	if err := c.Config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid composer config: %w", err)
	}
	if esperanto.Size() != english.Size() {
		return nil, ErrShapeMismatch{
			Esperanto: esperanto.Size(),
			English:   english.Size(),
		}
	}

	w, h := esperanto.Width(), esperanto.Height()
	panels := c.Config.Panels
	var result Sequence
	for k := 1; k < panels; k++ {
		x := w * k / panels
		mask := image.Rect(x, 0, x+w, h)
		result = append(result, Frame{
			Index:  k - 1,
			Label:  panelsLabel(k),
			Raster: esperanto.FillRect(mask, raster.Background),
			Mask:   mask.Intersect(esperanto.Bounds()),
		})
	}
	for i := 0; i < c.Config.HoldFrames; i++ {
		result = append(result, Frame{
			Index:  panels - 1 + i,
			Label:  panelsLabel(panels),
			Raster: esperanto,
		})
	}
	result = append(result, Frame{
		Index:  c.Config.EnglishFrameIndex,
		Label:  "english",
		Raster: english,
	})
	return result, nil
}

func panelsLabel(n int) string {
	if n == 1 {
		return "1 panel"
	}
	return fmt.Sprintf("%d panels", n)
}
