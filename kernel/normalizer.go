package kernel

import (
	"github.com/xaionaro-go/revealframes/condition"
)

// NormalizerConfig holds the layout-specific constants of the
// normalization; the defaults are tuned for the two-halves page layout the
// tool was made for.
type NormalizerConfig struct {
	WhiteThreshold   uint8   `yaml:"white_threshold"`
	UnsquareRatio    float64 `yaml:"unsquare_ratio"`
	SecondHalfOffset int     `yaml:"second_half_offset"`
	PaddingFraction  float64 `yaml:"padding_fraction"`
}

func DefaultNormalizerConfig() NormalizerConfig {
	return NormalizerConfig{
		WhiteThreshold:   condition.DefaultWhiteThreshold,
		UnsquareRatio:    DefaultUnsquareRatio,
		SecondHalfOffset: DefaultSecondHalfOffset,
		PaddingFraction:  DefaultPaddingFraction,
	}
}

// NewNormalizer returns the fixed sequence every source raster goes
// through before frame composition:
// trim-except-right -> unsquare -> trim-all-sides -> pad.
func NewNormalizer(cfg NormalizerConfig) Sequence {
	isBackground := condition.Background(cfg.WhiteThreshold)
	return NewSequence(
		NewTrim(TrimModeExceptRight, isBackground),
		NewUnsquare(cfg.UnsquareRatio, cfg.SecondHalfOffset),
		NewTrim(TrimModeAllSides, isBackground),
		NewPad(cfg.PaddingFraction),
	)
}
