// Package revealframes turns pairs of page scans into numbered "reveal"
// frame sequences for video assembly.
package revealframes

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/pkg/field"
	"github.com/xaionaro-go/revealframes/codec"
	"github.com/xaionaro-go/revealframes/config"
	"github.com/xaionaro-go/revealframes/frame"
	"github.com/xaionaro-go/revealframes/kernel"
	"github.com/xaionaro-go/revealframes/logger"
	"github.com/xaionaro-go/revealframes/raster"
	"github.com/xaionaro-go/revealframes/types"
)

// Batch processes the configured identifiers one by one. The first error
// aborts the whole run.
type Batch struct {
	Config     config.Config
	Normalizer kernel.Abstract
	Composer   *frame.Composer
	Counters   *types.Counters
}

func New(cfg config.Config) (*Batch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Batch{
		Config:     cfg,
		Normalizer: kernel.NewNormalizer(cfg.Normalizer),
		Composer:   frame.NewComposer(cfg.Frames),
		Counters:   types.NewCounters(),
	}, nil
}

func (b *Batch) GetStats() types.Statistics {
	return b.Counters.ToStats()
}

// Run checks the inputs, recreates the output directory and writes the
// frames of every identifier in the configured order.
func (b *Batch) Run(ctx context.Context) (_err error) {
	logger.Debugf(ctx, "Run: %d identifiers", len(b.Config.Identifiers))
	defer func() { logger.Debugf(ctx, "/Run: %v", _err) }()

	if err := b.checkInputs(); err != nil {
		return err
	}
	if err := recreateDir(ctx, b.Config.OutputDir); err != nil {
		return err
	}

	for _, id := range b.Config.Identifiers {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := b.processIdentifier(ctx, id); err != nil {
			return err
		}
	}

	logger.Infof(ctx, "done: %s", b.GetStats())
	return nil
}

func (b *Batch) checkInputs() error {
	if err := checkDir(b.Config.InputDir); err != nil {
		return ErrMissingInput{Path: b.Config.InputDir, Err: err}
	}
	for _, id := range b.Config.Identifiers {
		folder := filepath.Join(b.Config.InputDir, id)
		if err := checkDir(folder); err != nil {
			return ErrMissingInput{Identifier: id, Path: folder, Err: err}
		}
	}
	return nil
}

func (b *Batch) processIdentifier(
	ctx context.Context,
	id string,
) error {
	ctx = belt.WithFields(ctx, field.Map[string]{"identifier": id})
	logger.Infof(ctx, "%s", id)

	esperanto, err := b.loadNormalized(ctx, id, b.Config.Sources.Esperanto)
	if err != nil {
		return err
	}
	english, err := b.loadNormalized(ctx, id, b.Config.Sources.English)
	if err != nil {
		return err
	}

	frames, err := b.Composer.Compose(ctx, esperanto, english)
	if err != nil {
		return ErrIdentifier{Identifier: id, Op: "compose the frames", Err: err}
	}
	if collisions := frames.Collisions(); len(collisions) > 0 {
		logger.Warnf(ctx, "frame indices %v are used more than once, only the last frame of each is kept", collisions)
	}

	written := map[int]struct{}{}
	var label string
	for _, f := range frames {
		if f.Label != label {
			label = f.Label
			logger.Infof(ctx, "    %s", label)
		}
		if _, ok := written[f.Index]; ok {
			b.Counters.FramesOverwritten.Inc()
		}
		if err := b.writeFrame(ctx, id, f); err != nil {
			return err
		}
		written[f.Index] = struct{}{}
	}
	b.Counters.Identifiers.Inc()
	return nil
}

func (b *Batch) loadNormalized(
	ctx context.Context,
	id string,
	name string,
) (*raster.Raster, error) {
	path := b.Config.SourcePath(id, name)
	src, err := codec.Decode(ctx, path)
	if err != nil {
		return nil, ErrIdentifier{Identifier: id, Op: "open the " + name + " image", Err: err}
	}
	b.Counters.BytesRead.Add(fileSize(path))

	normalized, err := b.Normalizer.Process(ctx, src)
	if err != nil {
		return nil, ErrIdentifier{Identifier: id, Op: "normalize the " + name + " image", Err: err}
	}
	logger.Debugf(ctx, "%s: %s -> %s", name, src, normalized)
	return normalized, nil
}

func (b *Batch) writeFrame(
	ctx context.Context,
	id string,
	f frame.Frame,
) error {
	path := b.Config.FramePath(id, f.Index)
	if err := codec.Encode(ctx, path, f.Raster, b.Config.OutputFormat, b.Config.JPEGQuality); err != nil {
		return ErrIdentifier{Identifier: id, Op: fmt.Sprintf("save frame #%d", f.Index), Err: err}
	}
	size := fileSize(path)
	b.Counters.FramesWritten.Inc()
	b.Counters.BytesWritten.Add(size)
	logger.Debugf(ctx, "wrote '%s' (%s)", path, humanize.Bytes(size))
	return nil
}
