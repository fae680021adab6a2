package main

import (
	"context"
	"fmt"
	"os"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/revealframes"
	"github.com/xaionaro-go/revealframes/codec"
	"github.com/xaionaro-go/revealframes/config"
	xlogger "github.com/xaionaro-go/revealframes/logger"
)

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "syntax: %s [options]\n", os.Args[0])
		pflag.PrintDefaults()
	}

	loggerLevel := logger.LevelInfo
	pflag.Var(&loggerLevel, "log-level", "Log level")
	configPath := pflag.String("config", "", "path to a YAML config; the built-in defaults are used otherwise")
	inputDir := pflag.String("input-dir", "", "directory with one folder per identifier")
	outputDir := pflag.String("output-dir", "", "directory to write the frames to; it is wiped first")
	ids := pflag.StringSlice("ids", nil, "identifiers to process, in this order")
	outputFormat := codec.FormatUndefined
	pflag.Var(&outputFormat, "output-format", "format of the frames: png, jpeg, bmp or tiff")
	englishFrameIndex := pflag.Int("english-frame-index", -1, "frame index of the english image (by default it replaces the last hold frame)")
	pflag.Parse()
	if pflag.NArg() != 0 {
		pflag.Usage()
		os.Exit(1)
	}

	ctx := xlogger.CtxWithNew(context.Background(), loggerLevel)
	defer belt.Flush(ctx)

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Fatal(ctx, err)
		}
		cfg = *loaded
	}
	if *inputDir != "" {
		cfg.InputDir = *inputDir
	}
	if *outputDir != "" {
		cfg.OutputDir = *outputDir
	}
	if pflag.CommandLine.Changed("ids") {
		cfg.Identifiers = *ids
	}
	if outputFormat != codec.FormatUndefined {
		cfg.OutputFormat = outputFormat
	}
	if *englishFrameIndex >= 0 {
		cfg.Frames.EnglishFrameIndex = *englishFrameIndex
	}

	b, err := revealframes.New(cfg)
	if err != nil {
		logger.Fatal(ctx, err)
	}
	if err := b.Run(ctx); err != nil {
		logger.Fatal(ctx, err)
	}
}
