package revealframes

import (
	"context"
	"fmt"
	"os"

	"github.com/xaionaro-go/revealframes/logger"
)

// checkDir returns an error if path is not an existing directory.
func checkDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("'%s' is not a directory", path)
	}
	return nil
}

// recreateDir removes path with all its content (if it exists) and
// creates it again empty.
func recreateDir(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err == nil {
		logger.Debugf(ctx, "removing the previous output directory '%s'", path)
		if err := os.RemoveAll(path); err != nil {
			return ErrOutputSetup{Op: "remove", Path: path, Err: err}
		}
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return ErrOutputSetup{Op: "create", Path: path, Err: err}
	}
	return nil
}

func fileSize(path string) uint64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return uint64(info.Size())
}
