//go:build !darwin

package windowtitles

import (
	"errors"
	"runtime"

	"github.com/tance77/window-titles/internal/system"
)

func newPlatformProvider(cfg *Config) (Provider, error) {
	cfg.Logger.Debug("no window title provider for platform",
		"goos", runtime.GOOS,
		"kernel", system.KernelRelease())
	return nil, &Error{
		Kind: PlatformUnsupported,
		Op:   "new provider",
		Err:  errors.New(runtime.GOOS),
	}
}
