package windowtitles

import (
	"runtime"

	"github.com/tance77/window-titles/internal/system"
)

func newPlatformProvider(cfg *Config) (Provider, error) {
	cfg.Logger.Debug("using osascript provider",
		"goos", runtime.GOOS,
		"kernel", system.KernelRelease(),
		"command", cfg.Command)
	return &OsascriptProvider{cfg: cfg}, nil
}
