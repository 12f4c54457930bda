package accessibility

import (
	"fmt"
	"sync"

	"github.com/ebitengine/purego"
)

const applicationServicesPath = "/System/Library/Frameworks/ApplicationServices.framework/ApplicationServices"

var (
	loadOnce           sync.Once
	loadErr            error
	axIsProcessTrusted func() bool
)

func load() error {
	loadOnce.Do(func() {
		lib, err := purego.Dlopen(applicationServicesPath, purego.RTLD_LAZY|purego.RTLD_GLOBAL)
		if err != nil {
			loadErr = fmt.Errorf("accessibility: load ApplicationServices: %w", err)
			return
		}
		sym, err := purego.Dlsym(lib, "AXIsProcessTrusted")
		if err != nil {
			loadErr = fmt.Errorf("accessibility: resolve AXIsProcessTrusted: %w", err)
			return
		}
		purego.RegisterFunc(&axIsProcessTrusted, sym)
	})
	return loadErr
}

// Trusted reports whether the current process is trusted for Accessibility.
//
// TCC attributes osascript's requests to the responsible app (usually the
// terminal), so a true result here means window queries from this process
// should succeed.
func Trusted() (bool, error) {
	if err := load(); err != nil {
		return false, err
	}
	return axIsProcessTrusted(), nil
}
