//go:build !darwin

package accessibility

// Trusted is only supported on macOS.
func Trusted() (bool, error) {
	return false, ErrUnsupported
}
