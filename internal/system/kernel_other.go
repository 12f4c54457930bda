//go:build !unix

package system

// KernelRelease is only implemented on unix systems.
func KernelRelease() string {
	return ""
}
