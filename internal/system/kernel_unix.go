//go:build unix

package system

import "golang.org/x/sys/unix"

// KernelRelease returns "<sysname> <release>" from uname(2), for example
// "Darwin 24.1.0". It returns "" if uname fails.
func KernelRelease() string {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return ""
	}
	return unix.ByteSliceToString(uts.Sysname[:]) + " " + unix.ByteSliceToString(uts.Release[:])
}
