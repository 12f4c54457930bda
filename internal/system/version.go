package system

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// MacOSVersion is a parsed sw_vers product version.
type MacOSVersion struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

// String returns the version as a string
func (v MacOSVersion) String() string {
	if v.Patch > 0 {
		return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	}
	if v.Minor > 0 {
		return fmt.Sprintf("%d.%d", v.Major, v.Minor)
	}
	return fmt.Sprintf("%d", v.Major)
}

// IsAtLeast checks if this version is at least the specified version
func (v MacOSVersion) IsAtLeast(major, minor, patch int) bool {
	if v.Major != major {
		return v.Major > major
	}
	if v.Minor != minor {
		return v.Minor > minor
	}
	return v.Patch >= patch
}

// SettingsApp returns "System Settings" on Ventura (13) and later and
// "System Preferences" before that.
func (v MacOSVersion) SettingsApp() string {
	if v.IsAtLeast(13, 0, 0) {
		return "System Settings"
	}
	return "System Preferences"
}

// AccessibilityPane returns the menu path a user follows to grant
// Accessibility access on this version.
func (v MacOSVersion) AccessibilityPane() string {
	if v.IsAtLeast(13, 0, 0) {
		return "System Settings > Privacy & Security > Accessibility"
	}
	return "System Preferences > Security & Privacy > Privacy > Accessibility"
}

// GetMacOSVersion runs sw_vers and parses its product version.
func GetMacOSVersion(ctx context.Context) (MacOSVersion, error) {
	output, err := exec.CommandContext(ctx, "sw_vers", "-productVersion").Output()
	if err != nil {
		return MacOSVersion{}, fmt.Errorf("failed to run sw_vers: %w", err)
	}
	return ParseMacOSVersion(strings.TrimSpace(string(output)))
}

// ParseMacOSVersion parses a version string like "14.2.1" or "15.0"
func ParseMacOSVersion(version string) (MacOSVersion, error) {
	result := MacOSVersion{Raw: version}

	parts := strings.Split(version, ".")
	if len(parts) > 3 {
		return result, fmt.Errorf("invalid version format: %s", version)
	}

	fields := []*int{&result.Major, &result.Minor, &result.Patch}
	names := []string{"major", "minor", "patch"}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return result, fmt.Errorf("invalid %s version: %w", names[i], err)
		}
		*fields[i] = n
	}

	return result, nil
}
