package catalogs

import "strings"

// Platform is a lower-cased platform identifier from a fixed enumeration.
type Platform string

// String returns the string representation of a Platform.
func (p Platform) String() string {
	return string(p)
}

// Supported platforms.
const (
	PlatformLinux   Platform = "linux"
	PlatformMac     Platform = "mac"
	PlatformWindows Platform = "windows"
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
)

// AllPlatforms lists every supported platform in canonical order.
var AllPlatforms = []Platform{
	PlatformLinux,
	PlatformMac,
	PlatformWindows,
	PlatformAndroid,
	PlatformIOS,
}

// ParsePlatform lower-cases and trims s and reports whether it names a supported platform.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllPlatforms {
		if p == known {
			return p, true
		}
	}
	return p, false
}
