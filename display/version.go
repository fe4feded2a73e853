package display

import (
	"fmt"
	"runtime/debug"
)

// BuildVersion returns a formatted version string for the named command.
// When version is empty it is inferred from the build metadata of the main
// module, falling back to a placeholder when no version is recorded.
func BuildVersion(name, version string) string {
	if version == "" {
		version = inferVersion()
	}
	if version == "" {
		return "No version specified"
	}
	if name != "" {
		name = name + " "
	}
	return fmt.Sprintf("%sv%s", name, version)
}

// inferVersion attempts to read the main module version from build info.
func inferVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}
	return ""
}
