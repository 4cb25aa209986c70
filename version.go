// Package hinter is a caret-anchored hint dropdown for terminal text editors.
//
// The widget lives in package hintbox; package hint holds the detection,
// filtering and selection logic; package editor is the host text surface.
package hinter

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"
)

//go:embed VERSION
var embeddedVersion string

// Version returns the module version without a leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version in git tag form.
func VersionTag() string {
	return "v" + Version()
}

// ParseVersion splits a MAJOR.MINOR.PATCH version. Pre-release and build
// suffixes are accepted and ignored; leading zeros are rejected.
func ParseVersion(v string) (major, minor, patch int, err error) {
	core := strings.TrimSpace(v)
	if i := strings.IndexAny(core, "-+"); i >= 0 {
		core = core[:i]
	}
	parts := strings.Split(core, ".")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("version %q: want MAJOR.MINOR.PATCH", v)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" || (len(p) > 1 && p[0] == '0') {
			return 0, 0, 0, fmt.Errorf("version %q: bad component %q", v, p)
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("version %q: bad component %q", v, p)
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], nil
}
