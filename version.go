package flowsheet

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a Flow release tag such as "v0.83.0".
type Version struct {
	Major int
	Minor int
	Patch int
}

// ParseVersion parses a "vMAJOR.MINOR.PATCH" tag.
// Anything else, including prereleases and shortened forms such as "v0.83",
// returns an EINVALID error.
func ParseVersion(s string) (Version, error) {
	if !semver.IsValid(s) || semver.Canonical(s) != s || semver.Prerelease(s) != "" {
		return Version{}, Errorf(EINVALID, "invalid version %q: want vMAJOR.MINOR.PATCH", s)
	}
	parts := strings.Split(strings.TrimPrefix(s, "v"), ".")
	if len(parts) != 3 {
		return Version{}, Errorf(EINVALID, "invalid version %q: want vMAJOR.MINOR.PATCH", s)
	}

	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Version{}, Errorf(EINVALID, "invalid version %q: %v", s, err)
		}
		nums[i] = n
	}
	return Version{Major: nums[0], Minor: nums[1], Patch: nums[2]}, nil
}

// ParseVersions parses every tag in order, failing on the first invalid one.
func ParseVersions(tags []string) ([]Version, error) {
	versions := make([]Version, 0, len(tags))
	for _, tag := range tags {
		v, err := ParseVersion(tag)
		if err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	return versions, nil
}

// String returns the tag form of v.
func (v Version) String() string {
	return fmt.Sprintf("v%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// Compare returns -1, 0 or +1 as v is older than, equal to, or newer than w.
func (v Version) Compare(w Version) int {
	return semver.Compare(v.String(), w.String())
}

// Includes reports whether a feature introduced in 0.minMinor is available
// in v. A minMinor of zero means the feature has always existed.
func (v Version) Includes(minMinor int) bool {
	if minMinor <= 0 || v.Major > 0 {
		return true
	}
	return v.Minor >= minMinor
}

// Latest returns the newest of versions. It panics if versions is empty.
func Latest(versions []Version) Version {
	return slices.MaxFunc(versions, Version.Compare)
}
