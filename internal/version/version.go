// Package version provides version-aware string comparison.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Compare returns -1, 0, or 1 based on comparing a vs b.
// Strings that parse as versions ("2", "2.10", "v1.4.0-rc1") are compared
// as semver, so "2.9" < "2.10". Versions sort before free-form strings,
// which fall back to plain string comparison.
func Compare(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	if errA == nil && errB == nil {
		return va.Compare(vb)
	}

	if errA == nil {
		return -1
	}
	if errB == nil {
		return 1
	}

	return strings.Compare(a, b)
}
