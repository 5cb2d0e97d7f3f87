// Package naming generates and validates bundle names used in generated
// databricks.yml files. Keeping the logic here allows future changes
// (length/algorithm) without touching call sites.
package naming

import (
	"crypto/sha1"
	"fmt"
	"regexp"
	"strings"
)

// bundleNameMaxLength bounds generated bundle names; deployment target
// paths embed the name, so it stays well under common path limits.
const bundleNameMaxLength = 63

// hashLength defines the hex length of short hashes (bits ~ length * 4).
const hashLength = 6

var bundleNameRe = regexp.MustCompile(`^[a-z0-9]([a-z0-9_-]*[a-z0-9])?$`)

// ShortHash returns the hex SHA1 prefix of length n (clamped to digest size).
func ShortHash(s string, n int) string {
	sum := sha1.Sum([]byte(s))
	h := fmt.Sprintf("%x", sum)
	if n > len(h) {
		n = len(h)
	}
	return h[:n]
}

// ValidateBundleName checks that name is a lowercase alphanumeric label
// with interior hyphens or underscores, at most bundleNameMaxLength runes.
func ValidateBundleName(name string) error {
	if name == "" {
		return fmt.Errorf("bundle name must not be empty")
	}
	if len(name) > bundleNameMaxLength {
		return fmt.Errorf("bundle name exceeds %d characters", bundleNameMaxLength)
	}
	if !bundleNameRe.MatchString(name) {
		return fmt.Errorf("invalid bundle name %q: must be lowercase alphanumeric with interior '-' or '_'", name)
	}
	return nil
}

// DefaultBundleName derives a valid bundle name from a directory path,
// lowercasing the base name and replacing unsupported runes. When nothing
// usable remains, it falls back to a deterministic hashed name.
func DefaultBundleName(dir string) string {
	base := strings.ToLower(strings.TrimRight(dir, "/\\"))
	if i := strings.LastIndexAny(base, "/\\"); i >= 0 {
		base = base[i+1:]
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ', r == '.':
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), "-_")
	if len(name) > bundleNameMaxLength {
		name = strings.Trim(name[:bundleNameMaxLength], "-_")
	}

	if ValidateBundleName(name) != nil {
		return "bundle-" + ShortHash(dir, hashLength)
	}
	return name
}
