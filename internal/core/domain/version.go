package domain

import (
	"cmp"
	"strconv"
	"strings"
)

// stripConstraintOperator removes a leading range operator ("^", "~", ">=",
// "<=", ">", "<", "=") and an optional "v" prefix, leaving the bare version.
func stripConstraintOperator(constraint string) string {
	v := strings.TrimSpace(constraint)
	v = strings.TrimLeft(v, "^~<>= ")
	return strings.TrimPrefix(v, "v")
}

// CompareConstraints orders two version constraints by their bare versions.
// It returns a negative value if a sorts before b, zero if they are equal,
// and a positive value otherwise. Constraint operators do not participate in
// the ordering: "^1.2.0" and "~1.2.0" compare equal.
func CompareConstraints(a, b string) int {
	return compareVersions(stripConstraintOperator(a), stripConstraintOperator(b))
}

// compareVersions implements a simplified semver-style ordering over
// RELEASE[-PRERELEASE] strings. Dot-separated identifiers compare pairwise:
// digits-only identifiers compare numerically and sort before alphanumeric
// ones, alphanumeric identifiers compare lexicographically. A version with a
// prerelease sorts below the same release without one. Build metadata
// ("+...") is ignored.
func compareVersions(a, b string) int {
	relA, preA := splitPrerelease(a)
	relB, preB := splitPrerelease(b)

	if c := compareIdentifierLists(relA, relB); c != 0 {
		return c
	}

	// Equal releases: no prerelease sorts highest.
	switch {
	case preA == "" && preB == "":
		return 0
	case preA == "":
		return 1
	case preB == "":
		return -1
	default:
		return compareIdentifierLists(preA, preB)
	}
}

func splitPrerelease(v string) (release, prerelease string) {
	if i := strings.IndexByte(v, '+'); i >= 0 {
		v = v[:i]
	}
	if i := strings.IndexByte(v, '-'); i >= 0 {
		return v[:i], v[i+1:]
	}
	return v, ""
}

func compareIdentifierLists(a, b string) int {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")

	for i := 0; i < len(as) && i < len(bs); i++ {
		if c := compareIdentifier(as[i], bs[i]); c != 0 {
			return c
		}
	}
	// All shared identifiers equal: the longer list wins ("1.2.1" > "1.2").
	return cmp.Compare(len(as), len(bs))
}

func compareIdentifier(a, b string) int {
	na, aNum := parseNumericIdentifier(a)
	nb, bNum := parseNumericIdentifier(b)

	// Digits-only identifiers sort before alphanumeric ones.
	if aNum != bNum {
		if aNum {
			return -1
		}
		return 1
	}
	if aNum {
		return cmp.Compare(na, nb)
	}
	return strings.Compare(a, b)
}

func parseNumericIdentifier(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
