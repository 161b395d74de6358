package vfs

import (
	"runtime"

	"golang.org/x/text/unicode/norm"
)

// HFS+ and APFS hand back decomposed (NFD) filenames; every other
// supported platform already returns precomposed form.
var decomposedNames = runtime.GOOS == "darwin"

// NormalizeName renormalizes a single filename to precomposed (NFC)
// form. No-op on platforms that never decompose.
func NormalizeName(name string) string {
	if !decomposedNames {
		return name
	}
	return norm.NFC.String(name)
}

// NormalizeNames renormalizes a collection of filenames in place and
// returns it.
func NormalizeNames(names []string) []string {
	if !decomposedNames {
		return names
	}
	for i, name := range names {
		names[i] = norm.NFC.String(name)
	}
	return names
}
