package tree

import "strings"

// Tags extracts the tag tokens from a base filename: every dot-separated
// segment strictly between the first and the last. Names with fewer
// than three segments carry no tags.
func Tags(name string) []string {
	segments := strings.Split(name, ".")
	if len(segments) < 3 {
		return nil
	}
	return segments[1 : len(segments)-1]
}

// BaseLabel returns the display label for a filename: the base name
// stripped of all tag and extension segments.
func BaseLabel(name string) string {
	base, _, _ := strings.Cut(name, ".")
	return base
}
