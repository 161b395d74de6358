// Package tree derives a synthetic two-level hierarchy over a
// physically flat directory. Files are grouped by tags embedded in
// their names: for a filename of the form base.tag1...tagN.ext, every
// dot-separated segment strictly between the base name and the
// extension is a grouping key.
//
// The first level of the hierarchy is the deduplicated tag set; the
// second level is, for a selected tag, every file whose name contains
// that tag. Group membership is a substring match rather than an
// exact-segment match, and second-level results come back in reverse
// listing order; both behaviors are deliberate, tested contracts.
package tree
