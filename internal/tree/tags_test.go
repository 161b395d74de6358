package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTags asserts tag tokens are the segments strictly between base
// name and extension, and that short names contribute nothing.
func TestTags(t *testing.T) {
	cases := []struct {
		name string
		want []string
	}{
		{"notes.txt", nil},
		{"plain", nil},
		{"report.v1.final.csv", []string{"v1", "final"}},
		{"a.x.txt", []string{"x"}},
		{"a.b.c.d.e", []string{"b", "c", "d"}},
		{"..", []string{""}},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Tags(tc.name), "name %q", tc.name)
	}
}

// TestBaseLabel asserts the label falls back to the first dot-segment.
func TestBaseLabel(t *testing.T) {
	assert.Equal(t, "report", BaseLabel("report.v1.final.csv"))
	assert.Equal(t, "notes", BaseLabel("notes.txt"))
	assert.Equal(t, "plain", BaseLabel("plain"))
}
