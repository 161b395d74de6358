package watch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestTranslate covers the pure reclassification table: content
// modifications are always Changed, structural notifications resolve
// by current existence.
func TestTranslate(t *testing.T) {
	cases := []struct {
		name   string
		raw    RawKind
		exists bool
		want   EventKind
	}{
		{"content change, path present", RawContent, true, Changed},
		{"content change, path gone", RawContent, false, Changed},
		{"structural, path present", RawStructural, true, Created},
		{"structural, path gone", RawStructural, false, Deleted},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			event := Translate(tc.raw, "/root/a.tag.txt", tc.exists)
			assert.Equal(t, tc.want, event.Kind)
			assert.Equal(t, "/root/a.tag.txt", event.Path)
		})
	}
}
