package watch

// EventKind classifies a structured change event.
type EventKind string

const (
	Created EventKind = "created"
	Changed EventKind = "changed"
	Deleted EventKind = "deleted"
)

// Event is a structured change notification for one path.
type Event struct {
	Kind EventKind `json:"kind"`
	Path string    `json:"path"`
}

// RawKind is the shape of a notification as delivered by the platform
// watch: either a structural change (create, remove, rename) or a
// content modification.
type RawKind int

const (
	RawStructural RawKind = iota
	RawContent
)

// Translate reclassifies a raw notification. Content modifications are
// always Changed regardless of current existence; structural
// notifications resolve to Created or Deleted according to whether the
// path exists at probe time.
func Translate(raw RawKind, path string, exists bool) Event {
	if raw == RawContent {
		return Event{Kind: Changed, Path: path}
	}
	if exists {
		return Event{Kind: Created, Path: path}
	}
	return Event{Kind: Deleted, Path: path}
}
