// Package watch translates raw filesystem notifications into
// structured Created/Changed/Deleted events.
//
// The translation itself is a pure function from (raw kind, current
// existence) to an event; Subscription wires it to a recursive fsnotify
// watch and republishes each notification as a single-element batch.
// Consumers must treat an event as a hint to re-query the tree, not as
// carrying an up-to-date listing: no ordering is guaranteed between the
// event stream and concurrent tree queries.
package watch
