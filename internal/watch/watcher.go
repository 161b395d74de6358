package watch

import (
	"context"
	"io/fs"
	"path/filepath"
	"sync"

	"github.com/charlievieth/fastwalk"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tagfold/tagfold/internal/logging"
	"github.com/tagfold/tagfold/internal/vfs"
)

// Options configures a subscription.
type Options struct {
	// Excludes is accepted but not yet applied; every notification under
	// the root is still translated and emitted.
	Excludes []string
	// Buffer is the event channel capacity.
	Buffer int
}

// Option mutates subscription options.
type Option func(*Options)

// WithExcludes records exclude patterns on the subscription.
func WithExcludes(patterns ...string) Option {
	return func(o *Options) { o.Excludes = append(o.Excludes, patterns...) }
}

// WithBuffer sets the event channel capacity.
func WithBuffer(n int) Option {
	return func(o *Options) { o.Buffer = n }
}

// Subscription is a single long-lived recursive watch on a root path.
// It translates raw filesystem notifications into structured events and
// publishes them on Events as single-element batches. Close tears down
// the underlying watch exactly once; no events are produced afterward.
type Subscription struct {
	ID   string
	Root string

	events  chan []Event
	watcher *fsnotify.Watcher
	fs      *vfs.FS
	opts    Options
	logger  *logging.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// Subscribe establishes a recursive watch on root. Existing
// subdirectories are enumerated and added up front; directories created
// later are added when their Created event arrives.
func Subscribe(root string, fsys *vfs.FS, logger *logging.Logger, opts ...Option) (*Subscription, error) {
	options := Options{Buffer: 64}
	for _, opt := range opts {
		opt(&options)
	}
	if logger == nil {
		logger = logging.NewDefault()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	sub := &Subscription{
		ID:      uuid.New().String(),
		Root:    filepath.Clean(root),
		events:  make(chan []Event, options.Buffer),
		watcher: watcher,
		fs:      fsys,
		opts:    options,
		logger:  logger.Named("watch"),
		done:    make(chan struct{}),
	}

	if err := sub.addRecursive(sub.Root); err != nil {
		watcher.Close()
		return nil, err
	}

	go sub.run()
	return sub, nil
}

// Events is the structured event stream. Each batch carries exactly one
// event. The channel is closed after Close.
func (s *Subscription) Events() <-chan []Event {
	return s.events
}

// Close transitions the subscription to its terminal state and releases
// the underlying watch resource. Safe to call more than once.
func (s *Subscription) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.done)
		err = s.watcher.Close()
	})
	return err
}

// addRecursive watches dir and every directory below it.
func (s *Subscription) addRecursive(dir string) error {
	if err := s.watcher.Add(dir); err != nil {
		return vfs.Classify(dir, err)
	}
	conf := fastwalk.Config{Follow: false}
	return fastwalk.Walk(&conf, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || path == dir {
			return nil
		}
		if d.IsDir() {
			if err := s.watcher.Add(path); err != nil {
				s.logger.Warn("failed to watch subdirectory", zap.String("path", path), zap.Error(err))
			}
		}
		return nil
	})
}

// run is the translation loop: one structured single-element batch per
// raw notification.
func (s *Subscription) run() {
	defer close(s.events)

	for {
		select {
		case <-s.done:
			return
		case raw, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			s.handle(raw)
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			s.logger.Warn("watch error", zap.Error(err))
		}
	}
}

func (s *Subscription) handle(raw fsnotify.Event) {
	path := vfs.NormalizeName(filepath.Clean(raw.Name))

	kind := RawStructural
	if raw.Op.Has(fsnotify.Write) || raw.Op.Has(fsnotify.Chmod) {
		kind = RawContent
	}

	ctx := context.Background()
	exists := false
	if kind == RawStructural {
		exists = s.fs.Exists(ctx, path)
	}

	event := Translate(kind, path, exists)

	// Keep newly created directories under watch so the subscription
	// stays recursive.
	if event.Kind == Created {
		if info, err := s.fs.Stat(ctx, path); err == nil && info.IsDirectory {
			if err := s.addRecursive(path); err != nil {
				s.logger.Warn("failed to extend watch", zap.String("path", path), zap.Error(err))
			}
		}
	}

	select {
	case s.events <- []Event{event}:
	case <-s.done:
	}
}
