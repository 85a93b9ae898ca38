// Package filesync keeps a linked external file in step with the in-memory
// tracker state. Writes are fire-and-forget: a failed write is logged and the
// in-memory state stays the source of truth.
package filesync

import (
	"fmt"
	"os"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/namnguyen21-f/Nutrition-Tracker/pkg/utils"
)

// Syncer owns a single-slot write queue for the linked file. Enqueue replaces
// any pending snapshot, and one worker goroutine writes serially, so the last
// successful write always reflects the latest state observed at enqueue time
// and writes to the file never interleave.
type Syncer struct {
	logger *utils.Logger

	mu          sync.Mutex
	path        string
	pending     []byte
	lastWritten []byte
	onChange    func(data []byte)
	watcher     *fsnotify.Watcher
	watchOff    bool
	closed      bool

	kick chan struct{}
	done chan struct{}
	wg   sync.WaitGroup
}

func NewSyncer(logger *utils.Logger) *Syncer {
	s := &Syncer{
		logger: logger,
		kick:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	s.wg.Add(1)
	go s.run()
	return s
}

// Link points the syncer at path and returns the file's current content for a
// read-once import. A missing file is not an error; it is created on the
// first write. On any other error (for example a permission denial) the
// previous link, if any, is preserved unchanged.
func (s *Syncer) Link(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to link %s: %w", path, err)
	}

	s.mu.Lock()
	s.path = path
	s.lastWritten = data
	s.mu.Unlock()

	if err := s.rewatch(path); err != nil {
		s.logger.Errorf("filesync: cannot watch %s: %v", path, err)
	}
	return data, nil
}

// Linked returns the currently linked path, or "" when no file is linked.
func (s *Syncer) Linked() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.path
}

// DisableWatch turns off re-importing of external edits; the write-through
// side is unaffected.
func (s *Syncer) DisableWatch() {
	s.mu.Lock()
	s.watchOff = true
	s.mu.Unlock()
	if err := s.stopWatch(); err != nil {
		s.logger.Errorf("filesync: stopping watcher: %v", err)
	}
}

// OnExternalChange registers the callback invoked with the file content when
// something other than this syncer writes the linked file.
func (s *Syncer) OnExternalChange(fn func(data []byte)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = fn
}

// Enqueue stores data as the next snapshot to write, superseding any snapshot
// that has not been written yet. It never blocks the caller.
func (s *Syncer) Enqueue(data []byte) {
	s.mu.Lock()
	if s.closed || s.path == "" {
		s.mu.Unlock()
		return
	}
	s.pending = data
	s.mu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
	}
}

// Close flushes the pending snapshot, stops the worker and the watcher.
func (s *Syncer) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	err := s.stopWatch()
	close(s.done)
	s.wg.Wait()
	return err
}

func (s *Syncer) run() {
	defer s.wg.Done()
	for {
		select {
		case <-s.kick:
			s.writePending()
		case <-s.done:
			s.writePending()
			return
		}
	}
}

func (s *Syncer) writePending() {
	s.mu.Lock()
	data := s.pending
	path := s.path
	s.pending = nil
	s.mu.Unlock()

	if data == nil || path == "" {
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		s.logger.Errorf("filesync: write to %s failed: %v", path, err)
		return
	}

	s.mu.Lock()
	s.lastWritten = data
	s.mu.Unlock()
}
