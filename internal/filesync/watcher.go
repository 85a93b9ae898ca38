package filesync

import (
	"bytes"
	"os"

	"github.com/fsnotify/fsnotify"
)

// rewatch replaces the current watcher with one watching path. Watching is
// best-effort; the write-through side works without it.
func (s *Syncer) rewatch(path string) error {
	if err := s.stopWatch(); err != nil {
		s.logger.Errorf("filesync: stopping old watcher: %v", err)
	}

	s.mu.Lock()
	off := s.watchOff
	s.mu.Unlock()
	if off {
		return nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Nothing to watch until the first write creates the file.
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return err
	}

	s.mu.Lock()
	s.watcher = w
	s.mu.Unlock()

	s.wg.Add(1)
	go s.watch(w)
	return nil
}

func (s *Syncer) stopWatch() error {
	s.mu.Lock()
	w := s.watcher
	s.watcher = nil
	s.mu.Unlock()

	if w == nil {
		return nil
	}
	return w.Close()
}

func (s *Syncer) watch(w *fsnotify.Watcher) {
	defer s.wg.Done()
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write {
				s.handleFileChange(event.Name)
			}
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.logger.Errorf("filesync: watcher error: %v", err)
		}
	}
}

// handleFileChange re-reads the linked file and hands the content to the
// registered callback, unless the change is one of our own writes.
func (s *Syncer) handleFileChange(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		s.logger.Errorf("filesync: re-reading %s: %v", path, err)
		return
	}

	s.mu.Lock()
	ownWrite := bytes.Equal(data, s.lastWritten)
	fn := s.onChange
	s.mu.Unlock()

	if ownWrite || fn == nil {
		return
	}
	fn(data)
}
