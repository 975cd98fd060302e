package server

import (
	"context"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceDelay = 100 * time.Millisecond

// watchLoop rebuilds the graph when the repository's refs change on
// disk. Watching is best effort; the poll loop still covers a platform
// where fsnotify cannot.
func (s *Server) watchLoop(ctx context.Context) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("filesystem watching unavailable: %v", err)
		return
	}
	defer watcher.Close()

	gitDir := filepath.Join(s.client.GitRoot(), ".git")
	watched := 0
	for _, dir := range []string{gitDir, filepath.Join(gitDir, "refs", "heads")} {
		if err := watcher.Add(dir); err != nil {
			log.Printf("failed to watch %s: %v", dir, err)
			continue
		}
		watched++
	}
	if watched == 0 {
		return
	}
	log.Println("watching repository for changes")

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if shouldIgnoreEvent(event) {
				continue
			}

			// Ref updates arrive in bursts; rebuild once they settle.
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, func() {
				s.refresh(true)
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

// shouldIgnoreEvent filters .git churn that cannot change the graph:
// lock files, the index, reflogs, and config edits.
func shouldIgnoreEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return true
	}

	base := filepath.Base(event.Name)
	if strings.HasSuffix(base, ".lock") {
		return true
	}
	if base == "config" || base == "index" {
		return true
	}
	sep := string(filepath.Separator)
	if strings.Contains(event.Name, sep+"logs"+sep) {
		return true
	}
	return false
}
