// Package files feeds a workspace directory into the agent's in-memory
// file set: an initial load, then fsnotify-driven updates. The watcher
// is optional; when no workspace is configured, the file set comes
// from the state store alone.
package files

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"flowdeck/application/ports"
	"flowdeck/domain/codegraph"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Source extensions mirrored into the file set
var watchedExts = map[string]bool{
	".ts":  true,
	".tsx": true,
	".js":  true,
	".jsx": true,
}

// Watcher mirrors a directory tree into the state store's file set
type Watcher struct {
	root    string
	agentID string
	store   ports.StateStore
	logger  *zap.Logger

	mu    sync.Mutex
	known map[string]codegraph.File
}

// NewWatcher creates a watcher for one workspace directory
func NewWatcher(root, agentID string, store ports.StateStore, logger *zap.Logger) *Watcher {
	return &Watcher{
		root:    root,
		agentID: agentID,
		store:   store,
		logger:  logger,
		known:   make(map[string]codegraph.File),
	}
}

// Load walks the workspace once and saves the full file set. Unreadable
// files are skipped with a warning rather than failing the load.
func (w *Watcher) Load(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.known = make(map[string]codegraph.File)
	err := filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != w.root {
				return filepath.SkipDir
			}
			return nil
		}
		if !watchedExts[filepath.Ext(path)] {
			return nil
		}
		if f, ok := w.readFile(path); ok {
			w.known[f.Path] = f
		}
		return nil
	})
	if err != nil {
		return err
	}

	w.logger.Info("Workspace loaded",
		zap.String("root", w.root),
		zap.Int("files", len(w.known)),
	)
	return w.store.SaveFiles(ctx, w.agentID, w.known)
}

// Watch mirrors filesystem changes into the file set until the context
// is cancelled. Call Load first.
func (w *Watcher) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	// fsnotify does not recurse; register every directory.
	err = filepath.WalkDir(w.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() && !(strings.HasPrefix(d.Name(), ".") && path != w.root) {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(ctx, watcher, event)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(ctx context.Context, watcher *fsnotify.Watcher, event fsnotify.Event) {
	// New directories need registering before their files show up.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := watcher.Add(event.Name); err != nil {
				w.logger.Warn("Failed to watch new directory",
					zap.String("path", event.Name),
					zap.Error(err),
				)
			}
			return
		}
	}

	if !watchedExts[filepath.Ext(event.Name)] {
		return
	}

	w.mu.Lock()
	changed := false
	switch {
	case event.Op.Has(fsnotify.Remove), event.Op.Has(fsnotify.Rename):
		if rel, ok := w.relPath(event.Name); ok {
			if _, exists := w.known[rel]; exists {
				delete(w.known, rel)
				changed = true
			}
		}
	case event.Op.Has(fsnotify.Create), event.Op.Has(fsnotify.Write):
		if f, ok := w.readFile(event.Name); ok {
			w.known[f.Path] = f
			changed = true
		}
	}

	var snapshot map[string]codegraph.File
	if changed {
		snapshot = make(map[string]codegraph.File, len(w.known))
		for k, v := range w.known {
			snapshot[k] = v
		}
	}
	w.mu.Unlock()

	if !changed {
		return
	}
	if err := w.store.SaveFiles(ctx, w.agentID, snapshot); err != nil {
		w.logger.Error("Failed to save file set", zap.Error(err))
	}
}

// readFile loads one file into its file-set form; paths are stored
// relative to the workspace root with forward slashes.
func (w *Watcher) readFile(path string) (codegraph.File, bool) {
	rel, ok := w.relPath(path)
	if !ok {
		return codegraph.File{}, false
	}

	content, err := os.ReadFile(path)
	if err != nil {
		w.logger.Warn("Failed to read file", zap.String("path", path), zap.Error(err))
		return codegraph.File{}, false
	}

	modified := time.Now()
	if info, err := os.Stat(path); err == nil {
		modified = info.ModTime()
	}

	return codegraph.File{
		Path:     rel,
		Content:  string(content),
		Modified: modified,
		Created:  modified,
	}, true
}

func (w *Watcher) relPath(path string) (string, bool) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return "", false
	}
	return filepath.ToSlash(rel), true
}
