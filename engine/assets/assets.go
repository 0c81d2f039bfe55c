package assets

import (
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spaghettifunk/gllabs/engine/core"
)

// ShaderExtensions are the file types that trigger a shader reload.
var ShaderExtensions = []string{".glsl", ".vert", ".frag"}

var ErrWatcherClosed = errors.New("asset watcher already closed")

type AssetInfo struct {
	Path        string
	LastChanged time.Time
}

/**
 * @brief Watches a directory tree and reports changed files with one of the
 * tracked extensions. Changes are coalesced: while a notification is pending
 * further changes only update the index.
 */
type AssetWatcher struct {
	assets     map[string]AssetInfo
	extensions map[string]struct{}

	mutex sync.RWMutex

	done     chan struct{}
	fsnotify *fsnotify.Watcher
	isClosed bool
	started  bool
	changes  chan string
	wg       sync.WaitGroup
}

func NewAssetWatcher(extensions ...string) (*AssetWatcher, error) {
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	exts := make(map[string]struct{}, len(extensions))
	for _, e := range extensions {
		exts[strings.ToLower(e)] = struct{}{}
	}
	return &AssetWatcher{
		assets:     make(map[string]AssetInfo),
		extensions: exts,
		fsnotify:   fsWatch,
		changes:    make(chan string, 1),
		done:       make(chan struct{}),
	}, nil
}

// Watch indexes dir recursively and starts delivering changes. It may be
// called once per directory; all of them share one event loop.
func (aw *AssetWatcher) Watch(dir string) error {
	if aw.isClosed {
		return ErrWatcherClosed
	}
	if err := aw.watchRecursive(dir); err != nil {
		return err
	}
	if aw.started {
		return nil
	}
	aw.started = true
	aw.wg.Add(1)
	go aw.start()
	return nil
}

// Changes delivers the path of a changed asset.
func (aw *AssetWatcher) Changes() <-chan string {
	return aw.changes
}

// Assets returns the indexed files sorted by path.
func (aw *AssetWatcher) Assets() []AssetInfo {
	aw.mutex.RLock()
	defer aw.mutex.RUnlock()

	out := make([]AssetInfo, 0, len(aw.assets))
	for _, a := range aw.assets {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

func (aw *AssetWatcher) Close() error {
	if aw.isClosed {
		return nil
	}
	aw.isClosed = true
	close(aw.done)
	aw.wg.Wait()
	return aw.fsnotify.Close()
}

func (aw *AssetWatcher) start() {
	defer aw.wg.Done()
	for {
		select {
		case e, ok := <-aw.fsnotify.Events:
			if !ok {
				return
			}
			s, err := os.Stat(e.Name)
			if err == nil && s != nil && s.IsDir() {
				if e.Op&fsnotify.Create != 0 {
					if err := aw.watchRecursive(e.Name); err != nil {
						core.LogWarn("failed to watch %s: %s", e.Name, err)
					}
				}
				continue
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				if aw.handleFileEvent(e.Name) {
					aw.notify(e.Name)
				}
			}
			if e.Op&(fsnotify.Remove|fsnotify.Rename) != 0 {
				aw.removeAsset(e.Name)
			}

		case err, ok := <-aw.fsnotify.Errors:
			if !ok {
				return
			}
			core.LogError(err.Error())

		case <-aw.done:
			return
		}
	}
}

func (aw *AssetWatcher) notify(path string) {
	select {
	case aw.changes <- path:
	default:
	}
}

// watchRecursive adds all directories under the given one to the watch list
// and indexes the tracked files it finds.
func (aw *AssetWatcher) watchRecursive(path string) error {
	return filepath.Walk(path, func(walkPath string, fi os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if fi.IsDir() {
			return aw.fsnotify.Add(walkPath)
		}
		aw.handleFileEvent(walkPath)
		return nil
	})
}

// Tracked reports whether path has one of the watched extensions.
func (aw *AssetWatcher) Tracked(path string) bool {
	_, ok := aw.extensions[strings.ToLower(filepath.Ext(path))]
	return ok
}

// Handle the creation or modification of a file
func (aw *AssetWatcher) handleFileEvent(path string) bool {
	if !aw.Tracked(path) {
		return false
	}
	aw.mutex.Lock()
	defer aw.mutex.Unlock()

	aw.assets[path] = AssetInfo{
		Path:        path,
		LastChanged: time.Now(),
	}
	return true
}

// Remove the asset from the index if it was deleted
func (aw *AssetWatcher) removeAsset(path string) {
	aw.mutex.Lock()
	defer aw.mutex.Unlock()

	delete(aw.assets, path)
}
