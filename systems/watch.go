package systems

import (
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/animrule/anim"
	"github.com/automoto/animrule/components"
	cfg "github.com/automoto/animrule/config"
	"github.com/automoto/animrule/systems/factory"
)

// ClipWatcher watches one clips YAML file for edits. Editors replace
// files on save, so it watches the parent directory and filters events
// down to the file, with a debounce against editor double-writes.
type ClipWatcher struct {
	watcher *fsnotify.Watcher
	path    string
	Events  chan string
	Errors  chan error
	closeCh chan struct{}
	once    sync.Once
}

func NewClipWatcher(path string) (*ClipWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(path)); err != nil {
		_ = w.Close()
		return nil, err
	}

	watcher := &ClipWatcher{
		watcher: w,
		path:    filepath.Clean(path),
		Events:  make(chan string, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *ClipWatcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *ClipWatcher) run() {
	var last time.Time
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			now := time.Now()
			if now.Sub(last) < 100*time.Millisecond {
				continue
			}
			last = now
			select {
			case w.Events <- event.Name:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

// NewUpdateClipReload re-registers clip sets from the watched YAML file
// whenever it changes. Replacement happens through the normal
// registration path, so live controllers swap frames and intervals in
// place without restarting the scene. A broken file logs and leaves the
// current clips running.
func NewUpdateClipReload(stack *anim.Stack, watcher *ClipWatcher) func(*ecs.ECS) {
	return func(ecsInstance *ecs.ECS) {
		if watcher == nil {
			return
		}
		select {
		case name := <-watcher.Events:
			reloadClips(ecsInstance, stack, name)
		case err := <-watcher.Errors:
			log.Printf("clip watcher: %v", err)
		default:
		}
	}
}

func reloadClips(ecsInstance *ecs.ECS, stack *anim.Stack, path string) {
	f, err := os.Open(path)
	if err != nil {
		log.Printf("reload clips: %v", err)
		return
	}
	defer f.Close()

	defs, err := cfg.LoadClipDefs(f)
	if err != nil {
		log.Printf("reload clips: %v", err)
		return
	}

	count := 0
	components.Sprite.Each(ecsInstance.World, func(e *donburi.Entry) {
		sprite := components.Sprite.Get(e)
		charDefs, ok := defs[sprite.Character]
		if !ok {
			return
		}
		w, h := frameSize(sprite.Character)
		factory.RegisterClips(stack, sprite.CharacterSprite, charDefs, w, h)
		count++
	})
	log.Printf("reloaded clips from %s for %d characters", path, count)
}

func frameSize(character string) (int, int) {
	switch character {
	case "walker":
		return cfg.Patrol.FrameWidth, cfg.Patrol.FrameHeight
	default:
		return cfg.Player.FrameWidth, cfg.Player.FrameHeight
	}
}
