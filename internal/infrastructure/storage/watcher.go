package storage

import (
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/nublack/nublack-api/pkg/logger"
)

// Watcher observa el directorio de datos con fsnotify y traduce escrituras de
// otros procesos al mismo bus de cambios que usan las escrituras propias, de
// modo que los repositorios recarguen sin distinguir el origen del cambio.
type Watcher struct {
	store    *Store
	notifier *Notifier
	log      *logger.Logger
	fw       *fsnotify.Watcher
	done     chan struct{}
}

// NewWatcher crea y arranca el watcher sobre el directorio del store.
func NewWatcher(store *Store, notifier *Notifier, log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(store.Dir()); err != nil {
		_ = fw.Close()
		return nil, err
	}
	w := &Watcher{store: store, notifier: notifier, log: log, fw: fw, done: make(chan struct{})}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			key := keyFromPath(ev.Name)
			if key == "" {
				continue
			}
			diskRev, err := w.store.diskRev(key)
			if err != nil {
				continue
			}
			// Nuestras propias escrituras ya publicaron su evento; solo
			// interesan revisiones que no conocemos.
			if diskRev <= w.store.KnownRev(key) {
				continue
			}
			w.log.Debug().Str("coleccion", key).Int64("rev", diskRev).Msg("cambio externo detectado")
			w.notifier.Publish(Event{Key: key, Rev: diskRev, External: true})
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn().Err(err).Msg("error del watcher de almacenamiento")
		}
	}
}

// Close detiene el watcher.
func (w *Watcher) Close() error {
	err := w.fw.Close()
	<-w.done
	return err
}

func keyFromPath(path string) string {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".json") {
		return ""
	}
	key := strings.TrimSuffix(base, ".json")
	for _, k := range Keys() {
		if k == key {
			return k
		}
	}
	return ""
}
