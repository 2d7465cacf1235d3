// Package jsonstore implementa los puertos de repositorio sobre el códec de
// almacenamiento JSON (una colección por clave, escritura en cada mutación).
package jsonstore

import "github.com/nublack/nublack-api/internal/infrastructure/storage"

// subscribeReload relee la colección cuando el cambio viene de fuera del
// proceso (watcher) o cuando el almacén fue vaciado (rev 0).
func subscribeReload(notifier *storage.Notifier, key string, reload func() error) {
	if notifier == nil {
		return
	}
	ch, _ := notifier.Subscribe(key)
	go func() {
		for ev := range ch {
			if ev.External || ev.Rev == 0 {
				_ = reload()
			}
		}
	}()
}
