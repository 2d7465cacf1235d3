package storage

import "sync"

// Event señala que una colección cambió. External es true cuando el cambio lo
// hizo otro proceso (detectado por el watcher) y no este.
type Event struct {
	Key      string
	Rev      int64
	External bool
}

// Notifier es el bus de notificación de cambios: el equivalente del evento
// "colección actualizada" del original. Entrega best-effort y sin bloqueo;
// un suscriptor lento pierde eventos en vez de frenar al escritor.
type Notifier struct {
	mu   sync.RWMutex
	subs map[int]subscription
	next int
}

type subscription struct {
	key string // vacío = todas las colecciones
	ch  chan Event
}

// NewNotifier crea el bus.
func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[int]subscription)}
}

// Subscribe registra interés en los cambios de una colección (clave vacía =
// todas). Devuelve el canal de eventos y la función para cancelar.
func (n *Notifier) Subscribe(key string) (<-chan Event, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	id := n.next
	n.next++
	ch := make(chan Event, 16)
	n.subs[id] = subscription{key: key, ch: ch}
	cancel := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		if sub, ok := n.subs[id]; ok {
			delete(n.subs, id)
			close(sub.ch)
		}
	}
	return ch, cancel
}

// Publish entrega el evento a todos los suscriptores interesados sin bloquear.
func (n *Notifier) Publish(ev Event) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	for _, sub := range n.subs {
		if sub.key != "" && sub.key != ev.Key {
			continue
		}
		select {
		case sub.ch <- ev:
		default:
			// canal lleno: el suscriptor relee el estado completo igualmente
		}
	}
}
