package inventory

import (
	"sync"
	"time"

	"github.com/jhoicas/Farmacia-api/internal/domain/entity"
)

// CollectionReplaced snapshot completo de los lotes de una farmacia tras una escritura.
// Los suscriptores reemplazan su colección local; no hay diffs.
type CollectionReplaced struct {
	PharmacyID string
	Items      []entity.InventoryItem
	At         time.Time
}

// Broker reparte eventos CollectionReplaced por farmacia dentro del proceso.
// Cada suscriptor conserva sólo el snapshot más reciente: un lector lento nunca bloquea a quien escribe.
type Broker struct {
	mu   sync.Mutex
	subs map[string]map[*subscription]struct{}
}

type subscription struct {
	ch chan CollectionReplaced
}

// NewBroker crea un broker sin suscriptores.
func NewBroker() *Broker {
	return &Broker{subs: make(map[string]map[*subscription]struct{})}
}

// Subscribe registra un suscriptor para la farmacia. cancel cierra el canal y es idempotente.
func (b *Broker) Subscribe(pharmacyID string) (<-chan CollectionReplaced, func()) {
	sub := &subscription{ch: make(chan CollectionReplaced, 1)}

	b.mu.Lock()
	set, ok := b.subs[pharmacyID]
	if !ok {
		set = make(map[*subscription]struct{})
		b.subs[pharmacyID] = set
	}
	set[sub] = struct{}{}
	b.mu.Unlock()

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if set, ok := b.subs[pharmacyID]; ok {
				delete(set, sub)
				if len(set) == 0 {
					delete(b.subs, pharmacyID)
				}
			}
			close(sub.ch)
		})
	}
	return sub.ch, cancel
}

// Publish entrega el evento a los suscriptores de su farmacia, descartando el snapshot pendiente si lo hay.
func (b *Broker) Publish(ev CollectionReplaced) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for sub := range b.subs[ev.PharmacyID] {
		select {
		case sub.ch <- ev:
			continue
		default:
		}
		// buffer lleno: reemplazar el snapshot viejo
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

// Subscribers cantidad de suscriptores activos de la farmacia.
func (b *Broker) Subscribers(pharmacyID string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs[pharmacyID])
}
