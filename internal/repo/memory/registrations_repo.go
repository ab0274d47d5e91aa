package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/regdesk/regdesk/internal/domain/registration"
)

// RegistrationsRepo is the volatile store behind the engine. Records live in
// an insertion-ordered slice with an id index; nothing is ever deleted and
// everything is lost on restart, which is the agreed trade-off for this core.
type RegistrationsRepo struct {
	mu    sync.RWMutex
	items []registration.Registration
	index map[string]int // id -> position in items
}

func NewRegistrationsRepo() *RegistrationsRepo {
	return &RegistrationsRepo{
		index: make(map[string]int),
	}
}

// Create derives the next REG-NNN identifier from the current size and inserts
// the new record under one lock, so concurrent submissions can never be handed
// the same id.
func (r *RegistrationsRepo) Create(kind registration.Kind, f registration.Fields) (registration.Registration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := fmt.Sprintf("REG-%03d", len(r.items)+1)

	reg, err := registration.NewFromFields(id, kind, f, time.Now().UTC())

	if err != nil {
		return registration.Registration{}, err
	}

	r.index[reg.ID] = len(r.items)
	r.items = append(r.items, reg)

	return reg, nil
}

func (r *RegistrationsRepo) GetByID(id string) (registration.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[id]

	if !ok {
		return registration.Registration{}, registration.ErrNotFound
	}

	return r.items[i], nil
}

// List returns a copy in insertion order.
func (r *RegistrationsRepo) List() []registration.Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]registration.Registration, len(r.items))
	copy(out, r.items)

	return out
}

func (r *RegistrationsRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// UpdateStatus is the only mutation path for the notification status. The
// dispatch service owns every call to it.
func (r *RegistrationsRepo) UpdateStatus(id string, status registration.EmailStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid email status %q", status)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.index[id]

	if !ok {
		return registration.ErrNotFound
	}

	r.items[i].EmailStatus = status

	return nil
}
