package cart

import "sync"

// InMemoryRepository backs tests and deployments without a database.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string][]Line
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string][]Line)}
}

func (r *InMemoryRepository) Get(cartID string) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lines := r.carts[cartID]
	out := make([]Line, len(lines))
	copy(out, lines)
	return out, nil
}

func (r *InMemoryRepository) Save(cartID string, lines []Line) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := make([]Line, len(lines))
	copy(cp, lines)
	r.carts[cartID] = cp
	return nil
}
