package repository

import "sync"

// PriceRegistry maps ingredient names to unit prices.
// Registering a name twice keeps the last price. It is safe for concurrent use.
type PriceRegistry struct {
	mu     sync.RWMutex
	prices map[string]float64
}

// NewPriceRegistry creates an empty registry.
func NewPriceRegistry() *PriceRegistry {
	return &PriceRegistry{prices: make(map[string]float64)}
}

// Register sets the unit price for name, replacing any previous value.
func (r *PriceRegistry) Register(name string, price float64) {
	r.mu.Lock()
	r.prices[name] = price
	r.mu.Unlock()
}

// Lookup returns the price registered for name.
func (r *PriceRegistry) Lookup(name string) (float64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.prices[name]
	return p, ok
}

// Len returns the number of registered names.
func (r *PriceRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prices)
}

// Reset removes every registered price.
func (r *PriceRegistry) Reset() {
	r.mu.Lock()
	r.prices = make(map[string]float64)
	r.mu.Unlock()
}

// CopyTo registers every price of r into dst.
func (r *PriceRegistry) CopyTo(dst *PriceRegistry) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for name, price := range r.prices {
		dst.Register(name, price)
	}
}
