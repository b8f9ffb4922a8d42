// Package cache defines the contract of the shopping report cache.
package cache

import "github.com/guttosm/meal-planner/internal/domain/model"

// Cache stores shopping reports keyed by a fingerprint of the plan they were
// generated from.
type Cache interface {
	Get(key uint64) (model.ShoppingReport, bool)
	Set(key uint64, report model.ShoppingReport)
	Clear()
	Stop()
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// HitRatio returns hits over lookups, or zero before the first lookup.
func (s Stats) HitRatio() float64 {
	if total := s.Hits + s.Misses; total > 0 {
		return float64(s.Hits) / float64(total)
	}
	return 0
}

// StatsReporter is implemented by caches that keep counters.
type StatsReporter interface {
	Stats() Stats
}
