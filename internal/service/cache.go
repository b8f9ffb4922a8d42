package service

import (
	"container/list"
	"sync"
	"time"

	"github.com/guttosm/meal-planner/internal/domain/model"
	"github.com/guttosm/meal-planner/internal/metrics"
	"github.com/guttosm/meal-planner/internal/service/cache"
)

// reportCache is an LRU of shopping reports whose entries expire after ttl.
// Expired entries are dropped lazily on Get and by a janitor goroutine.
type reportCache struct {
	mu       sync.Mutex
	capacity int
	ttl      time.Duration
	now      func() time.Time
	order    *list.List
	items    map[uint64]*list.Element
	stats    cache.Stats
	stopCh   chan struct{}
	stopOnce sync.Once
}

type reportEntry struct {
	key       uint64
	report    model.ShoppingReport
	expiresAt time.Time
}

func newReportCache(capacity int, ttl time.Duration) *reportCache {
	if capacity < 1 {
		capacity = 1
	}
	c := &reportCache{
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
		order:    list.New(),
		items:    make(map[uint64]*list.Element, capacity),
		stopCh:   make(chan struct{}),
	}
	go c.janitor(janitorInterval(ttl))
	return c
}

func janitorInterval(ttl time.Duration) time.Duration {
	if ttl <= 0 || ttl > time.Minute {
		return time.Minute
	}
	return ttl
}

func (c *reportCache) Get(key uint64) (model.ShoppingReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	el, ok := c.items[key]
	if !ok {
		c.stats.Misses++
		metrics.RecordCacheOperation("get", "miss")
		return model.ShoppingReport{}, false
	}
	entry := el.Value.(*reportEntry)
	if !c.now().Before(entry.expiresAt) {
		c.removeLocked(el)
		c.stats.Misses++
		metrics.RecordCacheOperation("get", "expired")
		return model.ShoppingReport{}, false
	}

	c.order.MoveToFront(el)
	c.stats.Hits++
	metrics.RecordCacheOperation("get", "hit")
	return entry.report, true
}

func (c *reportCache) Set(key uint64, report model.ShoppingReport) {
	c.mu.Lock()
	defer c.mu.Unlock()

	expiresAt := c.now().Add(c.ttl)
	if el, ok := c.items[key]; ok {
		entry := el.Value.(*reportEntry)
		entry.report = report
		entry.expiresAt = expiresAt
		c.order.MoveToFront(el)
		metrics.RecordCacheOperation("set", "refresh")
		return
	}

	c.items[key] = c.order.PushFront(&reportEntry{key: key, report: report, expiresAt: expiresAt})
	for c.order.Len() > c.capacity {
		c.removeLocked(c.order.Back())
		c.stats.Evictions++
		metrics.RecordCacheOperation("evict", "capacity")
	}
	metrics.RecordCacheOperation("set", "success")
	metrics.UpdateCacheMetrics(c.order.Len(), c.capacity)
}

// Clear drops every entry and resets the counters.
func (c *reportCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.order.Init()
	c.items = make(map[uint64]*list.Element, c.capacity)
	c.stats = cache.Stats{}
	metrics.RecordCacheOperation("clear", "success")
	metrics.UpdateCacheMetrics(0, c.capacity)
}

// Stop ends the janitor. It is safe to call more than once.
func (c *reportCache) Stop() {
	c.stopOnce.Do(func() { close(c.stopCh) })
}

func (c *reportCache) Stats() cache.Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats
	s.Size = c.order.Len()
	s.Capacity = c.capacity
	return s
}

func (c *reportCache) janitor(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.dropExpired()
		case <-c.stopCh:
			return
		}
	}
}

// dropExpired scans the whole list. Get moves entries to the front without
// extending them, so list order is not expiry order.
func (c *reportCache) dropExpired() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	dropped := 0
	for el := c.order.Back(); el != nil; {
		prev := el.Prev()
		if !now.Before(el.Value.(*reportEntry).expiresAt) {
			c.removeLocked(el)
			dropped++
		}
		el = prev
	}
	if dropped > 0 {
		metrics.UpdateCacheMetrics(c.order.Len(), c.capacity)
	}
	return dropped
}

func (c *reportCache) removeLocked(el *list.Element) {
	entry := c.order.Remove(el).(*reportEntry)
	delete(c.items, entry.key)
}

var (
	_ cache.Cache         = (*reportCache)(nil)
	_ cache.StatsReporter = (*reportCache)(nil)
)
