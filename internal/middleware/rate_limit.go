package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/meal-planner/internal/domain/dto"
	"github.com/guttosm/meal-planner/internal/i18n"
	"github.com/guttosm/meal-planner/internal/metrics"
)

const limiterShards = 16

// window is the fixed-window counter of one client.
type window struct {
	used  int
	start time.Time
}

type limiterShard struct {
	mu      sync.Mutex
	clients map[string]*window
}

// RateLimiter counts requests per client IP in fixed windows. Clients are
// spread over FNV-hashed shards so concurrent requests from different
// clients rarely contend on the same lock. Scope labels its rejections in
// the http_rate_limited_total metric and keeps limiters sharing a client
// apart.
type RateLimiter struct {
	scope  string
	rate   int
	period time.Duration
	shards [limiterShards]limiterShard
	now    func() time.Time

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter allows rate requests per period for each client and starts
// a goroutine that forgets idle clients. Call Stop to end it.
func NewRateLimiter(scope string, rate int, period time.Duration) *RateLimiter {
	rl := &RateLimiter{
		scope:  scope,
		rate:   rate,
		period: period,
		now:    time.Now,
		stopCh: make(chan struct{}),
	}
	for i := range rl.shards {
		rl.shards[i].clients = make(map[string]*window)
	}
	go rl.sweepLoop()
	return rl
}

func (rl *RateLimiter) shard(client string) *limiterShard {
	return &rl.shards[xxhash.Sum64String(client)%limiterShards]
}

// Allow consumes one request for client. It returns whether the request is
// within the limit, how many remain and how long until the window resets.
func (rl *RateLimiter) Allow(client string) (allowed bool, remaining int, reset time.Duration) {
	s := rl.shard(client)
	now := rl.now()

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.clients[client]
	if !ok || now.Sub(w.start) >= rl.period {
		w = &window{start: now}
		s.clients[client] = w
	}
	reset = rl.period - now.Sub(w.start)

	if w.used >= rl.rate {
		return false, 0, reset
	}
	w.used++
	return true, rl.rate - w.used, reset
}

// Middleware limits every request.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		rl.handle(c)
	}
}

// WritesOnly limits requests that change state; GET, HEAD and OPTIONS pass
// through without being counted.
func (rl *RateLimiter) WritesOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
		default:
			rl.handle(c)
		}
	}
}

func (rl *RateLimiter) handle(c *gin.Context) {
	allowed, remaining, reset := rl.Allow(c.ClientIP())
	resetSeconds := strconv.Itoa(int(math.Ceil(reset.Seconds())))

	c.Header("X-RateLimit-Limit", strconv.Itoa(rl.rate))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", resetSeconds)

	if allowed {
		c.Next()
		return
	}

	metrics.RecordRateLimited(rl.scope)
	c.Header("Retry-After", resetSeconds)
	message := i18n.GetTranslator().Translate(i18n.ErrKeyRateLimitExceeded, i18n.GetLocale(c))
	c.AbortWithStatusJSON(http.StatusTooManyRequests,
		dto.NewError(dto.ErrCodeRateLimit, message).WithRequestID(GetRequestID(c)))
}

func (rl *RateLimiter) sweepLoop() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.sweep()
		case <-rl.stopCh:
			return
		}
	}
}

// sweep drops clients whose window ended more than one period ago.
func (rl *RateLimiter) sweep() {
	now := rl.now()
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		for client, w := range s.clients {
			if now.Sub(w.start) > 2*rl.period {
				delete(s.clients, client)
			}
		}
		s.mu.Unlock()
	}
}

// Clients returns the number of clients currently tracked.
func (rl *RateLimiter) Clients() int {
	n := 0
	for i := range rl.shards {
		s := &rl.shards[i]
		s.mu.Lock()
		n += len(s.clients)
		s.mu.Unlock()
	}
	return n
}

// Stop ends the sweeping goroutine. It is safe to call more than once.
func (rl *RateLimiter) Stop() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}
