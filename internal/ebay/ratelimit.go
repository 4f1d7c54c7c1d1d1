package ebay

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// ErrDailyLimitReached is returned when the daily API call limit has been exhausted.
var ErrDailyLimitReached = errors.New("daily API limit reached")

// RateLimiter paces Sell API calls and enforces the application's daily call
// budget. A token bucket covers the per-second rate; the daily budget uses a
// 24-hour window that opens with the limiter and rolls over once expired.
type RateLimiter struct {
	limiter  *rate.Limiter
	daily    atomic.Int64
	maxDaily int64
	resetAt  time.Time
	mu       sync.Mutex
	nowFunc  func() time.Time
}

// RateLimiterOption configures the RateLimiter.
type RateLimiterOption func(*RateLimiter)

// WithRateLimiterNowFunc overrides the time function for testing.
func WithRateLimiterNowFunc(f func() time.Time) RateLimiterOption {
	return func(r *RateLimiter) {
		r.nowFunc = f
	}
}

// NewRateLimiter creates a rate limiter with the given per-second rate,
// burst size, and daily limit. A non-positive daily limit disables the budget.
func NewRateLimiter(
	perSecond float64,
	burst int,
	maxDaily int64,
	opts ...RateLimiterOption,
) *RateLimiter {
	r := &RateLimiter{
		limiter:  rate.NewLimiter(rate.Limit(perSecond), burst),
		maxDaily: maxDaily,
		nowFunc:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	now := r.nowFunc()
	r.resetAt = now.Add(24 * time.Hour)
	return r
}

// Wait blocks until the rate limiter allows the call, or the context is canceled.
// Returns ErrDailyLimitReached if the daily limit has been exhausted.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.checkDailyReset()

	if r.maxDaily > 0 && r.daily.Load() >= r.maxDaily {
		return fmt.Errorf("%w (%d/%d)", ErrDailyLimitReached, r.daily.Load(), r.maxDaily)
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	r.daily.Add(1)
	return nil
}

// DailyCount returns the current daily call count.
func (r *RateLimiter) DailyCount() int64 {
	return r.daily.Load()
}

// Quota is a point-in-time view of the daily Sell API budget.
type Quota struct {
	DailyLimit int64
	DailyUsed  int64
	Remaining  int64
	ResetAt    time.Time
}

// Snapshot returns the current quota, rolling the window first if it expired.
func (r *RateLimiter) Snapshot() Quota {
	r.checkDailyReset()

	used := r.daily.Load()
	r.mu.Lock()
	resetAt := r.resetAt
	r.mu.Unlock()

	return Quota{
		DailyLimit: r.maxDaily,
		DailyUsed:  used,
		Remaining:  max(r.maxDaily-used, 0), // zero when the budget is disabled
		ResetAt:    resetAt,
	}
}

// Seed aligns the daily window with counters reported by eBay, so a restart
// does not hand out a fresh budget. The local count never goes down, and a
// resetAt in the past is ignored.
func (r *RateLimiter) Seed(used int64, resetAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if resetAt.After(r.nowFunc()) {
		r.resetAt = resetAt
	}
	for {
		cur := r.daily.Load()
		if used <= cur || r.daily.CompareAndSwap(cur, used) {
			return
		}
	}
}

func (r *RateLimiter) checkDailyReset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.nowFunc()
	if now.After(r.resetAt) {
		r.daily.Store(0)
		r.resetAt = now.Add(24 * time.Hour)
	}
}
