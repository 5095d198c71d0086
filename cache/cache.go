// ABOUTME: In-memory TTL cache for solved procurement plans
// ABOUTME: Thread-safe cache using sync.Map with automatic cleanup

package cache

import (
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rescueops/sar-equipment-planner/models"
)

type entry struct {
	plan      models.QuantityAssignment
	expiresAt time.Time
}

// PlanCache memoizes selected plans by budget and priority mode, so repeat
// evaluations of the same budget skip the solver. Entries expire after the
// configured TTL.
type PlanCache struct {
	store sync.Map
	ttl   time.Duration
}

func New(ttl time.Duration) *PlanCache {
	c := &PlanCache{
		ttl: ttl,
	}
	go c.startCleanup()
	return c
}

func planKey(budget decimal.Decimal, mode models.PriorityMode) string {
	return budget.String() + "|" + string(mode)
}

// Get returns a copy of the cached plan for the budget and mode, if any
func (c *PlanCache) Get(budget decimal.Decimal, mode models.PriorityMode) (models.QuantityAssignment, bool) {
	key := planKey(budget, mode)
	val, ok := c.store.Load(key)
	if !ok {
		slog.Debug("Plan cache miss", "key", key)
		return nil, false
	}

	e := val.(entry)
	if time.Now().After(e.expiresAt) {
		c.store.Delete(key)
		slog.Debug("Plan cache expired", "key", key)
		return nil, false
	}

	slog.Debug("Plan cache hit", "key", key)
	return e.plan.Clone(), true
}

// Set stores a copy of the plan under the budget and mode
func (c *PlanCache) Set(budget decimal.Decimal, mode models.PriorityMode, plan models.QuantityAssignment) {
	key := planKey(budget, mode)
	e := entry{
		plan:      plan.Clone(),
		expiresAt: time.Now().Add(c.ttl),
	}
	c.store.Store(key, e)
	slog.Debug("Plan cache set", "key", key, "ttl", c.ttl)
}

// Clear removes the entry for the budget and mode
func (c *PlanCache) Clear(budget decimal.Decimal, mode models.PriorityMode) {
	c.store.Delete(planKey(budget, mode))
}

func (c *PlanCache) startCleanup() {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		now := time.Now()
		c.store.Range(func(key, val interface{}) bool {
			e := val.(entry)
			if now.After(e.expiresAt) {
				c.store.Delete(key)
			}
			return true
		})
	}
}
