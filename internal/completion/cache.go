package completion

import (
	"context"
	"sync"
	"time"

	"networknode/internal/logger"

	"golang.org/x/sync/singleflight"
)

// Invalidator сбрасывает закэшированный статус после записи профиля
type Invalidator interface {
	Invalidate(userID string)
}

type cacheEntry struct {
	status    Status
	expiresAt time.Time
}

// defaultCheckTimeout ограничивает общий для схлопнутых запросов вызов хранилища
const defaultCheckTimeout = 5 * time.Second

// CachedChecker кэширует успешные проверки на ttl.
// Одновременные проверки одного пользователя схлопываются в один запрос.
// Сбои не кэшируются.
type CachedChecker struct {
	inner   *ProfileChecker
	ttl     time.Duration
	timeout time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
	// generations растут при Invalidate, чтобы проверка, начатая до
	// записи профиля, не положила в кэш устаревший статус
	generations map[string]uint64
	group       singleflight.Group

	now func() time.Time
}

func NewCachedChecker(inner *ProfileChecker, ttl time.Duration) *CachedChecker {
	return &CachedChecker{
		inner:       inner,
		ttl:         ttl,
		timeout:     defaultCheckTimeout,
		entries:     make(map[string]cacheEntry),
		generations: make(map[string]uint64),
		now:         time.Now,
	}
}

// Check возвращает статус из кэша или читает профиль.
// Общий вызов идет на контексте без отмены: отключение первого клиента
// не должно давать "не заполнен" остальным ожидающим.
// Сам вызывающий перестает ждать при отмене своего ctx.
func (c *CachedChecker) Check(ctx context.Context, userID string) Status {
	if st, ok := c.get(userID); ok {
		return st
	}

	ch := c.group.DoChan(userID, func() (interface{}, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()

		gen := c.generation(userID)
		st, err := c.inner.CheckErr(callCtx, userID)
		if err != nil {
			logger.CtxWarn(callCtx, "profile completion check failed, treating as incomplete",
				"user_id", userID, "error", err)
			return st, nil
		}
		c.set(userID, gen, st)
		return st, nil
	})

	select {
	case res := <-ch:
		return copyStatus(res.Val.(Status))
	case <-ctx.Done():
		logger.CtxWarn(ctx, "profile completion check abandoned, treating as incomplete",
			"user_id", userID, "error", ctx.Err())
		return Incomplete(c.inner.Rules())
	}
}

func (c *CachedChecker) get(userID string) (Status, bool) {
	if c.ttl <= 0 {
		return Status{}, false
	}
	c.mu.RLock()
	e, ok := c.entries[userID]
	c.mu.RUnlock()
	if !ok || c.now().After(e.expiresAt) {
		return Status{}, false
	}
	return copyStatus(e.status), true
}

func (c *CachedChecker) generation(userID string) uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generations[userID]
}

func (c *CachedChecker) set(userID string, gen uint64, st Status) {
	if c.ttl <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.generations[userID] != gen {
		return
	}
	c.entries[userID] = cacheEntry{status: copyStatus(st), expiresAt: c.now().Add(c.ttl)}
}

// Invalidate удаляет статус пользователя из кэша
func (c *CachedChecker) Invalidate(userID string) {
	c.mu.Lock()
	delete(c.entries, userID)
	c.generations[userID]++
	c.mu.Unlock()
	c.group.Forget(userID)
}

func copyStatus(st Status) Status {
	missing := make([]string, len(st.MissingFields))
	copy(missing, st.MissingFields)
	return Status{IsComplete: st.IsComplete, MissingFields: missing}
}
