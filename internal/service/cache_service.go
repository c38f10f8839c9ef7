package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ignatzorin/recruitment-backend/internal/domain/entity"
	"github.com/ignatzorin/recruitment-backend/internal/domain/repository"
)

// CacheService - кэш в памяти с TTL и сбросом по префиксу.
type CacheService struct {
	mu    sync.RWMutex
	cache map[string]*cacheEntry
}

type cacheEntry struct {
	data      any
	expiresAt time.Time
}

// NewCacheService запускает фоновую очистку, которая завершается вместе с ctx.
func NewCacheService(ctx context.Context) *CacheService {
	cs := &CacheService{
		cache: make(map[string]*cacheEntry),
	}

	go cs.cleanup(ctx, 5*time.Minute)

	return cs
}

func (cs *CacheService) Get(key string) (any, bool) {
	cs.mu.RLock()
	defer cs.mu.RUnlock()

	entry, exists := cs.cache[key]
	if !exists || time.Now().After(entry.expiresAt) {
		return nil, false
	}
	return entry.data, true
}

func (cs *CacheService) Set(key string, value any, ttl time.Duration) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	cs.cache[key] = &cacheEntry{
		data:      value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (cs *CacheService) InvalidateByPrefix(prefix string) {
	cs.mu.Lock()
	defer cs.mu.Unlock()

	for key := range cs.cache {
		if strings.HasPrefix(key, prefix) {
			delete(cs.cache, key)
		}
	}
}

func (cs *CacheService) cleanup(ctx context.Context, every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
		cs.mu.Lock()
		now := time.Now()
		for key, entry := range cs.cache {
			if now.After(entry.expiresAt) {
				delete(cs.cache, key)
			}
		}
		cs.mu.Unlock()
	}
}

func courseCacheKey(courseID uuid.UUID) string {
	return "course:" + courseID.String()
}

// CachedCatalog кэширует справочник курсов: он меняется редко, а читается
// при каждом изменении выбора и при подаче профиля.
type CachedCatalog struct {
	next  repository.CourseCatalog
	cache *CacheService
	ttl   time.Duration
}

var _ repository.CourseCatalog = (*CachedCatalog)(nil)

func NewCachedCatalog(next repository.CourseCatalog, cache *CacheService, ttl time.Duration) *CachedCatalog {
	return &CachedCatalog{next: next, cache: cache, ttl: ttl}
}

func (c *CachedCatalog) FindCourse(ctx context.Context, courseID uuid.UUID) (*entity.Course, error) {
	if v, ok := c.cache.Get(courseCacheKey(courseID)); ok {
		course := v.(entity.Course)
		return &course, nil
	}

	course, err := c.next.FindCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	c.cache.Set(courseCacheKey(courseID), *course, c.ttl)
	return course, nil
}

// FindCourses добирает из источника только курсы, которых нет в кэше.
func (c *CachedCatalog) FindCourses(ctx context.Context, courseIDs []uuid.UUID) ([]entity.Course, error) {
	found := make(map[uuid.UUID]entity.Course, len(courseIDs))
	var missing []uuid.UUID
	for _, id := range courseIDs {
		if v, ok := c.cache.Get(courseCacheKey(id)); ok {
			found[id] = v.(entity.Course)
			continue
		}
		missing = append(missing, id)
	}

	if len(missing) > 0 {
		loaded, err := c.next.FindCourses(ctx, missing)
		if err != nil {
			return nil, err
		}
		for _, course := range loaded {
			c.cache.Set(courseCacheKey(course.ID), course, c.ttl)
			found[course.ID] = course
		}
	}

	out := make([]entity.Course, 0, len(found))
	for _, id := range courseIDs {
		if course, ok := found[id]; ok {
			out = append(out, course)
		}
	}
	return out, nil
}

// Invalidate сбрасывает закэшированные курсы, например после обновления справочника.
func (c *CachedCatalog) Invalidate() {
	c.cache.InvalidateByPrefix("course:")
}
