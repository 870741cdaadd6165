package routines

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

type catalogRepo interface {
	Get(ctx context.Context, id int) (*Routine, error)
	DayFor(ctx context.Context, routineID int, weekday time.Weekday) (*Day, error)
}

// Catalog is a read-through cache in front of the routines repo. Routine
// plans change rarely but get read on every session resolution and every
// progress calculation, so they are kept in memory for a while.
type Catalog struct {
	repo       catalogRepo
	cache      *freecache.Cache
	ttlSeconds int
}

func NewCatalog(repo catalogRepo, ttlSeconds int) *Catalog {
	megabyte := 1024 * 1024
	return &Catalog{
		repo:       repo,
		cache:      freecache.NewCache(10 * megabyte),
		ttlSeconds: ttlSeconds,
	}
}

func (c *Catalog) Routine(ctx context.Context, id int) (*Routine, error) {
	cacheKey := []byte(fmt.Sprintf("routine::%d", id))
	if cached, err := c.cache.Get(cacheKey); err == nil {
		routine := &Routine{}
		if err := json.Unmarshal(cached, routine); err == nil {
			return routine, nil
		}
		log.Errorf("failed to unmarshal cached routine %d: %s", id, err)
	}

	routine, err := c.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	c.set(cacheKey, routine)
	return routine, nil
}

func (c *Catalog) DayFor(ctx context.Context, routineID int, weekday time.Weekday) (*Day, error) {
	cacheKey := []byte(fmt.Sprintf("day::%d::%d", routineID, int(weekday)))
	if cached, err := c.cache.Get(cacheKey); err == nil {
		day := &Day{}
		if err := json.Unmarshal(cached, day); err == nil {
			return day, nil
		}
		log.Errorf("failed to unmarshal cached routine day [routine %d, weekday %s]: %s", routineID, weekday, err)
	}

	day, err := c.repo.DayFor(ctx, routineID, weekday)
	if err != nil {
		return nil, err
	}

	c.set(cacheKey, day)
	return day, nil
}

// Invalidate drops all cached entries for the given routine.
func (c *Catalog) Invalidate(routineID int) {
	c.cache.Del([]byte(fmt.Sprintf("routine::%d", routineID)))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		c.cache.Del([]byte(fmt.Sprintf("day::%d::%d", routineID, int(wd))))
	}
}

func (c *Catalog) set(key []byte, value any) {
	valueBytes, err := json.Marshal(value)
	if err != nil {
		log.Errorf("failed to marshal routine cache entry %s: %s", key, err)
		return
	}
	if err := c.cache.Set(key, valueBytes, c.ttlSeconds); err != nil {
		log.Errorf("failed to set routine cache entry %s: %s", key, err)
	}
}
