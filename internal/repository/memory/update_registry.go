package memory

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// UpdateRegistry remembers recently handled webhook update ids so that
// redeliveries are acknowledged without being processed twice.
type UpdateRegistry struct {
	cache *cache.Cache
}

func NewUpdateRegistry(window time.Duration) *UpdateRegistry {
	return &UpdateRegistry{
		cache: cache.New(window, window),
	}
}

func key(channel string, updateID int64) string {
	return channel + ":" + strconv.FormatInt(updateID, 10)
}

// MarkSeen records the id and reports whether it was new. It is atomic, so
// two concurrent deliveries of the same update cannot both see true.
func (r *UpdateRegistry) MarkSeen(channel string, updateID int64) bool {
	return r.cache.Add(key(channel, updateID), struct{}{}, cache.DefaultExpiration) == nil
}

// Forget drops an id so a failed update can be processed on redelivery.
func (r *UpdateRegistry) Forget(channel string, updateID int64) {
	r.cache.Delete(key(channel, updateID))
}
