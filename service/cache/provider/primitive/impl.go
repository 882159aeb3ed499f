package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in-process cache of sizeMB megabytes
func NewPrimitive(name string, sizeMB int) provider.Provider {
	return &impl{
		name:  name,
		cache: freecache.NewCache(sizeMB * 1024 * 1024),
	}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"cache": im.name, "key": key, "err": err}).Error("freecache.Get failed")
		return nil, 0, err
	}
	return val, time.Duration(ttl) * time.Second, nil
}

// Set rounds ttl down to whole seconds; a ttl under one second never expires
func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithFields(log.Fields{"cache": im.name, "key": key, "err": err}).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(_ ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
