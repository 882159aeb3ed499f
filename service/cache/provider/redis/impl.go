package redis

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/metrics"
	"github.com/x-xyz/rentableft/service/cache/provider"
)

type impl struct {
	pool *redis.Pool
	met  metrics.Service
}

func NewRedis(pool *redis.Pool) provider.Provider {
	return &impl{
		pool: pool,
		met:  metrics.New("redis"),
	}
}

func (im *impl) do(c ctx.Ctx, cmd string, args ...interface{}) (interface{}, error) {
	defer im.met.BumpTime("cmd.time", "cmd", cmd).End()
	conn, err := im.pool.GetContext(c)
	if err != nil {
		im.met.BumpSum("conn.err", 1)
		return nil, err
	}
	defer conn.Close()
	return conn.Do(cmd, args...)
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := redis.Bytes(im.do(c, "GET", key))
	if err == redis.ErrNil {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"key": key, "err": err}).Error("redis GET failed")
		return nil, 0, err
	}
	ms, err := redis.Int64(im.do(c, "PTTL", key))
	if err != nil {
		c.WithFields(log.Fields{"key": key, "err": err}).Error("redis PTTL failed")
		return nil, 0, err
	}
	if ms < 0 {
		// -1 no expiry, -2 expired in between
		ms = 0
	}
	return val, time.Duration(ms) * time.Millisecond, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	args := []interface{}{key, value}
	if ttl > 0 {
		args = append(args, "PX", ttl.Milliseconds())
	}
	if _, err := im.do(c, "SET", args...); err != nil {
		c.WithFields(log.Fields{"key": key, "err": err}).Error("redis SET failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if _, err := im.do(c, "DEL", key); err != nil {
		c.WithFields(log.Fields{"key": key, "err": err}).Error("redis DEL failed")
		return err
	}
	return nil
}
