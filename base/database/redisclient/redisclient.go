package redisclient

import (
	"context"
	"runtime"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/rentableft/base/backoff"
	"github.com/x-xyz/rentableft/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
)

// RedisParam is the optional param for redis connection
type RedisParam struct {
	PoolMultiplier float64
	// Retries is how many extra dial attempts are made before giving up
	Retries int
}

// MustConnectRedis panics if the connection fails
func MustConnectRedis(uri, password string, param ...RedisParam) *redis.Pool {
	p, err := ConnectRedis(uri, password, param...)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": uri, "err": err}).Panic("fail to dial Redis")
	}
	return p
}

// ConnectRedis builds a pool for uri and checks it with a PING
func ConnectRedis(uri, password string, param ...RedisParam) (*redis.Pool, error) {
	maxIdle := 200
	maxActive := 1024
	retries := 0
	if len(param) > 0 {
		cpu := float64(runtime.NumCPU())
		// allowing 25% idle connection
		maxIdle = int(cpu * param[0].PoolMultiplier / 4)
		maxActive = int(cpu * param[0].PoolMultiplier)
		retries = param[0].Retries
	}

	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if password != "" {
		opts = append(opts, redis.DialPassword(password))
	}
	p := &redis.Pool{
		MaxIdle:     maxIdle,
		MaxActive:   maxActive,
		Wait:        true,
		IdleTimeout: 240 * time.Second,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	b := backoff.NewExponential(time.Second, 8*time.Second)
	for {
		err := ping(p)
		if err == nil {
			break
		}
		logger := log.Log().WithFields(log.Fields{
			"redisURI": uri,
			"err":      err,
			"attempt":  b.Attempts(),
		})
		if b.Attempts() >= retries {
			logger.Error("fail to dial Redis")
			return nil, err
		}
		logger.Warn("fail to dial Redis, retrying")
		if err := b.Wait(context.Background()); err != nil {
			return nil, err
		}
	}

	log.Log().WithField("redisURI", uri).Info("redis connected")
	return p, nil
}

func ping(p *redis.Pool) error {
	c, err := p.Dial()
	if err != nil {
		return err
	}
	defer c.Close()
	_, err = c.Do("PING")
	return err
}
