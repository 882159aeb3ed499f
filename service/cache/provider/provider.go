package provider

import (
	"errors"
	"time"

	"github.com/x-xyz/rentableft/base/ctx"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// Provider stores raw bytes with a ttl
type Provider interface {
	Get(c ctx.Ctx, key string) ([]byte, time.Duration, error)
	Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(c ctx.Ctx, key string) error
}
