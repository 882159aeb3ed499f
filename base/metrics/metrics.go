package metrics

import (
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/x-xyz/rentableft/base/env"
	"github.com/x-xyz/rentableft/base/log"
)

// Ender provides interface for BumpTime
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)

	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	envName := viper.GetString("env_name")
	if envName == "" {
		envName = env.EnvName()
	}
	appName := viper.GetString("app_name")
	if appName == "" {
		appName = env.AppName()
	}
	return &Metrics{
		pkgName: pkgName,
		tags: []string{
			// using host removes all tags associated with host
			// ref: https://docs.datadoghq.com/developers/dogstatsd/data_types/#host-tag-key
			"host:",
			"pod:" + env.PodName(),
			"env:" + envName,
			"app:" + appName,
		},
	}
}

// Metrics prefixes every key with the package name and forwards to the statsd client
type Metrics struct {
	pkgName string
	tags    []string
}

func (mt *Metrics) key(key string) string {
	return mt.pkgName + "." + key
}

func (mt *Metrics) guard(fn string, key string, tags []string) {
	if err := recover(); err != nil {
		log.Log().WithFields(log.Fields{
			"err":  err,
			"func": fn,
			"key":  mt.key(key) + "#" + strings.Join(tags, "#"),
		}).Error("metrics panic")
	}
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	defer mt.guard("BumpAvg", key, tags)
	report(func(c statsCli) error {
		return c.Gauge(mt.key(key), val, append(mt.tags, parseTag(tags)...), 1)
	}, key, val)
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	defer mt.guard("BumpSum", key, tags)
	report(func(c statsCli) error {
		return c.Count(mt.key(key), int64(val), append(mt.tags, parseTag(tags)...), 1)
	}, key, val)
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	defer mt.guard("BumpHistogram", key, tags)
	report(func(c statsCli) error {
		return c.Histogram(mt.key(key), val, append(mt.tags, parseTag(tags)...), 1)
	}, key, val)
}

// BumpTime starts a timer; call End on the result to record it:
//
//	defer s.BumpTime("my.function").End()
func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeTracker{
		start: time.Now(),
		key:   mt.key(key),
		tags:  append(mt.tags, parseTag(tags)...),
	}
}

type timeTracker struct {
	start time.Time
	key   string
	tags  []string
}

func (t *timeTracker) End() {
	dur := float64(time.Since(t.start)) / float64(time.Millisecond)
	report(func(c statsCli) error {
		return c.TimeInMilliseconds(t.key, dur, t.tags, 1)
	}, t.key, dur)
}

// parseTag turns k1, v1, k2, v2 into k1:v1, k2:v2. A dangling key gets "n/a".
func parseTag(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	arr := make([]string, 0, (len(tags)+1)/2)
	for i := 0; i < len(tags); i += 2 {
		v := TagValueNA
		if i+1 < len(tags) {
			v = tags[i+1]
		}
		arr = append(arr, tags[i]+":"+v)
	}
	return arr
}

// TagValueNA is used for tags whose values are not available.
const TagValueNA = "n/a"
