package metrics

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/x-xyz/rentableft/base/log"
)

const (
	ddClientsSize    = 16 // needs to be 2^n
	ddClientsIdxMask = ddClientsSize - 1

	ddPort = 8125
	// buffer 10 counters before sending to statsd
	bufferMetrics = 10
)

var (
	initOnce = sync.Once{}

	// round robin index into clients
	clientsIdx = int32(0)
	clients    []statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

// initClients connects to the agent at datadog_host. Without a host every
// client is a LogClient so local runs and tests never dial.
func initClients() {
	host := viper.GetString("datadog_host")
	clients = make([]statsCli, ddClientsSize)
	if host == "" {
		for i := range clients {
			clients[i] = &LogClient{}
		}
		return
	}

	addr := fmt.Sprintf("%s:%d", host, ddPort)
	for i := 0; i < ddClientsSize; i++ {
		c, err := statsd.New(addr, statsd.WithMaxMessagesPerPayload(bufferMetrics))
		if err != nil {
			log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Error("can't talk to datadog agent, fallback to log")
			clients[i] = &LogClient{}
			continue
		}
		clients[i] = c
	}
	log.Log().WithField("addr", addr).Info("datadog agent connected")
}

func report(send func(statsCli) error, key string, val float64) {
	initOnce.Do(initClients)
	i := atomic.AddInt32(&clientsIdx, 1) & ddClientsIdxMask
	if err := send(clients[i]); err != nil {
		log.Log().WithFields(log.Fields{"err": err, "key": key, "val": val}).Error("Bump fail")
	}
}
