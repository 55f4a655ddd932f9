package logger

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

type endpointStat struct {
	requests int64
	errors   int64
	bytes    int64
}

var (
	warnCount  int64
	errorCount int64
	endpoints  sync.Map // map[string]*endpointStat
)

func recordWarn(component string) {
	_ = component
	atomic.AddInt64(&warnCount, 1)
}

func recordError(component string) {
	_ = component
	atomic.AddInt64(&errorCount, 1)
}

// RecordRequest counts a completed API request against its endpoint path.
func RecordRequest(endpoint string, size int) {
	s := endpointStats(endpoint)
	atomic.AddInt64(&s.requests, 1)
	atomic.AddInt64(&s.bytes, int64(size))
}

// RecordRequestError counts a failed API request against its endpoint path.
func RecordRequestError(endpoint string) {
	s := endpointStats(endpoint)
	atomic.AddInt64(&s.errors, 1)
}

func endpointStats(endpoint string) *endpointStat {
	v, _ := endpoints.LoadOrStore(endpoint, &endpointStat{})
	return v.(*endpointStat)
}

// StartReport begins periodic logging of per-endpoint request statistics.
func StartReport(ctx context.Context, log *Log, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		for {
			select {
			case <-ctx.Done():
				ticker.Stop()
				return
			case <-ticker.C:
				logReport(log)
			}
		}
	}()
}

func logReport(log *Log) {
	endpointData := map[string]map[string]int64{}
	endpoints.Range(func(k, v any) bool {
		name := k.(string)
		s := v.(*endpointStat)
		endpointData[name] = map[string]int64{
			"requests": atomic.LoadInt64(&s.requests),
			"errors":   atomic.LoadInt64(&s.errors),
			"bytes":    atomic.LoadInt64(&s.bytes),
		}
		return true
	})

	log.WithComponent("report").WithFields(Fields{
		"warns":     atomic.LoadInt64(&warnCount),
		"errors":    atomic.LoadInt64(&errorCount),
		"endpoints": endpointData,
	}).Info("periodic report")
}
