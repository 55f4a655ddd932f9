package logger

import (
	"os"
	"sync/atomic"
	"testing"
)

func TestWithComponent(t *testing.T) {
	log := Logger()
	entry := log.WithComponent("test")
	if v, ok := entry.Entry.Data["component"]; !ok || v != "test" {
		t.Fatalf("component field missing: %v", entry.Entry.Data)
	}
}

func TestConfigureInvalidLevel(t *testing.T) {
	// Ensure environment variables do not override the provided level
	t.Setenv("LOG_LEVEL", "")

	log := Logger()
	if err := log.Configure("invalid", "json", "stdout", 0); err == nil {
		t.Fatalf("expected error for invalid level")
	}
}

func TestWithEnv(t *testing.T) {
	os.Setenv("FOO", "bar")
	log := Logger()
	entry := log.WithEnv("FOO")
	if v, ok := entry.Entry.Data["FOO"]; !ok || v != "bar" {
		t.Fatalf("env field not set: %v", entry.Entry.Data)
	}
}

func TestRecordRequest(t *testing.T) {
	RecordRequest("exchange/ticker", 128)
	RecordRequest("exchange/ticker", 64)
	RecordRequestError("exchange/ticker")

	s := endpointStats("exchange/ticker")
	if got := atomic.LoadInt64(&s.requests); got < 2 {
		t.Errorf("requests = %d, want >= 2", got)
	}
	if got := atomic.LoadInt64(&s.errors); got < 1 {
		t.Errorf("errors = %d, want >= 1", got)
	}
	if got := atomic.LoadInt64(&s.bytes); got < 192 {
		t.Errorf("bytes = %d, want >= 192", got)
	}
}
