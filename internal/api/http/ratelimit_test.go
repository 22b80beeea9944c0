package http

import (
	"testing"
	"time"
)

func TestLoginRateLimiterBurstThenDeny(t *testing.T) {
	l := NewLoginRateLimiter(60, 3)
	now := time.Now()

	for i := 0; i < 3; i++ {
		if !l.allow("10.0.0.1", now) {
			t.Fatalf("attempt %d within burst was denied", i+1)
		}
	}
	if l.allow("10.0.0.1", now) {
		t.Fatalf("attempt beyond burst was allowed")
	}
}

func TestLoginRateLimiterIsolatesClients(t *testing.T) {
	l := NewLoginRateLimiter(60, 1)
	now := time.Now()

	if !l.allow("10.0.0.1", now) {
		t.Fatalf("first client denied")
	}
	if !l.allow("10.0.0.2", now) {
		t.Fatalf("second client throttled by first client's usage")
	}
	if l.allow("10.0.0.1", now) {
		t.Fatalf("first client not throttled after exhausting burst")
	}
}

func TestLoginRateLimiterEvictsIdleVisitors(t *testing.T) {
	l := NewLoginRateLimiter(60, 1)
	start := time.Now()

	l.allow("10.0.0.1", start)
	l.allow("10.0.0.2", start.Add(visitorIdleEviction+time.Minute))

	l.mu.Lock()
	_, stillTracked := l.visitors["10.0.0.1"]
	l.mu.Unlock()
	if stillTracked {
		t.Fatalf("idle visitor was not evicted")
	}
}

func TestLoginRateLimiterDefaults(t *testing.T) {
	l := NewLoginRateLimiter(0, 0)
	if !l.allow("10.0.0.1", time.Now()) {
		t.Fatalf("defaulted limiter denied first attempt")
	}
}
