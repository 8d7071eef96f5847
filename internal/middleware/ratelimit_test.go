// AngelaMos | 2026
// ratelimit_test.go

package middleware

import (
	"testing"
	"time"
)

func TestPerWindow(t *testing.T) {
	limit := PerWindow(100, 20, 30*time.Second)
	if limit.Rate != 100 || limit.Burst != 20 {
		t.Errorf("PerWindow rate/burst = %d/%d, want 100/20",
			limit.Rate, limit.Burst)
	}
	if limit.Period != 30*time.Second {
		t.Errorf("PerWindow period = %v, want 30s", limit.Period)
	}
}

func TestPerWindow_NonPositiveWindowDefaultsToMinute(t *testing.T) {
	for _, window := range []time.Duration{0, -time.Second} {
		if got := PerWindow(100, 20, window).Period; got != time.Minute {
			t.Errorf("PerWindow(%v).Period = %v, want 1m", window, got)
		}
	}
}
