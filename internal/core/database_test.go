// AngelaMos | 2026
// database_test.go

package core

import (
	"testing"
	"time"
)

func TestJitteredDuration(t *testing.T) {
	base := time.Hour
	for i := 0; i < 100; i++ {
		got := jitteredDuration(base)
		if got < base || got >= base+base/7 {
			t.Fatalf("jitteredDuration(%v) = %v, want in [%v, %v)",
				base, got, base, base+base/7)
		}
	}
}

func TestJitteredDuration_NonPositiveBase(t *testing.T) {
	// An operator can zero out conn_max_lifetime; that must not panic.
	for _, base := range []time.Duration{0, -time.Minute} {
		if got := jitteredDuration(base); got != base {
			t.Errorf("jitteredDuration(%v) = %v, want %v", base, got, base)
		}
	}
}
