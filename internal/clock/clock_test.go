// AngelaMos | 2026
// clock_test.go

package clock

import (
	"testing"
	"time"
)

func TestSameDay_IgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2026, 3, 14, 0, 1, 0, 0, time.UTC)
	b := time.Date(2026, 3, 14, 23, 59, 0, 0, time.UTC)

	if !SameDay(a, b) {
		t.Errorf("expected %v and %v to be the same day", a, b)
	}

	c := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if SameDay(a, c) {
		t.Errorf("expected %v and %v to be different days", a, c)
	}
}

func TestSameDay_ComparesLocalCalendarDays(t *testing.T) {
	bangkok, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		t.Fatalf("load location: %v", err)
	}

	// 23:30 Bangkok on the 14th is 16:30 UTC on the 14th; both sit on
	// the same local day as 01:00 Bangkok on the 14th.
	a := time.Date(2026, 3, 14, 23, 30, 0, 0, bangkok)
	b := time.Date(2026, 3, 14, 1, 0, 0, 0, bangkok)

	if !SameDay(a, b) {
		t.Errorf("expected same Bangkok calendar day")
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{
			name: "same day",
			from: time.Date(2026, 1, 1, 8, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 1, 1, 20, 0, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "one week",
			from: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
			want: 7,
		},
		{
			name: "reversed is negative",
			from: time.Date(2026, 1, 8, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
			want: -7,
		},
		{
			name: "across month boundary",
			from: time.Date(2026, 1, 30, 0, 0, 0, 0, time.UTC),
			to:   time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.from, tt.to); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEnumerateDays(t *testing.T) {
	from := time.Date(2026, 2, 27, 13, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 2, 2, 0, 0, 0, time.UTC)

	days := EnumerateDays(from, to)
	if len(days) != 4 {
		t.Fatalf("expected 4 days, got %d", len(days))
	}

	if !days[0].Equal(time.Date(2026, 2, 27, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("first day = %v", days[0])
	}
	if !days[3].Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("last day = %v", days[3])
	}
}

func TestEnumerateDays_EmptyWhenReversed(t *testing.T) {
	from := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	if days := EnumerateDays(from, to); len(days) != 0 {
		t.Errorf("expected no days, got %d", len(days))
	}
}

func TestFixedClock(t *testing.T) {
	instant := time.Date(2026, 6, 15, 14, 30, 0, 0, time.UTC)
	c := NewFixed(instant)

	if !c.Now().Equal(instant) {
		t.Errorf("Now() = %v, want %v", c.Now(), instant)
	}

	wantToday := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	if !c.Today().Equal(wantToday) {
		t.Errorf("Today() = %v, want %v", c.Today(), wantToday)
	}
}
