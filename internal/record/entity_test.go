// AngelaMos | 2026
// entity_test.go

package record

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestComputeMoneySaved(t *testing.T) {
	price := decimal.NewFromInt(25000)

	tests := []struct {
		name     string
		smoked   int
		baseline int
		price    decimal.Decimal
		perPack  int
		want     string
	}{
		{
			name:     "smoked five of twenty baseline",
			smoked:   5,
			baseline: 20,
			price:    price,
			perPack:  20,
			want:     "18750",
		},
		{
			name:     "smoked nothing saves full baseline",
			smoked:   0,
			baseline: 20,
			price:    price,
			perPack:  20,
			want:     "25000",
		},
		{
			name:     "smoked at baseline saves nothing",
			smoked:   20,
			baseline: 20,
			price:    price,
			perPack:  20,
			want:     "0",
		},
		{
			name:     "smoked over baseline is clamped to zero",
			smoked:   30,
			baseline: 20,
			price:    price,
			perPack:  20,
			want:     "0",
		},
		{
			name:     "zero cigarettes per pack yields zero",
			smoked:   5,
			baseline: 20,
			price:    price,
			perPack:  0,
			want:     "0",
		},
		{
			name:     "negative price yields zero",
			smoked:   5,
			baseline: 20,
			price:    decimal.NewFromInt(-1),
			perPack:  20,
			want:     "0",
		},
		{
			name:     "fractional price rounds half up to two places",
			smoked:   17,
			baseline: 20,
			price:    decimal.NewFromFloat(10.55),
			perPack:  12,
			want:     "2.64", // 3 * 10.55/12 = 2.6375
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeMoneySaved(tt.smoked, tt.baseline, tt.price, tt.perPack)
			if got.String() != tt.want {
				t.Errorf("ComputeMoneySaved() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestComputeMoneySaved_NonIncreasingInSmoked(t *testing.T) {
	price := decimal.NewFromInt(25000)

	prev := ComputeMoneySaved(0, 20, price, 20)
	for smoked := 1; smoked <= 40; smoked++ {
		cur := ComputeMoneySaved(smoked, 20, price, 20)
		if cur.GreaterThan(prev) {
			t.Fatalf(
				"money saved increased from %s to %s at smoked=%d",
				prev, cur, smoked,
			)
		}
		if cur.IsNegative() {
			t.Fatalf("money saved went negative at smoked=%d: %s", smoked, cur)
		}
		prev = cur
	}
}

func TestComputeIsPass(t *testing.T) {
	limit := 10

	tests := []struct {
		name   string
		smoked int
		limit  *int
		want   bool
	}{
		{"at limit passes", 10, &limit, true},
		{"under limit passes", 9, &limit, true},
		{"over limit fails", 11, &limit, false},
		{"no limit always passes", 99, nil, true},
		{"zero smoked passes", 0, &limit, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeIsPass(tt.smoked, tt.limit); got != tt.want {
				t.Errorf("ComputeIsPass(%d, %v) = %v, want %v",
					tt.smoked, tt.limit, got, tt.want)
			}
		})
	}
}

func TestCravingLevelText(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name  string
		level *int
		want  string
	}{
		{"absent", nil, "Not recorded"},
		{"lowest", intPtr(1), "Very low"},
		{"middle", intPtr(3), "Moderate"},
		{"highest", intPtr(5), "Very high"},
		{"below scale", intPtr(0), "Unknown"},
		{"above scale", intPtr(6), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := DailyRecord{CravingLevel: tt.level}
			if got := rec.CravingLevelText(); got != tt.want {
				t.Errorf("CravingLevelText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRecordDayHelpers(t *testing.T) {
	today := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	rec := DailyRecord{
		RecordDate: time.Date(2026, 5, 10, 15, 45, 0, 0, time.UTC),
	}
	if !rec.IsToday(today) {
		t.Error("record dated today should report IsToday")
	}
	if rec.IsFutureDate(today) {
		t.Error("record dated today is not a future date")
	}
	if !rec.IsValid(today) {
		t.Error("record dated today should be valid")
	}

	future := DailyRecord{
		RecordDate: time.Date(2026, 5, 11, 0, 0, 0, 0, time.UTC),
	}
	if !future.IsFutureDate(today) {
		t.Error("record dated tomorrow should be a future date")
	}
	if future.IsValid(today) {
		t.Error("future-dated record should not be valid")
	}

	deletedAt := time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC)
	deleted := DailyRecord{
		RecordDate: time.Date(2026, 5, 9, 0, 0, 0, 0, time.UTC),
		DeletedAt:  &deletedAt,
	}
	if deleted.IsValid(today) {
		t.Error("soft-deleted record should not be valid")
	}
}
