package preview

import (
	"testing"
	"time"

	"cronspeak/internal/translate"
)

func TestNextEveryFifteenMinutes(t *testing.T) {
	t.Parallel()
	expr := translate.Expression{Minute: "*/15", Hour: "*", Dom: "*", Month: "*", Dow: "*"}
	after := time.Date(2026, 8, 25, 10, 2, 0, 0, time.UTC)

	times, err := Next(expr, after, 3)
	if err != nil {
		t.Fatalf("Next error: %v", err)
	}
	want := []time.Time{
		time.Date(2026, 8, 25, 10, 15, 0, 0, time.UTC),
		time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC),
		time.Date(2026, 8, 25, 10, 45, 0, 0, time.UTC),
	}
	if len(times) != len(want) {
		t.Fatalf("got %d times, want %d", len(times), len(want))
	}
	for i := range want {
		if !times[i].Equal(want[i]) {
			t.Fatalf("times[%d] = %v, want %v", i, times[i], want[i])
		}
	}
}

func TestNextWeekday(t *testing.T) {
	t.Parallel()
	// 2026-08-25 is a Tuesday; next Monday 03:30 run is the 31st.
	expr := translate.Expression{Minute: "30", Hour: "3", Dom: "*", Month: "*", Dow: "1"}
	after := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	times, err := Next(expr, after, 1)
	if err != nil {
		t.Fatalf("Next error: %v", err)
	}
	want := time.Date(2026, 8, 31, 3, 30, 0, 0, time.UTC)
	if len(times) != 1 || !times[0].Equal(want) {
		t.Fatalf("times = %v, want [%v]", times, want)
	}
}

func TestNextZeroCount(t *testing.T) {
	t.Parallel()
	expr := translate.Expression{Minute: "*", Hour: "*", Dom: "*", Month: "*", Dow: "*"}
	times, err := Next(expr, time.Now(), 0)
	if err != nil || times != nil {
		t.Fatalf("Next = %v, %v; want nil, nil", times, err)
	}
}

func TestNextRejectsUnschedulable(t *testing.T) {
	t.Parallel()
	// Syntactically well-formed for the translator, but out of range for
	// the cron scheduler.
	expr := translate.Expression{Minute: "99", Hour: "*", Dom: "*", Month: "*", Dow: "*"}
	if _, err := Next(expr, time.Now(), 1); err == nil {
		t.Fatal("expected error for out-of-range minute")
	}
}
