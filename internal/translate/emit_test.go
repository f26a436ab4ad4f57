package translate

import "testing"

func TestEmitFieldMapping(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pattern Pattern
		want    Expression
	}{
		{
			name:    "daily",
			pattern: Pattern{Kind: KindDaily, Hour: 5, Minute: 30},
			want:    Expression{"30", "5", "*", "*", "*"},
		},
		{
			name:    "weekdays",
			pattern: Pattern{Kind: KindWeekdays, Hour: 7, Minute: 15},
			want:    Expression{"15", "7", "*", "*", "1-5"},
		},
		{
			name:    "weekends",
			pattern: Pattern{Kind: KindWeekends, Hour: 19, Minute: 5},
			want:    Expression{"5", "19", "*", "*", "0,6"},
		},
		{
			name:    "weekly",
			pattern: Pattern{Kind: KindWeekly, Weekdays: []int{0}, Hour: 3, Minute: 30},
			want:    Expression{"30", "3", "*", "*", "0"},
		},
		{
			name:    "monthly",
			pattern: Pattern{Kind: KindMonthly, Days: []int{1, 15}, Hour: 4},
			want:    Expression{"0", "4", "1,15", "*", "*"},
		},
		{
			name:    "on dates",
			pattern: Pattern{Kind: KindOnDates, Days: []int{10, 20}, Hour: 22, Minute: 30},
			want:    Expression{"30", "22", "10,20", "*", "*"},
		},
		{
			name:    "every n minutes",
			pattern: Pattern{Kind: KindEveryMinutes, Every: 15},
			want:    Expression{"*/15", "*", "*", "*", "*"},
		},
		{
			name:    "every minute collapses the step",
			pattern: Pattern{Kind: KindEveryMinutes, Every: 1},
			want:    Expression{"*", "*", "*", "*", "*"},
		},
		{
			name:    "every n hours",
			pattern: Pattern{Kind: KindEveryHours, Every: 2},
			want:    Expression{"0", "*/2", "*", "*", "*"},
		},
		{
			name:    "hourly at",
			pattern: Pattern{Kind: KindHourly, Minute: 10},
			want:    Expression{"10", "*", "*", "*", "*"},
		},
		{
			name:    "raw passthrough",
			pattern: Pattern{Kind: KindRawCron, Raw: []string{"30", "3", "*", "*", "1"}},
			want:    Expression{"30", "3", "*", "*", "1"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, desc := Emit(tt.pattern)
			if got != tt.want {
				t.Fatalf("Emit(%+v) = %v, want %v", tt.pattern, got, tt.want)
			}
			if desc == "" {
				t.Fatalf("Emit(%+v) produced an empty description", tt.pattern)
			}
		})
	}
}

func TestEmitNoLeadingZeros(t *testing.T) {
	t.Parallel()
	expr, _ := Emit(Pattern{Kind: KindDaily, Hour: 7, Minute: 5})
	if expr.Minute != "5" || expr.Hour != "7" {
		t.Fatalf("expected unpadded fields, got %q %q", expr.Minute, expr.Hour)
	}
}
