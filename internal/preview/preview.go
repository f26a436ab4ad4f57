// Package preview computes upcoming fire times for a translated cron
// expression. It exists purely for presentation ("Next runs" in the CLI
// and JSON report) and never gates translation: an expression robfig/cron
// cannot schedule degrades to an empty preview.
package preview

import (
	"time"

	"github.com/robfig/cron/v3"

	"cronspeak/internal/translate"
)

// parser accepts the standard five fields, matching what translate emits.
// Descriptors (@hourly etc.) are deliberately excluded; the translator
// never produces them.
var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Next returns up to n fire times for expr after the given instant.
//
// Raw passthrough expressions are only checked for syntactic
// well-formedness upstream, so robfig/cron may still reject one here
// (e.g. an out-of-range literal); in that case Next returns the parse
// error and no times.
func Next(expr translate.Expression, after time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}
	schedule, err := parser.Parse(expr.String())
	if err != nil {
		return nil, err
	}
	times := make([]time.Time, 0, n)
	at := after
	for i := 0; i < n; i++ {
		at = schedule.Next(at)
		if at.IsZero() {
			break
		}
		times = append(times, at)
	}
	return times, nil
}
