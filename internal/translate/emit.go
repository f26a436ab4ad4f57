package translate

import (
	"fmt"
	"strconv"
	"strings"
)

// Expression is a translated five-field cron expression.
//
// Field values are plain cron field strings; String() renders the line
// consumable verbatim by a crontab.
type Expression struct {
	Minute string
	Hour   string
	Dom    string
	Month  string
	Dow    string
}

func (e Expression) String() string {
	return strings.Join(e.FieldList(), " ")
}

// FieldList returns the fields in crontab order (minute first).
func (e Expression) FieldList() []string {
	return []string{e.Minute, e.Hour, e.Dom, e.Month, e.Dow}
}

// Emit maps a matched Pattern onto cron fields and a description.
//
// It is total over patterns produced by Match: every variant has exactly
// one mapping and emission never fails. The description is generated from
// the pattern itself, not re-derived from the cron fields, so it stays
// rich even where the fields alone would be ambiguous. Raw passthrough is
// the one degraded case: its description is "custom schedule: <expr>".
func Emit(p Pattern) (Expression, string) {
	minute := strconv.Itoa(p.Minute)
	hour := strconv.Itoa(p.Hour)
	clock := formatClock(p.Hour, p.Minute)

	switch p.Kind {
	case KindRawCron:
		expr := Expression{p.Raw[0], p.Raw[1], p.Raw[2], p.Raw[3], p.Raw[4]}
		return expr, "custom schedule: " + expr.String()

	case KindDaily:
		return Expression{minute, hour, "*", "*", "*"}, "Daily at " + clock

	case KindWeekdays:
		return Expression{minute, hour, "*", "*", "1-5"}, "Weekdays at " + clock

	case KindWeekends:
		return Expression{minute, hour, "*", "*", "0,6"}, "Weekends at " + clock

	case KindWeekly:
		return Expression{minute, hour, "*", "*", joinInts(p.Weekdays, ",")},
			"Weekly on " + describeWeekdays(p.Weekdays) + " at " + clock

	case KindDayList:
		return Expression{minute, hour, "*", "*", joinInts(p.Weekdays, ",")},
			describeWeekdays(p.Weekdays) + " at " + clock

	case KindMonthly:
		expr := Expression{minute, hour, joinInts(p.Days, ","), "*", "*"}
		if p.DefaultDay {
			return expr, fmt.Sprintf("Monthly on day 1 at %s (default day)", clock)
		}
		return expr, fmt.Sprintf("Monthly on %s at %s", joinInts(p.Days, ", "), clock)

	case KindOnDates:
		return Expression{minute, hour, joinInts(p.Days, ","), "*", "*"},
			fmt.Sprintf("On %s at %s", joinInts(p.Days, ", "), clock)

	case KindEveryMinutes:
		if p.Every == 1 {
			return Expression{"*", "*", "*", "*", "*"}, "Every minute"
		}
		return Expression{"*/" + strconv.Itoa(p.Every), "*", "*", "*", "*"},
			fmt.Sprintf("Every %d minutes", p.Every)

	case KindEveryHours:
		hourField := "*/" + strconv.Itoa(p.Every)
		desc := fmt.Sprintf("Every %d hours", p.Every)
		if p.Every == 1 {
			hourField = "*"
			desc = "Every hour"
		}
		if p.Minute != 0 {
			desc += " at :" + pad2(p.Minute)
		}
		return Expression{minute, hourField, "*", "*", "*"}, desc

	case KindHourly:
		if p.Minute == 0 {
			return Expression{"0", "*", "*", "*", "*"}, "Every hour on the hour"
		}
		return Expression{minute, "*", "*", "*", "*"}, "Every hour at :" + pad2(p.Minute)

	default:
		// Unreachable for patterns built by Match; keep the totality
		// contract even for a zero Pattern.
		return Expression{"*", "*", "*", "*", "*"}, "Every minute"
	}
}

// Translate is the composed entry point: Match then Emit.
func Translate(phrase string) (Expression, string, error) {
	p, err := Match(phrase)
	if err != nil {
		return Expression{}, "", err
	}
	expr, desc := Emit(p)
	return expr, desc, nil
}
