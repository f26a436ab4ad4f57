package translate

import (
	"sort"
	"strconv"
	"strings"
)

// ---- Time fragments ----

// parseClock resolves a time fragment into (hour, minute).
//
// Accepted forms: "HH:MM" (24-hour), a bare hour "H", "midnight", "noon",
// and am/pm suffixes ("7pm", "6:45 am"). Returns a *ParseError of kind
// ErrInvalidTime on range or format violations.
func parseClock(raw string) (int, int, error) {
	frag := strings.ToLower(strings.TrimSpace(raw))
	switch frag {
	case "":
		return 0, 0, invalidTime(raw, "time is empty")
	case "midnight":
		return 0, 0, nil
	case "noon":
		return 12, 0, nil
	}

	// "6:45 pm" -> "6:45pm"
	frag = strings.ReplaceAll(frag, " ", "")

	meridian := ""
	if v, ok := strings.CutSuffix(frag, "am"); ok {
		frag, meridian = v, "am"
	} else if v, ok := strings.CutSuffix(frag, "pm"); ok {
		frag, meridian = v, "pm"
	}

	hourPart, minutePart, hasMinute := strings.Cut(frag, ":")
	if strings.Contains(minutePart, ":") {
		return 0, 0, invalidTime(raw, "expected HH:MM")
	}

	hour, err := strconv.Atoi(hourPart)
	if err != nil {
		return 0, 0, invalidTime(raw, "hour is not a number")
	}
	if hour < 0 || hour > 23 {
		return 0, 0, invalidTime(raw, "hour out of range 0-23")
	}

	minute := 0
	if hasMinute {
		minute, err = strconv.Atoi(minutePart)
		if err != nil {
			return 0, 0, invalidTime(raw, "minute is not a number")
		}
		if minute < 0 || minute > 59 {
			return 0, 0, invalidTime(raw, "minute out of range 0-59")
		}
	}

	if meridian != "" {
		if hour > 12 {
			return 0, 0, invalidTime(raw, "hour out of range 1-12 for am/pm")
		}
		if meridian == "am" {
			if hour == 12 {
				hour = 0
			}
		} else if hour != 12 {
			hour += 12
		}
	}

	return hour, minute, nil
}

// formatClock renders a 24-hour HH:MM value for descriptions.
func formatClock(hour, minute int) string {
	return pad2(hour) + ":" + pad2(minute)
}

func pad2(v int) string {
	if v < 10 {
		return "0" + strconv.Itoa(v)
	}
	return strconv.Itoa(v)
}

// ---- Day-of-month lists ----

// parseDomList resolves a date-list fragment ("1st and 15th", "10,20")
// into a deduplicated ascending list of day-of-month values.
func parseDomList(raw string) ([]int, error) {
	normalized := strings.NewReplacer(",", " ", "&", " ", " and ", " ").Replace(" " + raw + " ")
	var days []int
	for _, token := range strings.Fields(normalized) {
		value, err := parseDomToken(raw, token)
		if err != nil {
			return nil, err
		}
		days = appendUnique(days, value)
	}
	if len(days) == 0 {
		return nil, invalidDateList(raw, "no day-of-month values found")
	}
	sort.Ints(days)
	return days, nil
}

func parseDomToken(list, token string) (int, error) {
	digits := strings.TrimRight(token, "stndrh")
	if digits == "" || digits != strings.Map(keepDigits, digits) {
		return 0, invalidDateList(token, "expected a day of month like 15 or 15th")
	}
	// Reject mixed forms like "1st5" where the ordinal suffix is interrupted.
	if suffix := token[len(digits):]; suffix != "" && suffix != "st" && suffix != "nd" && suffix != "rd" && suffix != "th" {
		return 0, invalidDateList(token, "expected a day of month like 15 or 15th")
	}
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0, invalidDateList(token, "expected a day of month like 15 or 15th")
	}
	if value < 1 || value > 31 {
		return 0, invalidDateList(token, "day of month out of range 1-31")
	}
	return value, nil
}

func keepDigits(r rune) rune {
	if r >= '0' && r <= '9' {
		return r
	}
	return -1
}

// ---- Day-of-week lists ----

// dayStopWords are filler tokens allowed inside a weekday list
// ("every monday and wednesday", "weekly on fri").
var dayStopWords = map[string]bool{
	"every": true, "each": true, "on": true, "the": true,
	"week": true, "weeks": true, "weekly": true, "and": true,
}

// parseWeekdayList resolves a fragment of weekday names into ascending cron
// day-of-week indices (Sunday=0). It reports ok=false when any non-filler
// token is not a weekday name, so callers can fall through to later shapes.
func parseWeekdayList(raw string) (days []int, ok bool) {
	normalized := strings.NewReplacer(",", " ", "&", " ").Replace(raw)
	for _, token := range strings.Fields(normalized) {
		if dayStopWords[token] {
			continue
		}
		// Tolerate plural forms ("mondays").
		token = strings.TrimSuffix(token, "s")
		value, known := weekdayNumber(token)
		if !known {
			return nil, false
		}
		days = appendUnique(days, value)
	}
	if len(days) == 0 {
		return nil, false
	}
	sort.Ints(days)
	return days, true
}

// weekdayNumber maps a weekday name or abbreviation to its cron index.
func weekdayNumber(token string) (int, bool) {
	switch token {
	case "sun", "sunday":
		return 0, true
	case "mon", "monday":
		return 1, true
	case "tue", "tues", "tuesday":
		return 2, true
	case "wed", "weds", "wednesday":
		return 3, true
	case "thu", "thur", "thurs", "thursday":
		return 4, true
	case "fri", "friday":
		return 5, true
	case "sat", "saturday":
		return 6, true
	default:
		return 0, false
	}
}

var weekdayLabels = [7]string{
	"Sundays", "Mondays", "Tuesdays", "Wednesdays", "Thursdays", "Fridays", "Saturdays",
}

// describeWeekdays renders a weekday index list for descriptions.
func describeWeekdays(days []int) string {
	labels := make([]string, 0, len(days))
	for _, d := range days {
		labels = append(labels, weekdayLabels[d%7])
	}
	return strings.Join(labels, ", ")
}

func appendUnique(values []int, v int) []int {
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}

func joinInts(values []int, sep string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, strconv.Itoa(v))
	}
	return strings.Join(parts, sep)
}
