package translate

import (
	"regexp"
	"strconv"
	"strings"
)

// shape pairs a recognizer with its extractor. match reports ok=false when
// the phrase does not have this shape; a non-nil error means the shape was
// recognized but a parameter failed validation, which stops the scan so no
// later, laxer shape can accept the phrase silently.
type shape struct {
	name  string
	match func(phrase string) (Pattern, bool, error)
}

// shapes is evaluated in order, most specific first. The order mirrors
// Guide(): keyworded date lists win over bare ones and "daily" is the
// final catch-all. The raw-cron shape runs before all of these, on the
// case-preserved input, so "30 3 * * MON" passes through untouched.
var shapes = []shape{
	{"monthly", matchMonthly},
	{"on dates", matchOnDates},
	{"every minutes", matchEveryMinutes},
	{"every hours", matchEveryHours},
	{"hourly", matchHourly},
	{"weekly", matchWeekly},
	{"weekdays", matchWeekdays},
	{"weekends", matchWeekends},
	{"day list", matchDayList},
	{"daily", matchDaily},
}

// Match classifies a phrase against the recognized shapes and extracts its
// parameters. Matching is case-insensitive and whitespace-normalized; it is
// a pure function of the input string.
func Match(phrase string) (Pattern, error) {
	collapsed := strings.Join(strings.Fields(phrase), " ")
	if collapsed == "" {
		return Pattern{}, noMatch(strings.TrimSpace(phrase))
	}

	// Raw cron first, on the case-preserved input: passthrough must
	// round-trip the expression exactly as given.
	if p, ok, err := matchRawCron(collapsed); ok || err != nil {
		return p, err
	}

	normalized := normalize(collapsed)
	for _, s := range shapes {
		p, ok, err := s.match(normalized)
		if err != nil {
			return Pattern{}, err
		}
		if ok {
			return p, nil
		}
	}
	return Pattern{}, noMatch(strings.TrimSpace(phrase))
}

// normalize lowercases and folds unicode dashes; the caller has already
// collapsed whitespace, so shape regexes only deal with single spaces.
func normalize(collapsed string) string {
	lowered := strings.ToLower(collapsed)
	lowered = strings.ReplaceAll(lowered, "–", "-")
	lowered = strings.ReplaceAll(lowered, "—", "-")
	return lowered
}

// ---- Raw cron ----

// reCronCharset is the coarse recognizer: five whitespace-separated fields
// of cron-safe characters mean the input is raw-cron-shaped, even if a
// field then fails the grammar.
var reCronCharset = regexp.MustCompile(`^[0-9a-z*?/,-]+$`)

// reCronField is the per-field grammar: "*", "?", "*/n", or a comma list
// of values/ranges with an optional step. Values are numbers or 3-letter
// month/day names. Semantic range checks are out of scope here.
var reCronField = regexp.MustCompile(
	`^(\*(/\d+)?|\?|(\d+|[a-z]{3})(-(\d+|[a-z]{3}))?(/\d+)?(,(\d+|[a-z]{3})(-(\d+|[a-z]{3}))?(/\d+)?)*)$`)

func matchRawCron(phrase string) (Pattern, bool, error) {
	fields := strings.Fields(phrase)
	if len(fields) != 5 {
		return Pattern{}, false, nil
	}
	for _, f := range fields {
		if !reCronCharset.MatchString(strings.ToLower(f)) {
			return Pattern{}, false, nil
		}
	}
	// Five cron-shaped fields: the input is claimed by this shape, so a
	// grammar violation is an error rather than a fall-through.
	for _, f := range fields {
		if !reCronField.MatchString(strings.ToLower(f)) {
			return Pattern{}, false, malformedRawCron(f, "field does not match the cron field grammar")
		}
	}
	return Pattern{Kind: KindRawCron, Raw: fields}, true, nil
}

// ---- Date-list shapes ----

var (
	reMonthlyOn = regexp.MustCompile(`^monthly on (.+?) at (.+)$`)
	reMonthlyAt = regexp.MustCompile(`^monthly at (.+)$`)
	reOnDates   = regexp.MustCompile(`^on (.+?) at (.+)$`)
)

func matchMonthly(phrase string) (Pattern, bool, error) {
	if m := reMonthlyOn.FindStringSubmatch(phrase); m != nil {
		days, err := parseDomList(m[1])
		if err != nil {
			return Pattern{}, false, err
		}
		hour, minute, err := parseClock(m[2])
		if err != nil {
			return Pattern{}, false, err
		}
		return Pattern{Kind: KindMonthly, Days: days, Hour: hour, Minute: minute}, true, nil
	}
	if m := reMonthlyAt.FindStringSubmatch(phrase); m != nil {
		hour, minute, err := parseClock(m[1])
		if err != nil {
			return Pattern{}, false, err
		}
		return Pattern{Kind: KindMonthly, Days: []int{1}, DefaultDay: true, Hour: hour, Minute: minute}, true, nil
	}
	return Pattern{}, false, nil
}

func matchOnDates(phrase string) (Pattern, bool, error) {
	m := reOnDates.FindStringSubmatch(phrase)
	if m == nil {
		return Pattern{}, false, nil
	}
	// "on monday at 9:00" is a weekday phrase, not a date list; leave it
	// for the day-list shape further down the order.
	if _, ok := parseWeekdayList(m[1]); ok {
		return Pattern{}, false, nil
	}
	days, err := parseDomList(m[1])
	if err != nil {
		return Pattern{}, false, err
	}
	hour, minute, err := parseClock(m[2])
	if err != nil {
		return Pattern{}, false, err
	}
	return Pattern{Kind: KindOnDates, Days: days, Hour: hour, Minute: minute}, true, nil
}

// ---- Interval shapes ----

var (
	reEveryMinutes = regexp.MustCompile(`^every(?: (\d+))? min(?:ute)?s?$`)
	reEveryHours   = regexp.MustCompile(`^every (\d+) hours?(?: at :(\d{1,2}))?$`)
	reHourly       = regexp.MustCompile(`^(?:hourly|every hour)(?: at :(\d{1,2}))?$`)
)

func matchEveryMinutes(phrase string) (Pattern, bool, error) {
	m := reEveryMinutes.FindStringSubmatch(phrase)
	if m == nil {
		return Pattern{}, false, nil
	}
	n := 1
	if m[1] != "" {
		n, _ = strconv.Atoi(m[1])
	}
	if n < 1 {
		return Pattern{}, false, invalidInterval(m[1], "interval must be at least 1 minute")
	}
	if n > 59 {
		return Pattern{}, false, invalidInterval(m[1], "minute interval must be 59 or less")
	}
	return Pattern{Kind: KindEveryMinutes, Every: n}, true, nil
}

func matchEveryHours(phrase string) (Pattern, bool, error) {
	m := reEveryHours.FindStringSubmatch(phrase)
	if m == nil {
		return Pattern{}, false, nil
	}
	n, _ := strconv.Atoi(m[1])
	if n < 1 {
		return Pattern{}, false, invalidInterval(m[1], "interval must be at least 1 hour")
	}
	if n > 23 {
		return Pattern{}, false, invalidInterval(m[1], "hour interval must be 23 or less")
	}
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
		if minute > 59 {
			return Pattern{}, false, invalidTime(":"+m[2], "minute out of range 0-59")
		}
	}
	return Pattern{Kind: KindEveryHours, Every: n, Minute: minute}, true, nil
}

func matchHourly(phrase string) (Pattern, bool, error) {
	m := reHourly.FindStringSubmatch(phrase)
	if m == nil {
		return Pattern{}, false, nil
	}
	minute := 0
	if m[1] != "" {
		var err error
		minute, err = strconv.Atoi(m[1])
		if err != nil || minute > 59 {
			return Pattern{}, false, invalidTime(":"+m[1], "minute out of range 0-59")
		}
	}
	return Pattern{Kind: KindHourly, Minute: minute}, true, nil
}

// ---- Weekday shapes ----

var (
	reWeekly   = regexp.MustCompile(`^(?:weekly|every week) (?:on )?(.+?) at (.+)$`)
	reWeekdays = regexp.MustCompile(`^(?:every )?weekdays? (?:at )?(.+)$`)
	reWeekends = regexp.MustCompile(`^(?:every )?weekends? (?:at )?(.+)$`)
	reDaily    = regexp.MustCompile(`^(?:daily|every day|each day) (?:at )?(.+)$`)
)

func matchWeekly(phrase string) (Pattern, bool, error) {
	m := reWeekly.FindStringSubmatch(phrase)
	if m == nil {
		return Pattern{}, false, nil
	}
	days, ok := parseWeekdayList(m[1])
	if !ok {
		return Pattern{}, false, nil
	}
	hour, minute, err := parseClock(m[2])
	if err != nil {
		return Pattern{}, false, err
	}
	return Pattern{Kind: KindWeekly, Weekdays: days, Hour: hour, Minute: minute}, true, nil
}

func matchWeekdays(phrase string) (Pattern, bool, error) {
	m := reWeekdays.FindStringSubmatch(phrase)
	if m == nil {
		return Pattern{}, false, nil
	}
	hour, minute, err := parseClock(m[1])
	if err != nil {
		return Pattern{}, false, err
	}
	return Pattern{Kind: KindWeekdays, Hour: hour, Minute: minute}, true, nil
}

func matchWeekends(phrase string) (Pattern, bool, error) {
	m := reWeekends.FindStringSubmatch(phrase)
	if m == nil {
		return Pattern{}, false, nil
	}
	hour, minute, err := parseClock(m[1])
	if err != nil {
		return Pattern{}, false, err
	}
	return Pattern{Kind: KindWeekends, Hour: hour, Minute: minute}, true, nil
}

func matchDayList(phrase string) (Pattern, bool, error) {
	prefix, rest, found := strings.Cut(phrase, " at ")
	if !found {
		return Pattern{}, false, nil
	}
	days, ok := parseWeekdayList(prefix)
	if !ok {
		return Pattern{}, false, nil
	}
	hour, minute, err := parseClock(rest)
	if err != nil {
		return Pattern{}, false, err
	}
	return Pattern{Kind: KindDayList, Weekdays: days, Hour: hour, Minute: minute}, true, nil
}

func matchDaily(phrase string) (Pattern, bool, error) {
	m := reDaily.FindStringSubmatch(phrase)
	if m == nil {
		return Pattern{}, false, nil
	}
	hour, minute, err := parseClock(m[1])
	if err != nil {
		return Pattern{}, false, err
	}
	return Pattern{Kind: KindDaily, Hour: hour, Minute: minute}, true, nil
}
