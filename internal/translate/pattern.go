package translate

// Kind describes the normalized shape of a matched phrase.
//
// The set is closed: Emit switches exhaustively over it, so adding a kind
// without a field mapping is caught at review time rather than at runtime.
type Kind int

const (
	KindRawCron Kind = iota
	KindMonthly
	KindOnDates
	KindEveryMinutes
	KindEveryHours
	KindHourly
	KindWeekly
	KindWeekdays
	KindWeekends
	KindDayList
	KindDaily
)

func (k Kind) String() string {
	switch k {
	case KindRawCron:
		return "raw_cron"
	case KindMonthly:
		return "monthly"
	case KindOnDates:
		return "on_dates"
	case KindEveryMinutes:
		return "every_minutes"
	case KindEveryHours:
		return "every_hours"
	case KindHourly:
		return "hourly"
	case KindWeekly:
		return "weekly"
	case KindWeekdays:
		return "weekdays"
	case KindWeekends:
		return "weekends"
	case KindDayList:
		return "day_list"
	case KindDaily:
		return "daily"
	default:
		return "unknown"
	}
}

// Pattern is the fully resolved form of a matched phrase.
//
// Only the fields relevant to Kind are populated; all populated values are
// already validated (Hour in [0,23], Minute in [0,59], Days in [1,31]
// ascending deduplicated, Weekdays cron indices with Sunday=0, Every within
// the target field's modulus). A Pattern constructed by Match always emits.
type Pattern struct {
	Kind Kind

	Hour   int
	Minute int

	// Days holds day-of-month values for KindMonthly / KindOnDates.
	Days []int

	// Weekdays holds cron day-of-week indices for KindWeekly / KindDayList.
	Weekdays []int

	// Every is the interval for KindEveryMinutes / KindEveryHours.
	Every int

	// DefaultDay marks a "monthly at HH:MM" phrase that fell back to day 1.
	DefaultDay bool

	// Raw holds the five fields of a passthrough cron expression.
	Raw []string
}

// PatternExample pairs a shape name with a phrase that matches it.
type PatternExample struct {
	Shape   string
	Example string
}

// patternGuide is ordered by matching precedence (most specific first).
var patternGuide = []PatternExample{
	{"raw cron", "30 3 * * 1"},
	{"monthly on <dates> at HH:MM", "monthly on 1st and 15th at 04:00"},
	{"on <dates> at HH:MM", "on 10,20 at 22:30"},
	{"every N minutes", "every 15 minutes"},
	{"every N hours", "every 2 hours"},
	{"hourly at :MM", "hourly at :10"},
	{"weekly on <days> at HH:MM", "weekly on fri at 02:45"},
	{"weekdays at HH:MM", "weekdays at 07:15"},
	{"weekends at HH:MM", "weekends at 19:05"},
	{"<days> at HH:MM", "monday wednesday at 03:00"},
	{"daily at HH:MM", "daily at 05:30"},
}

// Guide returns the supported phrasing shapes in matching precedence order.
// The slice is a copy; callers may reorder or filter it freely.
func Guide() []PatternExample {
	out := make([]PatternExample, len(patternGuide))
	copy(out, patternGuide)
	return out
}
