package formatter

// Pattern is one of the named date-time display formats.
type Pattern int

const (
	YearMonthDay Pattern = iota
	MonthDayYear
	DayMonthYear

	YearMonthDayHourMinute
	YearMonthDayHourMinuteSecond
	YearMonthDayHourMinuteSecondMillis

	HourMinute
	HourMinuteSecond

	MonthNameFull
	MonthNameAbbreviated

	WeekdayNameFull
	WeekdayNameAbbreviated

	MeridiemIndicator

	// EpochSeconds has no strftime template, it renders the Unix seconds of the instant.
	EpochSeconds
)

// Strftime templates for each pattern.
const (
	TemplateYearMonthDay = "%Y-%m-%d"
	TemplateMonthDayYear = "%m/%d/%Y"
	TemplateDayMonthYear = "%d-%m-%Y"

	TemplateYearMonthDayHourMinute             = "%Y-%m-%d %H:%M"
	TemplateYearMonthDayHourMinuteSecond       = "%Y-%m-%d %H:%M:%S"
	TemplateYearMonthDayHourMinuteSecondMillis = "%Y-%m-%d %H:%M:%S.%L"

	TemplateHourMinute       = "%H:%M"
	TemplateHourMinuteSecond = "%H:%M:%S"

	TemplateMonthNameFull        = "%B"
	TemplateMonthNameAbbreviated = "%b"

	TemplateWeekdayNameFull        = "%A"
	TemplateWeekdayNameAbbreviated = "%a"

	TemplateMeridiemIndicator = "%p"

	// TemplateEpochSeconds is a lookup key only, it is never handed to strftime.
	TemplateEpochSeconds = "timestamp"
)

type patternInfo struct {
	name     string
	template string
}

// Indexed by Pattern. Keep in declaration order.
var catalog = [...]patternInfo{
	YearMonthDay:                       {"YearMonthDay", TemplateYearMonthDay},
	MonthDayYear:                       {"MonthDayYear", TemplateMonthDayYear},
	DayMonthYear:                       {"DayMonthYear", TemplateDayMonthYear},
	YearMonthDayHourMinute:             {"YearMonthDayHourMinute", TemplateYearMonthDayHourMinute},
	YearMonthDayHourMinuteSecond:       {"YearMonthDayHourMinuteSecond", TemplateYearMonthDayHourMinuteSecond},
	YearMonthDayHourMinuteSecondMillis: {"YearMonthDayHourMinuteSecondMillis", TemplateYearMonthDayHourMinuteSecondMillis},
	HourMinute:                         {"HourMinute", TemplateHourMinute},
	HourMinuteSecond:                   {"HourMinuteSecond", TemplateHourMinuteSecond},
	MonthNameFull:                      {"MonthNameFull", TemplateMonthNameFull},
	MonthNameAbbreviated:               {"MonthNameAbbreviated", TemplateMonthNameAbbreviated},
	WeekdayNameFull:                    {"WeekdayNameFull", TemplateWeekdayNameFull},
	WeekdayNameAbbreviated:             {"WeekdayNameAbbreviated", TemplateWeekdayNameAbbreviated},
	MeridiemIndicator:                  {"MeridiemIndicator", TemplateMeridiemIndicator},
	EpochSeconds:                       {"EpochSeconds", TemplateEpochSeconds},
}

var (
	byName     = make(map[string]Pattern, len(catalog))
	byTemplate = make(map[string]Pattern, len(catalog))
)

func init() {
	for i, info := range catalog {
		byName[info.name] = Pattern(i)
		byTemplate[info.template] = Pattern(i)
	}
}

// Patterns returns every pattern in declaration order.
func Patterns() []Pattern {
	patterns := make([]Pattern, len(catalog))
	for i := range catalog {
		patterns[i] = Pattern(i)
	}

	return patterns
}

// IsValid reports whether p is one of the catalog patterns.
func (p Pattern) IsValid() bool {
	return p >= 0 && int(p) < len(catalog)
}

// Template returns the strftime template for p. EpochSeconds returns the
// "timestamp" sentinel.
func (p Pattern) Template() string {
	if !p.IsValid() {
		return ""
	}

	return catalog[p].template
}

// Name returns the identifier of p, e.g. "YearMonthDayHourMinuteSecond".
func (p Pattern) Name() string {
	if !p.IsValid() {
		return ""
	}

	return catalog[p].name
}

func (p Pattern) String() string {
	if !p.IsValid() {
		return "Pattern(invalid)"
	}

	return p.Name()
}

// FromTemplate returns the pattern whose template is s.
func FromTemplate(s string) (Pattern, bool) {
	p, ok := byTemplate[s]
	return p, ok
}

// FromName returns the pattern called s. The match is case-sensitive.
func FromName(s string) (Pattern, bool) {
	p, ok := byName[s]
	return p, ok
}
