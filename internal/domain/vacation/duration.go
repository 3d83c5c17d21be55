package vacation

import (
	"math"
	"time"
)

// Duration codes accepted on vacation records. Each code maps to a fixed
// number of calendar days counted inclusively from the start date, so a
// one week vacation starting Monday ends the following Sunday.
const (
	DurationOneWeek     = "1week"
	DurationTwoWeeks    = "2weeks"
	DurationOneMonth    = "1month"
	DurationTwoMonths   = "2months"
	DurationThreeMonths = "3months"
	DurationSixMonths   = "6months"
	DurationOneYear     = "1year"
)

var durationDays = map[string]int{
	DurationOneWeek:     7,
	DurationTwoWeeks:    14,
	DurationOneMonth:    30,
	DurationTwoMonths:   60,
	DurationThreeMonths: 90,
	DurationSixMonths:   180,
	DurationOneYear:     360,
}

// DurationCodes lists the accepted codes in ascending length order.
var DurationCodes = []string{
	DurationOneWeek,
	DurationTwoWeeks,
	DurationOneMonth,
	DurationTwoMonths,
	DurationThreeMonths,
	DurationSixMonths,
	DurationOneYear,
}

// ValidDurationCode reports whether code is one of the accepted values.
func ValidDurationCode(code string) bool {
	_, ok := durationDays[code]
	return ok
}

// ResolveEndDate returns the last day of a vacation given its start date
// and duration code. The start day counts as day one, so the end date is
// start plus days-1.
func ResolveEndDate(start time.Time, code string) (time.Time, bool) {
	days, ok := durationDays[code]
	if !ok {
		return time.Time{}, false
	}
	return start.AddDate(0, 0, days-1), true
}

// InferDurationCode maps an arbitrary start/end span back onto the
// smallest duration code that covers it. The mapping is lossy: a span
// that fits no bucket exactly still resolves to the next bucket up, and
// anything longer than six months resolves to a year.
func InferDurationCode(start, end time.Time) string {
	if end.Before(start) {
		start, end = end, start
	}
	diff := end.Sub(start)
	spanDays := int(math.Ceil(diff.Hours()/24)) + 1

	for _, code := range DurationCodes[:len(DurationCodes)-1] {
		if spanDays <= durationDays[code] {
			return code
		}
	}
	return DurationOneYear
}
