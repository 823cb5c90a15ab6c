package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// serialEpoch is the spreadsheet date epoch: serial day counts are offsets
// from 1899-12-30.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// placeholderYear stands in for the year on layouts that only carry birth
// month and day.
const placeholderYear = 2000

var monthsByName = map[string]time.Month{
	"january":   time.January,
	"february":  time.February,
	"march":     time.March,
	"april":     time.April,
	"may":       time.May,
	"june":      time.June,
	"july":      time.July,
	"august":    time.August,
	"september": time.September,
	"october":   time.October,
	"november":  time.November,
	"december":  time.December,
}

// MonthDayDate converts a spelled-out month name and day-of-month pair into
// a date in the placeholder year. Returns nil when either part is missing
// or unrecognized.
func MonthDayDate(monthName, day string) *time.Time {
	month, ok := monthsByName[strings.ToLower(strings.TrimSpace(monthName))]
	if !ok {
		return nil
	}
	d, err := strconv.Atoi(strings.TrimSpace(day))
	if err != nil || d < 1 || d > 31 {
		return nil
	}
	t := time.Date(placeholderYear, month, d, 0, 0, 0, 0, time.UTC)
	return &t
}

// SerialDate converts a spreadsheet date serial (days since the epoch) into
// a calendar date. Returns nil for non-numeric or non-positive serials.
func SerialDate(serial string) *time.Time {
	serial = strings.TrimSpace(serial)
	if serial == "" {
		return nil
	}
	days, err := strconv.ParseFloat(serial, 64)
	if err != nil || days <= 0 {
		return nil
	}
	t := serialEpoch.AddDate(0, 0, int(days))
	return &t
}

// ISODate parses a yyyy-mm-dd value, returning nil when absent or invalid.
func ISODate(v string) *time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil
	}
	return &t
}

// ParseAmount parses a donation amount, rejecting anything that is not a
// finite decimal.
func ParseAmount(v string) (decimal.Decimal, bool) {
	v = strings.TrimSpace(strings.ReplaceAll(v, ",", ""))
	v = strings.TrimPrefix(v, "$")
	if v == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}
