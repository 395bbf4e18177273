package dateutil

import "time"

// Layouts understood by the fixed-format helpers.
const (
	// LayoutISO is the ISO calendar date layout, e.g. "2023-12-25".
	LayoutISO = "2006-01-02"
	// LayoutDMY is the slash-delimited day-first layout, e.g. "25/12/2023".
	LayoutDMY = "02/01/2006"
)

const secondsPerDay = 24 * 60 * 60

// parseDate strict-parses dateStr against layout, wrapping any failure in a
// *ParseError. time.Parse already rejects wrong separators, short fields,
// trailing text, and impossible calendar dates such as Feb 30.
func parseDate(dateStr, layout string) (time.Time, error) {
	t, err := time.Parse(layout, dateStr)
	if err != nil {
		return time.Time{}, &ParseError{Input: dateStr, Layout: layout, Err: err}
	}
	return t, nil
}

// ValidateFormat reports whether dateStr parses cleanly against layout.
// It never returns an error; malformed input is simply false.
func ValidateFormat(dateStr, layout string) bool {
	_, err := time.Parse(layout, dateStr)
	return err == nil
}

// DiffDays returns the signed number of whole days date1 minus date2, both
// in LayoutISO.
func DiffDays(date1, date2 string) (int, error) {
	t1, err := parseDate(date1, LayoutISO)
	if err != nil {
		return 0, err
	}
	t2, err := parseDate(date2, LayoutISO)
	if err != nil {
		return 0, err
	}
	// Both parse to midnight UTC, so the difference in Unix seconds is an
	// exact multiple of a day for any year range.
	return int((t1.Unix() - t2.Unix()) / secondsPerDay), nil
}

// FormatDate parses dateStr with inLayout and re-renders it with outLayout.
func FormatDate(dateStr, inLayout, outLayout string) (string, error) {
	t, err := parseDate(dateStr, inLayout)
	if err != nil {
		return "", err
	}
	return t.Format(outLayout), nil
}

// ToDDMMYYYY converts an ISO date ("2023-12-25") to the day-first slash
// form ("25/12/2023").
func ToDDMMYYYY(dateStr string) (string, error) {
	return FormatDate(dateStr, LayoutISO, LayoutDMY)
}

// ToYYYYMMDD converts a day-first slash date ("25/12/2023") to the ISO
// form ("2023-12-25").
func ToYYYYMMDD(dateStr string) (string, error) {
	return FormatDate(dateStr, LayoutDMY, LayoutISO)
}

// CurrentDate renders today's date in the given layout. The date is read
// from the local wall clock, not UTC.
func CurrentDate(layout string) string {
	return time.Now().Format(layout)
}

// AddDays returns the ISO date days after dateStr, with calendar-correct
// month and year rollover. Negative values move backwards.
func AddDays(dateStr string, days int) (string, error) {
	t, err := parseDate(dateStr, LayoutISO)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, days).Format(LayoutISO), nil
}

// IsLeapYear reports whether year has a Feb 29 under the Gregorian rule:
// divisible by 4, except centuries not divisible by 400.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DayOfWeek returns the full English weekday name ("Monday") for an ISO
// date.
func DayOfWeek(dateStr string) (string, error) {
	t, err := parseDate(dateStr, LayoutISO)
	if err != nil {
		return "", err
	}
	return t.Weekday().String(), nil
}
