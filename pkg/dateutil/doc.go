// Package dateutil provides calendar-date helpers over Go layout strings:
// validation, day arithmetic, reformatting between layouts, and leap-year
// and weekday queries. Dates are plain calendar days with no time-of-day or
// timezone component; LayoutISO is the default layout for the fixed-format
// operations.
package dateutil
