package dtunit

// calendar.go implements the calendar kernel (§4.1): conversion between
// a day offset from the Unix epoch (1970-01-01) and a proleptic
// Gregorian (year, month, day), day-of-week, and business-day counting.
// Epoch day 0 is 1970-01-01; day -1 is 1969-12-31.

// the Gregorian cycle is 400 years = 146097 days (400*365 + 97 leap
// days), which in turn decomposes into 4 century blocks of 36524 days
// (100*365 + 24 leap days: every 4th year is a leap year except the
// century year itself) plus the one extra leap day of the 400th year
// and, within a century, 4-year blocks of 1461
// days. civilFromDays/daysFromCivil below walk that same decomposition,
// recentered on 0000-03-01 so that the irregular Feb-29 leap day always
// falls at the end of a 4-year block instead of splitting a year.
const daysFromEpochToMarch0000 = 719468

// daysFromCivil returns the day offset from the Unix epoch for the
// given proleptic Gregorian year/month/day. month and day are assumed
// to already be in range (callers validate via DateTimeStruct.Valid or
// daysInMonthOf before calling this).
func daysFromCivil(year int64, month, day int32) int64 {
	y := year
	if month <= 2 {
		y--
	}
	var era int64
	if y >= 0 {
		era = y / 400
	} else {
		era = (y - 399) / 400
	}
	yoe := y - era*400 // [0, 399]

	var mp int64
	if month > 2 {
		mp = int64(month) - 3
	} else {
		mp = int64(month) + 9
	}
	doy := (153*mp+2)/5 + int64(day) - 1 // [0, 365]
	doe := yoe*365 + yoe/4 - yoe/100 + doy

	return era*146097 + doe - daysFromEpochToMarch0000
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (year int64, month, day int32) {
	z := days + daysFromEpochToMarch0000

	var era int64
	if z >= 0 {
		era = z / 146097
	} else {
		era = (z - 146096) / 146097
	}
	doe := z - era*146097 // [0, 146096]

	yoe := (doe - doe/1460 + doe/36524 - doe/146096) / 365 // [0, 399]
	y := yoe + era*400
	doy := doe - (365*yoe + yoe/4 - yoe/100) // [0, 365]

	mp := (5*doy + 2) / 153 // [0, 11]
	d := doy - (153*mp+2)/5 + 1
	var m int64
	if mp < 10 {
		m = mp + 3
	} else {
		m = mp - 9
	}
	if m <= 2 {
		y++
	}
	return y, int32(m), int32(d)
}

// daysFromEpoch computes the day offset of s (ignoring time-of-day)
// from the calendar kernel.
func daysFromEpoch(s DateTimeStruct) int64 {
	return daysFromCivil(s.Year, s.Month, s.Day)
}

// daysToStruct populates the year/month/day fields of a DateTimeStruct
// from a day offset. Time-of-day fields are left zero.
func daysToStruct(days int64) DateTimeStruct {
	y, m, d := civilFromDays(days)
	return DateTimeStruct{Year: y, Month: m, Day: d}
}

// minutesFromEpoch returns the number of minutes from the epoch to s,
// ignoring seconds and sub-second fields.
func minutesFromEpoch(s DateTimeStruct) int64 {
	return daysFromEpoch(s)*1440 + int64(s.Hour)*60 + int64(s.Minute)
}

// dayOfWeek returns the day of the week for the given day offset, in
// the range [0,6] with 0 = Monday, matching the teacher's Weekday
// numbering but anchored so that 1970-01-05 (a Monday) lands on 0.
func dayOfWeek(days int64) int {
	return int(floorMod(days-4, 7))
}

// clampToBusinessWeekday maps Saturday/Sunday to the preceding Friday, for the
// purposes of business-day counting.
func clampToBusinessWeekday(dow int) int {
	if dow > 4 {
		return 4
	}
	return dow
}

// businessDaysBetween returns the signed count of business days (days
// that are not Saturday or Sunday) between day offsets a and b,
// numbered so that 0 corresponds to Thursday 1970-01-01.
func businessDaysBetween(a, b int64) int64 {
	swapped := false
	if a > b {
		a, b = b, a
		swapped = true
	}

	clampA := clampToBusinessWeekday(dayOfWeek(a))
	clampB := clampToBusinessWeekday(dayOfWeek(b))

	diff := int64(clampB - clampA)
	if diff < 0 {
		diff += 5
	}

	weeks := (b - a) / 7
	result := weeks*5 + diff
	if swapped {
		result = -result
	}
	return result
}

// businessDayToDays inverts the business-day numbering produced by
// businessDaysBetween(0, ·): it returns the day offset corresponding to
// business-day count v, where v=0 is Thursday 1970-01-01.
func businessDayToDays(v int64) int64 {
	if v >= 0 {
		return 7*floorDiv(v+3, 5) + floorMod(v+3, 5) - 3
	}
	// Go's / and % truncate towards zero, which is what this branch needs.
	return 7*((v-1)/5) + (v-1)%5 + 1
}

// addMinutesToDatetimeStruct adds n minutes to s, carrying
// minutes->hours->days->months->years with full respect for month
// lengths and leap years.
func addMinutesToDatetimeStruct(s DateTimeStruct, n int64) DateTimeStruct {
	if s.IsNaT() {
		return s
	}

	totalMin := int64(s.Hour)*60 + int64(s.Minute) + n
	days := floorDiv(totalMin, 1440)
	minOfDay := floorMod(totalMin, 1440)

	out := s
	out.Hour = int32(minOfDay / 60)
	out.Minute = int32(minOfDay % 60)

	if days == 0 {
		return out
	}

	dayOff := daysFromEpoch(s) + days
	y, m, d := civilFromDays(dayOff)
	out.Year, out.Month, out.Day = y, m, d
	return out
}

// addSecondsToDatetimeStruct adds n seconds to s, via
// addMinutesToDatetimeStruct.
func addSecondsToDatetimeStruct(s DateTimeStruct, n int64) DateTimeStruct {
	if s.IsNaT() {
		return s
	}

	totalSec := int64(s.Second) + n
	minutes := floorDiv(totalSec, 60)
	secOfMin := floorMod(totalSec, 60)

	out := addMinutesToDatetimeStruct(s, minutes)
	out.Second = int32(secOfMin)
	return out
}
