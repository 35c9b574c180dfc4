package dtunit

import "strconv"

// parseiso.go provides the minimal default ISO-8601 collaborator
// referenced by the object-to-value inference layer (§4.7). It covers
// the common extended form YYYY-MM-DD[THH:MM:SS[.ffffff]][Z|±HH:MM]
// and is intentionally not a complete ISO-8601 implementation: callers
// needing full grammar coverage (ordinal dates, week dates, reduced
// precision, comma decimal separators) should override ParseISO8601
// with their own parser before calling into the inference layer.

// ParseISO8601 parses text into a DateTimeStruct along with the finest
// unit the text's precision supports. It is a package-level variable so
// callers can swap in a fuller parser without changing infer.go.
var ParseISO8601 = defaultParseISO8601

func defaultParseISO8601(text string) (DateTimeStruct, Unit, error) {
	if len(text) < len("YYYY-MM-DD") {
		return DateTimeStruct{}, 0, valueErrorf("ISO-8601 text %q too short", text)
	}

	year, err := strconv.ParseInt(text[0:4], 10, 64)
	if err != nil || text[4] != '-' {
		return DateTimeStruct{}, 0, valueErrorf("malformed ISO-8601 year in %q", text)
	}
	month, err := strconv.ParseInt(text[5:7], 10, 32)
	if err != nil || text[7] != '-' {
		return DateTimeStruct{}, 0, valueErrorf("malformed ISO-8601 month in %q", text)
	}
	day, err := strconv.ParseInt(text[8:10], 10, 32)
	if err != nil {
		return DateTimeStruct{}, 0, valueErrorf("malformed ISO-8601 day in %q", text)
	}

	s := DateTimeStruct{Year: year, Month: int32(month), Day: int32(day)}
	rest := text[10:]
	if rest == "" {
		return s, D, nil
	}
	if rest[0] != 'T' && rest[0] != ' ' {
		return DateTimeStruct{}, 0, valueErrorf("malformed ISO-8601 date/time separator in %q", text)
	}
	rest = rest[1:]

	if len(rest) < len("HH:MM:SS") {
		return DateTimeStruct{}, 0, valueErrorf("malformed ISO-8601 time in %q", text)
	}
	hour, err := strconv.ParseInt(rest[0:2], 10, 32)
	if err != nil || rest[2] != ':' {
		return DateTimeStruct{}, 0, valueErrorf("malformed ISO-8601 hour in %q", text)
	}
	minute, err := strconv.ParseInt(rest[3:5], 10, 32)
	if err != nil || rest[5] != ':' {
		return DateTimeStruct{}, 0, valueErrorf("malformed ISO-8601 minute in %q", text)
	}
	second, err := strconv.ParseInt(rest[6:8], 10, 32)
	if err != nil {
		return DateTimeStruct{}, 0, valueErrorf("malformed ISO-8601 second in %q", text)
	}
	s.Hour, s.Minute, s.Second = int32(hour), int32(minute), int32(second)
	rest = rest[8:]

	unit := S
	if len(rest) > 0 && rest[0] == '.' {
		j := 1
		for j < len(rest) && rest[j] >= '0' && rest[j] <= '9' {
			j++
		}
		frac := rest[1:j]
		rest = rest[j:]

		padded := (frac + "000000")[:6]
		us, err := strconv.ParseInt(padded, 10, 64)
		if err != nil {
			return DateTimeStruct{}, 0, valueErrorf("malformed ISO-8601 fractional second in %q", text)
		}
		s.Microsecond = int32(us)

		switch {
		case len(frac) <= 3:
			unit = Ms
		default:
			unit = Us
		}
	}

	offsetMin, hasOffset, err := parseISOOffset(rest)
	if err != nil {
		return DateTimeStruct{}, 0, err
	}
	if hasOffset && offsetMin != 0 {
		s = addMinutesToDatetimeStruct(s, -offsetMin)
	}

	return s, unit, nil
}

// parseISOOffset parses a trailing "Z" or "±HH:MM" UTC offset suffix,
// returning the offset in minutes east of UTC.
func parseISOOffset(rest string) (minutes int64, ok bool, err error) {
	if rest == "" {
		return 0, false, nil
	}
	if rest == "Z" {
		return 0, true, nil
	}
	if len(rest) < 6 || (rest[0] != '+' && rest[0] != '-') || rest[3] != ':' {
		return 0, false, valueErrorf("malformed ISO-8601 offset %q", rest)
	}
	h, err := strconv.ParseInt(rest[1:3], 10, 32)
	if err != nil {
		return 0, false, valueErrorf("malformed ISO-8601 offset %q", rest)
	}
	m, err := strconv.ParseInt(rest[4:6], 10, 32)
	if err != nil {
		return 0, false, valueErrorf("malformed ISO-8601 offset %q", rest)
	}
	total := h*60 + m
	if rest[0] == '-' {
		total = -total
	}
	return total, true, nil
}
