package dtunit

// infer.go implements object-to-value inference (§4.7): turning a
// caller-supplied Go value into a packed datetime or timedelta tick
// count, including host date-object interop and recursive descent
// through sequence-like inputs for bulk metadata inference.

// Attrs lets a caller adapt their own date type for
// ConvertObjToDatetime without this package needing to know its
// concrete type, mirroring spec §4.7's "object exposing
// year/month/day[/hour/minute/second/microsecond[/tzinfo]]". Each
// accessor reports whether the attribute is present; Year/Month/Day are
// required, the rest are optional.
type Attrs interface {
	Year() (int64, bool)
	Month() (int32, bool)
	Day() (int32, bool)
	Hour() (int32, bool)
	Minute() (int32, bool)
	Second() (int32, bool)
	Microsecond() (int32, bool)
	TZOffset() (TZOffsetter, bool)
}

// TZOffsetter mirrors a tzinfo's utcoffset: the signed offset from UTC,
// in minutes, that an Attrs value's wall-clock fields are expressed in.
type TZOffsetter interface {
	UTCOffsetMinutes() (int64, bool)
}

// DurationAttrs lets a caller adapt their own duration type for
// ConvertObjToTimedelta, mirroring spec §4.7's {days, seconds,
// microseconds} attribute triple.
type DurationAttrs interface {
	Days() (int64, bool)
	Seconds() (int64, bool)
	Microseconds() (int64, bool)
}

// Sequence lets RecursiveFindType descend into a caller's own
// sequence-like container without this package needing to know its
// concrete type.
type Sequence interface {
	Len() int
	At(i int) any
}

// ConvertObjToDatetime converts obj to a tick count under *meta,
// per §4.7. If meta is unset (Generic), it is updated in place to the
// unit inferred from obj. casting governs the fallback behavior for
// unrecognized inputs.
func ConvertObjToDatetime(meta *Metadata, obj any, casting CastingLevel) (int64, error) {
	switch v := obj.(type) {
	case string:
		s, unit, err := ParseISO8601(v)
		if err != nil {
			return 0, err
		}
		if meta.Unit == Generic {
			*meta = MetadataOf(unit, 1)
		}
		return structToValue(s, *meta)

	case int64:
		if meta.Unit == Generic {
			return 0, valueErrorf("integer datetime input requires a specified unit")
		}
		return v, nil

	case DateTimeValue:
		if meta.Unit == Generic {
			*meta = v.Meta
			return v.v, nil
		}
		return Cast(v.v, v.Meta, *meta, casting, DatetimeKind)

	case Attrs:
		s, bestUnit, err := attrsToDatetimeStruct(v)
		if err != nil {
			return 0, err
		}
		if meta.Unit == Generic {
			*meta = MetadataOf(bestUnit, 1)
		}
		return structToValue(s, *meta)

	default:
		if casting == Unsafe {
			*meta = GenericMetadata()
			return NaT, nil
		}
		if obj == nil && casting == SameKind {
			return NaT, nil
		}
		return 0, valueErrorf("cannot convert %T to datetime", obj)
	}
}

// attrsToDatetimeStruct reads a's required year/month/day and optional
// time-of-day and tzinfo attributes into a DateTimeStruct, converting
// to UTC if a timezone offset is present. The returned unit is D when
// only date attributes were present, us otherwise.
func attrsToDatetimeStruct(a Attrs) (DateTimeStruct, Unit, error) {
	year, ok := a.Year()
	if !ok {
		return DateTimeStruct{}, 0, typeErrorf("object missing required year attribute")
	}
	month, ok := a.Month()
	if !ok {
		return DateTimeStruct{}, 0, typeErrorf("object missing required month attribute")
	}
	day, ok := a.Day()
	if !ok {
		return DateTimeStruct{}, 0, typeErrorf("object missing required day attribute")
	}

	s := DateTimeStruct{Year: year, Month: month, Day: day}
	bestUnit := D

	if hour, ok := a.Hour(); ok {
		s.Hour = hour
		bestUnit = Us
		if minute, ok := a.Minute(); ok {
			s.Minute = minute
		}
		if second, ok := a.Second(); ok {
			s.Second = second
		}
		if micro, ok := a.Microsecond(); ok {
			s.Microsecond = micro
		}
	}

	if tz, ok := a.TZOffset(); ok {
		if offMin, ok := tz.UTCOffsetMinutes(); ok && offMin != 0 {
			s = addMinutesToDatetimeStruct(s, -offMin)
		}
	}

	return s, bestUnit, nil
}

// ConvertObjToTimedelta converts obj to a tick count under *meta,
// mirroring ConvertObjToDatetime but for durations.
func ConvertObjToTimedelta(meta *Metadata, obj any, casting CastingLevel) (int64, error) {
	switch v := obj.(type) {
	case int64:
		if meta.Unit == Generic {
			return 0, valueErrorf("integer timedelta input requires a specified unit")
		}
		return v, nil

	case TimeDeltaValue:
		if meta.Unit == Generic {
			*meta = v.Meta
			return v.v, nil
		}
		return Cast(v.v, v.Meta, *meta, casting, TimedeltaKind)

	case DurationAttrs:
		days, _ := v.Days()
		seconds, _ := v.Seconds()
		micros, _ := v.Microseconds()

		total, overflowed := totalMicroseconds(days, seconds, micros)
		if overflowed {
			return 0, overflowErrorf("timedelta components overflow")
		}
		unit, ticks := coarsestTimedeltaUnit(total)

		if meta.Unit == Generic {
			*meta = MetadataOf(unit, 1)
			return ticks, nil
		}
		return Cast(ticks, MetadataOf(unit, 1), *meta, casting, TimedeltaKind)

	default:
		if casting == Unsafe {
			*meta = GenericMetadata()
			return NaT, nil
		}
		if obj == nil && casting == SameKind {
			return NaT, nil
		}
		return 0, valueErrorf("cannot convert %T to timedelta", obj)
	}
}

func totalMicroseconds(days, seconds, microseconds int64) (int64, bool) {
	daySec, overflowed := mulInt64(days, 86400)
	if overflowed {
		return 0, true
	}
	totalSec, overflowed := addInt64(daySec, seconds)
	if overflowed {
		return 0, true
	}
	us, overflowed := mulInt64(totalSec, 1_000_000)
	if overflowed {
		return 0, true
	}
	total, overflowed := addInt64(us, microseconds)
	if overflowed {
		return 0, true
	}
	return total, false
}

// coarsestTimedeltaUnit picks the coarsest of {W, D, m, s, ms, us} that
// divides totalUs exactly, per §4.7.
func coarsestTimedeltaUnit(totalUs int64) (Unit, int64) {
	candidates := [...]struct {
		unit  Unit
		perUs int64
	}{
		{W, 7 * 86400 * 1_000_000},
		{D, 86400 * 1_000_000},
		{Min, 60 * 1_000_000},
		{S, 1_000_000},
		{Ms, 1_000},
		{Us, 1},
	}
	for _, c := range candidates {
		if totalUs%c.perUs == 0 {
			return c.unit, totalUs / c.perUs
		}
	}
	return Us, totalUs
}

// RecursiveFindType walks obj depth-first: sequence-like values are
// descended into via the Sequence interface, leaves contribute their
// metadata to *metaIO via GCDMetadata. Self-referential sequences
// (seq.At(i) == seq) are skipped rather than recursed into, per §4.7.
// strict selects the casting strictness GCDMetadata should apply at
// each merge (true for timedelta inference, false for datetime).
func RecursiveFindType(obj any, metaIO *Metadata, strict bool) error {
	if seq, ok := obj.(Sequence); ok {
		n := seq.Len()
		for i := 0; i < n; i++ {
			item := seq.At(i)
			if item == any(seq) {
				continue
			}
			if err := RecursiveFindType(item, metaIO, strict); err != nil {
				return err
			}
		}
		return nil
	}

	leafMeta, ok := leafMetadata(obj)
	if !ok {
		return nil
	}
	merged, err := GCDMetadata(*metaIO, leafMeta, strict, strict)
	if err != nil {
		return err
	}
	*metaIO = merged
	return nil
}

func leafMetadata(obj any) (Metadata, bool) {
	switch v := obj.(type) {
	case DateTimeValue:
		return v.Meta, true
	case TimeDeltaValue:
		return v.Meta, true
	default:
		return Metadata{}, false
	}
}
