package dtunit

// codec.go implements the struct<->value codec (§4.2): conversion
// between a DateTimeStruct and a packed int64 tick count at a given
// (unit, multiplier).

// perDayTicks gives the number of whole ticks of unit u in a single
// calendar day, for the linear sub-day units. fs and as are handled
// separately (see valueToStruct) because their per-day tick count
// would overflow int64.
var perDayTicks = map[Unit]int64{
	H:   24,
	Min: 1440,
	S:   86400,
	Ms:  86400_000,
	Us:  86400_000_000,
	Ns:  86400_000_000_000,
	Ps:  86400_000_000_000_000,
}

const (
	ticksPerSecMs = 1_000
	ticksPerSecUs = 1_000_000
	ticksPerSecNs = 1_000_000_000
	ticksPerSecPs = 1_000_000_000_000
	ticksPerSecFs = 1_000_000_000_000_000
	ticksPerSecAs = 1_000_000_000_000_000_000
)

// structToValue converts s to the packed tick count at the given
// metadata, per §4.2.
func structToValue(s DateTimeStruct, meta Metadata) (int64, error) {
	if s.IsNaT() {
		return NaT, nil
	}
	if meta.Unit == Generic {
		return 0, valueErrorf("cannot instantiate non-NaT value with Generic unit")
	}
	if !s.Valid() {
		return 0, valueErrorf("invalid datetime components")
	}

	var v int64
	days := daysFromEpoch(s)

	switch meta.Unit {
	case Y:
		v = s.Year - 1970
	case M:
		v = 12*(s.Year-1970) + int64(s.Month-1)
	case W:
		v = floorDiv(days, 7)
	case B:
		v = businessDaysBetween(0, days)
	case D:
		v = days
	case H:
		v = days*24 + int64(s.Hour)
	case Min:
		v = (days*24+int64(s.Hour))*60 + int64(s.Minute)
	case S:
		v = ((days*24+int64(s.Hour))*60+int64(s.Minute))*60 + int64(s.Second)
	case Ms, Us, Ns, Ps, Fs, As:
		secTotal := ((days*24+int64(s.Hour))*60+int64(s.Minute))*60 + int64(s.Second)
		subsecAs := int64(s.Microsecond)*1_000_000_000_000 + int64(s.Picosecond)*1_000_000 + int64(s.Attosecond)
		switch meta.Unit {
		case Ms:
			v = secTotal*ticksPerSecMs + subsecAs/(ticksPerSecAs/ticksPerSecMs)
		case Us:
			v = secTotal*ticksPerSecUs + subsecAs/(ticksPerSecAs/ticksPerSecUs)
		case Ns:
			v = secTotal*ticksPerSecNs + subsecAs/(ticksPerSecAs/ticksPerSecNs)
		case Ps:
			v = secTotal*ticksPerSecPs + subsecAs/(ticksPerSecAs/ticksPerSecPs)
		case Fs:
			v = secTotal*ticksPerSecFs + subsecAs/(ticksPerSecAs/ticksPerSecFs)
		case As:
			v = secTotal*ticksPerSecAs + subsecAs
		}
	default:
		return 0, typeErrorf("unsupported unit %s", meta.Unit)
	}

	return floorDiv(v, int64(meta.Mult)), nil
}

// valueToStruct converts a packed tick count v at the given metadata
// back to a DateTimeStruct, per §4.2.
func valueToStruct(v int64, meta Metadata) (DateTimeStruct, error) {
	if v == NaT {
		return NaTStruct(), nil
	}
	if meta.Unit == Generic {
		return DateTimeStruct{}, valueErrorf("cannot decode value with Generic unit")
	}

	v, overflowed := mulInt64(v, int64(meta.Mult))
	if overflowed {
		return DateTimeStruct{}, overflowErrorf("value overflows int64 when scaled by multiplier")
	}

	switch meta.Unit {
	case Y:
		return DateTimeStruct{Year: 1970 + v, Month: 1, Day: 1}, nil
	case M:
		var year int64
		var month int64
		if v >= 0 {
			year = 1970 + v/12
			month = v%12 + 1
		} else {
			year = 1969 + (v+1)/12
			month = 12 + (v+1)%12
		}
		return DateTimeStruct{Year: year, Month: int32(month), Day: 1}, nil
	case W:
		return daysToStruct(v * 7), nil
	case B:
		return daysToStruct(businessDayToDays(v)), nil
	case D:
		return daysToStruct(v), nil
	case H, Min, S:
		perday := perDayTicks[meta.Unit]
		days := floorDiv(v, perday)
		intra := v - days*perday

		out := daysToStruct(days)
		switch meta.Unit {
		case H:
			out.Hour = int32(intra)
		case Min:
			out.Hour = int32(intra / 60)
			out.Minute = int32(intra % 60)
		case S:
			out.Hour = int32(intra / 3600)
			out.Minute = int32((intra / 60) % 60)
			out.Second = int32(intra % 60)
		}
		return out, nil
	case Ms, Us, Ns, Ps:
		perday := perDayTicks[meta.Unit]
		days := floorDiv(v, perday)
		intra := v - days*perday

		var ticksPerSec int64
		switch meta.Unit {
		case Ms:
			ticksPerSec = ticksPerSecMs
		case Us:
			ticksPerSec = ticksPerSecUs
		case Ns:
			ticksPerSec = ticksPerSecNs
		case Ps:
			ticksPerSec = ticksPerSecPs
		}

		secWithinDay := intra / ticksPerSec
		subTicks := intra % ticksPerSec

		out := daysToStruct(days)
		out.Hour = int32(secWithinDay / 3600)
		out.Minute = int32((secWithinDay / 60) % 60)
		out.Second = int32(secWithinDay % 60)

		switch meta.Unit {
		case Ms:
			out.Microsecond = int32(subTicks * 1000)
		case Us:
			out.Microsecond = int32(subTicks)
		case Ns:
			out.Microsecond = int32(subTicks / 1000)
			out.Picosecond = int32((subTicks % 1000) * 1000)
		case Ps:
			out.Microsecond = int32(subTicks / 1_000_000)
			out.Picosecond = int32(subTicks % 1_000_000)
		}
		return out, nil
	case Fs, As:
		var ticksPerSec int64
		if meta.Unit == Fs {
			ticksPerSec = ticksPerSecFs
		} else {
			ticksPerSec = ticksPerSecAs
		}

		secs := floorDiv(v, ticksPerSec)
		subTicks := floorMod(v, ticksPerSec)

		base := addSecondsToDatetimeStruct(DateTimeStruct{Year: 1970, Month: 1, Day: 1}, secs)

		var subsecAs int64
		if meta.Unit == Fs {
			subsecAs = subTicks * 1000
		} else {
			subsecAs = subTicks
		}
		base.Microsecond = int32(subsecAs / 1_000_000_000_000)
		rem := subsecAs % 1_000_000_000_000
		base.Picosecond = int32(rem / 1_000_000)
		base.Attosecond = int32(rem % 1_000_000)
		return base, nil
	}

	return DateTimeStruct{}, typeErrorf("unsupported unit %s", meta.Unit)
}
