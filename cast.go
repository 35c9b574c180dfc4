package dtunit

// cast.go implements the cast-rule engine (§4.4): whether a metadata
// change from src to dst is legal under a given casting strictness
// level.

// CastingLevel names one of the four casting strictness levels, in
// increasing order of strictness.
type CastingLevel int8

const (
	Unsafe CastingLevel = iota
	SameKind
	Safe
	Equiv
)

func (l CastingLevel) String() string {
	switch l {
	case Unsafe:
		return "Unsafe"
	case SameKind:
		return "SameKind"
	case Safe:
		return "Safe"
	case Equiv:
		return "Equiv"
	default:
		return "CastingLevel(?)"
	}
}

// ValueKind distinguishes the two partition schemes used by the cast
// rule engine: datetime values partition date units from time units,
// timedelta values partition nonlinear (Y, M) units from everything
// else, including B.
type ValueKind int8

const (
	DatetimeKind ValueKind = iota
	TimedeltaKind
)

// sameSide reports whether src and dst fall on the same side of kind's
// casting partition.
func sameSide(src, dst Unit, kind ValueKind) bool {
	if kind == DatetimeKind {
		return src.isDateUnit() == dst.isDateUnit()
	}
	return src.isTimedeltaNonlinear() == dst.isTimedeltaNonlinear()
}

// strictNonlinearFor reports whether metadataDivides should apply the
// strict nonlinear-incompatibility rule for kind, per §4.4: timedelta
// casting is strict, datetime casting is not.
func strictNonlinearFor(kind ValueKind) bool {
	return kind == TimedeltaKind
}

// CanCast reports whether src can be cast to dst under the given
// casting level and value kind.
func CanCast(src, dst Metadata, level CastingLevel, kind ValueKind) bool {
	switch level {
	case Unsafe:
		return true
	case SameKind:
		if src.Unit == Generic || dst.Unit == Generic {
			return src.Unit == dst.Unit
		}
		return sameSide(src.Unit, dst.Unit, kind)
	case Safe:
		if !CanCast(src, dst, SameKind, kind) {
			return false
		}
		if src.Unit == Generic || dst.Unit == Generic {
			return src.Unit == dst.Unit
		}
		if src.Unit > dst.Unit {
			// dst must be no coarser than src, i.e. src <= dst in unit
			// order (coarser-or-equal index means coarser-or-equal
			// granularity here since the enum is ordered coarse to
			// fine).
			return false
		}
		// src's tick must divide evenly into whole dst ticks: every
		// src value must be exactly representable in dst with no
		// remainder.
		return metadataDivides(src, dst, strictNonlinearFor(kind))
	case Equiv:
		if src.Unit == Generic && dst.Unit == Generic {
			return true
		}
		return src.Unit == dst.Unit && src.Mult == dst.Mult
	default:
		return false
	}
}

// Cast converts v from src to dst under the given casting level,
// returning the NaT absorbing value unchanged. A cast from Generic
// retags v unchanged; a cast from a specific unit to Generic that the
// casting level admits fails with a TypeError.
func Cast(v int64, src, dst Metadata, level CastingLevel, kind ValueKind) (int64, error) {
	if v == NaT {
		return NaT, nil
	}
	if !CanCast(src, dst, level, kind) {
		return 0, &CastingError{Src: src, Dst: dst, Level: level}
	}

	num, den, err := conversionFactor(src, dst)
	if err != nil {
		return 0, err
	}

	scaled, overflowed := mulInt64(v, num)
	if overflowed {
		return 0, overflowErrorf("cast from %s to %s overflows", src, dst)
	}
	return floorDiv(scaled, den), nil
}
