package dtunit

// arange.go implements the arange generator described at the interface
// level in §6: build the sequence of tick counts from start to stop in
// steps of step, inferring a common unit via GCDMetadata across every
// supplied bound.

// rangeOperand normalizes one of Arange's three positional arguments —
// each of which may be absent (nil), a DateTimeValue, or a
// TimeDeltaValue — into a uniform shape.
type rangeOperand struct {
	present bool
	kind    ValueKind
	ticks   int64
	meta    Metadata
}

func resolveRangeOperand(v any) (rangeOperand, error) {
	switch t := v.(type) {
	case nil:
		return rangeOperand{}, nil
	case DateTimeValue:
		if t.IsNaT() {
			return rangeOperand{}, valueErrorf("arange bound must not be NaT")
		}
		return rangeOperand{present: true, kind: DatetimeKind, ticks: t.v, meta: t.Meta}, nil
	case TimeDeltaValue:
		if t.IsNaT() {
			return rangeOperand{}, valueErrorf("arange bound must not be NaT")
		}
		return rangeOperand{present: true, kind: TimedeltaKind, ticks: t.v, meta: t.Meta}, nil
	default:
		return rangeOperand{}, typeErrorf("arange bound must be a DateTimeValue, TimeDeltaValue, or nil, got %T", v)
	}
}

// Arange normalizes start/stop/step (each nil, a DateTimeValue, or a
// TimeDeltaValue), infers a common unit by folding meta and every
// supplied bound through GCDMetadata, and returns the resulting tick
// sequence along with the metadata it was generated under.
//
// If stop is nil, start is reinterpreted as stop with an implicit zero
// start — but only for a timedelta arange; a datetime arange always
// requires an explicit start. step defaults to 1 and must not be zero.
// When stop is a timedelta but start is a datetime, start is added into
// stop before the sequence length is computed, so that stop reads as
// "duration past start".
func Arange(start, stop, step any, meta Metadata) ([]int64, Metadata, error) {
	startOp, err := resolveRangeOperand(start)
	if err != nil {
		return nil, Metadata{}, err
	}
	stopOp, err := resolveRangeOperand(stop)
	if err != nil {
		return nil, Metadata{}, err
	}
	stepOp, err := resolveRangeOperand(step)
	if err != nil {
		return nil, Metadata{}, err
	}

	isDatetime := (startOp.present && startOp.kind == DatetimeKind) ||
		(stopOp.present && stopOp.kind == DatetimeKind)

	if !stopOp.present {
		if !startOp.present {
			return nil, Metadata{}, valueErrorf("arange requires at least a stop value")
		}
		if isDatetime {
			return nil, Metadata{}, valueErrorf("datetime arange requires an explicit start")
		}
		stopOp = startOp
		startOp = rangeOperand{present: true, kind: stopOp.kind, ticks: 0, meta: GenericMetadata()}
	}
	if isDatetime && !startOp.present {
		return nil, Metadata{}, valueErrorf("datetime arange requires an explicit start")
	}

	if !stepOp.present {
		stepOp = rangeOperand{present: true, kind: TimedeltaKind, ticks: 1, meta: GenericMetadata()}
	}

	result := meta
	for _, op := range [...]rangeOperand{startOp, stopOp, stepOp} {
		if !op.present {
			continue
		}
		strict := op.kind == TimedeltaKind
		merged, err := GCDMetadata(result, op.meta, strict, strict)
		if err != nil {
			return nil, Metadata{}, err
		}
		result = merged
	}
	if result.Unit == Generic {
		return nil, Metadata{}, valueErrorf("arange could not infer a concrete unit")
	}

	startV, err := Cast(startOp.ticks, startOp.meta, result, Unsafe, startOp.kind)
	if err != nil {
		return nil, Metadata{}, err
	}
	stopV, err := Cast(stopOp.ticks, stopOp.meta, result, Unsafe, stopOp.kind)
	if err != nil {
		return nil, Metadata{}, err
	}
	stepV, err := Cast(stepOp.ticks, stepOp.meta, result, Unsafe, TimedeltaKind)
	if err != nil {
		return nil, Metadata{}, err
	}
	if stepV == 0 {
		return nil, Metadata{}, valueErrorf("arange step must not be zero")
	}

	if isDatetime && stopOp.kind == TimedeltaKind {
		sum, overflowed := addInt64(startV, stopV)
		if overflowed {
			return nil, Metadata{}, overflowErrorf("arange bound overflows")
		}
		stopV = sum
	}

	span, overflowed := subInt64(stopV, startV)
	if overflowed {
		return nil, Metadata{}, overflowErrorf("arange span overflows")
	}

	length := ceilDivSigned(span, stepV)

	out := make([]int64, 0, length)
	cur := startV
	for i := int64(0); i < length; i++ {
		out = append(out, cur)
		cur, overflowed = addInt64(cur, stepV)
		if overflowed {
			return nil, Metadata{}, overflowErrorf("arange sequence overflows")
		}
	}
	return out, result, nil
}

// ceilDivSigned returns the sign-aware ceiling of a/b, clamped to 0 when
// the true quotient would be negative (stepping away from the target
// produces an empty sequence rather than a negative length).
func ceilDivSigned(a, b int64) int64 {
	q := a / b
	r := a % b
	if r != 0 && (a < 0) == (b < 0) {
		q++
	}
	if q < 0 {
		return 0
	}
	return q
}
