package dtunit

import "fmt"

// value.go wraps the packed int64 representation in two exported value
// types, DateTimeValue and TimeDeltaValue, mirroring the teacher's
// LocalDateTime/Duration API: panicking constructors and mutators
// paired with internal (value, error) builders and Can* predicate
// siblings that report whether the panicking form would succeed.

// DateTimeValue is an instant tagged with the unit/multiplier it is
// measured in. The zero value is not NaT: it holds tick count 0 under
// the zero Metadata.
type DateTimeValue struct {
	v    int64
	Meta Metadata
}

// TimeDeltaValue is a duration tagged with the unit/multiplier it is
// measured in. The zero value is not NaT: it holds tick count 0 under
// the zero Metadata.
type TimeDeltaValue struct {
	v    int64
	Meta Metadata
}

// DateTimeValueOf returns the DateTimeValue for the given calendar
// struct at the given metadata. It panics if s is invalid or meta is
// Generic.
func DateTimeValueOf(s DateTimeStruct, meta Metadata) DateTimeValue {
	v, err := structToValue(s, meta)
	if err != nil {
		panic(err.Error())
	}
	return DateTimeValue{v: v, Meta: meta}
}

// DateTimeValueFromTicks wraps a raw tick count v under meta directly,
// bypassing the struct codec. It panics if meta is Generic and v is not
// NaT.
func DateTimeValueFromTicks(v int64, meta Metadata) DateTimeValue {
	if v != NaT && meta.Unit == Generic {
		panic("dtunit: cannot instantiate non-NaT value with Generic unit")
	}
	return DateTimeValue{v: v, Meta: meta}
}

// DateTimeNaT returns the NaT DateTimeValue tagged with meta.
func DateTimeNaT(meta Metadata) DateTimeValue {
	return DateTimeValue{v: NaT, Meta: meta}
}

// IsNaT reports whether d is the NaT sentinel.
func (d DateTimeValue) IsNaT() bool {
	return d.v == NaT
}

// Raw returns d's underlying tick count.
func (d DateTimeValue) Raw() int64 {
	return d.v
}

// Struct decodes d back into a calendar struct. It panics if d is not
// NaT and its metadata is Generic (which DateTimeValueOf and
// DateTimeValueFromTicks refuse to construct, so this only happens when
// the caller sets Meta directly), or if scaling the tick count by the
// multiplier overflows int64.
func (d DateTimeValue) Struct() DateTimeStruct {
	s, err := valueToStruct(d.v, d.Meta)
	if err != nil {
		panic(err.Error())
	}
	return s
}

// CanCast reports whether d can be cast to dst under level.
func (d DateTimeValue) CanCast(dst Metadata, level CastingLevel) bool {
	return CanCast(d.Meta, dst, level, DatetimeKind)
}

// Cast converts d to dst under the given casting level.
func (d DateTimeValue) Cast(dst Metadata, level CastingLevel) (DateTimeValue, error) {
	v, err := Cast(d.v, d.Meta, dst, level, DatetimeKind)
	if err != nil {
		return DateTimeValue{}, err
	}
	return DateTimeValue{v: v, Meta: dst}, nil
}

// MustCast converts d to dst under level, panicking if the cast is
// refused.
func (d DateTimeValue) MustCast(dst Metadata, level CastingLevel) DateTimeValue {
	out, err := d.Cast(dst, level)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Add returns d plus delta, promoted to their GCD metadata. It panics
// if the metadata join overflows or the resulting tick count overflows
// int64.
func (d DateTimeValue) Add(delta TimeDeltaValue) DateTimeValue {
	out, err := d.add(delta)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// CanAdd reports whether Add would panic if passed the same argument.
func (d DateTimeValue) CanAdd(delta TimeDeltaValue) bool {
	_, err := d.add(delta)
	return err == nil
}

func (d DateTimeValue) add(delta TimeDeltaValue) (DateTimeValue, error) {
	if d.IsNaT() || delta.IsNaT() {
		return DateTimeNaT(d.Meta), nil
	}

	commonMeta, _, err := PromoteType(d.Meta, DatetimeKind, delta.Meta, TimedeltaKind)
	if err != nil {
		return DateTimeValue{}, err
	}
	dv, err := Cast(d.v, d.Meta, commonMeta, Unsafe, DatetimeKind)
	if err != nil {
		return DateTimeValue{}, err
	}
	tv, err := Cast(delta.v, delta.Meta, commonMeta, Unsafe, TimedeltaKind)
	if err != nil {
		return DateTimeValue{}, err
	}

	sum, overflowed := addInt64(dv, tv)
	if overflowed {
		return DateTimeValue{}, overflowErrorf("datetime addition overflows")
	}
	return DateTimeValue{v: sum, Meta: commonMeta}, nil
}

// Sub returns the timedelta d-other, promoted to their GCD metadata.
// It panics if the metadata join overflows or the resulting tick count
// overflows int64.
func (d DateTimeValue) Sub(other DateTimeValue) TimeDeltaValue {
	out, err := d.sub(other)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// CanSub reports whether Sub would panic if passed the same argument.
func (d DateTimeValue) CanSub(other DateTimeValue) bool {
	_, err := d.sub(other)
	return err == nil
}

func (d DateTimeValue) sub(other DateTimeValue) (TimeDeltaValue, error) {
	if d.IsNaT() || other.IsNaT() {
		return TimeDeltaNaT(GenericMetadata()), nil
	}

	commonMeta, err := GCDMetadata(d.Meta, other.Meta, false, false)
	if err != nil {
		return TimeDeltaValue{}, err
	}
	dv, err := Cast(d.v, d.Meta, commonMeta, Unsafe, DatetimeKind)
	if err != nil {
		return TimeDeltaValue{}, err
	}
	ov, err := Cast(other.v, other.Meta, commonMeta, Unsafe, DatetimeKind)
	if err != nil {
		return TimeDeltaValue{}, err
	}

	diff, overflowed := subInt64(dv, ov)
	if overflowed {
		return TimeDeltaValue{}, overflowErrorf("datetime subtraction overflows")
	}
	return TimeDeltaValue{v: diff, Meta: commonMeta}, nil
}

// Equal reports whether d and d2 denote the same instant. NaT never
// equals anything, including another NaT, per §6.
func (d DateTimeValue) Equal(d2 DateTimeValue) bool {
	if d.IsNaT() || d2.IsNaT() {
		return false
	}
	diff, err := d.sub(d2)
	return err == nil && diff.v == 0
}

// Compare reports whether d is before (-1), after (1), or simultaneous
// with (0) d2. It is an error to compare a NaT value.
func (d DateTimeValue) Compare(d2 DateTimeValue) (int, error) {
	if d.IsNaT() || d2.IsNaT() {
		return 0, valueErrorf("cannot order NaT values")
	}
	diff, err := d.sub(d2)
	if err != nil {
		return 0, err
	}
	switch {
	case diff.v < 0:
		return -1, nil
	case diff.v > 0:
		return 1, nil
	default:
		return 0, nil
	}
}

func (d DateTimeValue) String() string {
	if d.IsNaT() {
		return "NaT"
	}
	s := d.Struct()
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d%s", s.Year, s.Month, s.Day, s.Hour, s.Minute, s.Second, d.Meta.Format(false))
}

// TimeDeltaValueFromTicks wraps a raw tick count v under meta. It
// panics if meta is Generic and v is not NaT.
func TimeDeltaValueFromTicks(v int64, meta Metadata) TimeDeltaValue {
	if v != NaT && meta.Unit == Generic {
		panic("dtunit: cannot instantiate non-NaT value with Generic unit")
	}
	return TimeDeltaValue{v: v, Meta: meta}
}

// TimeDeltaNaT returns the NaT TimeDeltaValue tagged with meta.
func TimeDeltaNaT(meta Metadata) TimeDeltaValue {
	return TimeDeltaValue{v: NaT, Meta: meta}
}

// IsNaT reports whether t is the NaT sentinel.
func (t TimeDeltaValue) IsNaT() bool {
	return t.v == NaT
}

// Raw returns t's underlying tick count.
func (t TimeDeltaValue) Raw() int64 {
	return t.v
}

// CanCast reports whether t can be cast to dst under level.
func (t TimeDeltaValue) CanCast(dst Metadata, level CastingLevel) bool {
	return CanCast(t.Meta, dst, level, TimedeltaKind)
}

// Cast converts t to dst under the given casting level.
func (t TimeDeltaValue) Cast(dst Metadata, level CastingLevel) (TimeDeltaValue, error) {
	v, err := Cast(t.v, t.Meta, dst, level, TimedeltaKind)
	if err != nil {
		return TimeDeltaValue{}, err
	}
	return TimeDeltaValue{v: v, Meta: dst}, nil
}

// MustCast converts t to dst under level, panicking if the cast is
// refused.
func (t TimeDeltaValue) MustCast(dst Metadata, level CastingLevel) TimeDeltaValue {
	out, err := t.Cast(dst, level)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// Add returns t plus t2, promoted to their GCD metadata. It panics if
// the metadata join overflows or the resulting tick count overflows
// int64.
func (t TimeDeltaValue) Add(t2 TimeDeltaValue) TimeDeltaValue {
	out, err := t.add(t2)
	if err != nil {
		panic(err.Error())
	}
	return out
}

// CanAdd reports whether Add would panic if passed the same argument.
func (t TimeDeltaValue) CanAdd(t2 TimeDeltaValue) bool {
	_, err := t.add(t2)
	return err == nil
}

func (t TimeDeltaValue) add(t2 TimeDeltaValue) (TimeDeltaValue, error) {
	if t.IsNaT() || t2.IsNaT() {
		return TimeDeltaNaT(t.Meta), nil
	}

	commonMeta, err := GCDMetadata(t.Meta, t2.Meta, true, true)
	if err != nil {
		return TimeDeltaValue{}, err
	}
	v1, err := Cast(t.v, t.Meta, commonMeta, Unsafe, TimedeltaKind)
	if err != nil {
		return TimeDeltaValue{}, err
	}
	v2, err := Cast(t2.v, t2.Meta, commonMeta, Unsafe, TimedeltaKind)
	if err != nil {
		return TimeDeltaValue{}, err
	}

	sum, overflowed := addInt64(v1, v2)
	if overflowed {
		return TimeDeltaValue{}, overflowErrorf("timedelta addition overflows")
	}
	return TimeDeltaValue{v: sum, Meta: commonMeta}, nil
}

// Equal reports whether t and t2 denote the same duration. NaT never
// equals anything, including another NaT.
func (t TimeDeltaValue) Equal(t2 TimeDeltaValue) bool {
	if t.IsNaT() || t2.IsNaT() {
		return false
	}
	commonMeta, err := GCDMetadata(t.Meta, t2.Meta, true, true)
	if err != nil {
		return false
	}
	v1, err1 := Cast(t.v, t.Meta, commonMeta, Unsafe, TimedeltaKind)
	v2, err2 := Cast(t2.v, t2.Meta, commonMeta, Unsafe, TimedeltaKind)
	return err1 == nil && err2 == nil && v1 == v2
}

func (t TimeDeltaValue) String() string {
	if t.IsNaT() {
		return "NaT"
	}
	return fmt.Sprintf("%d%s", t.v, t.Meta.Format(false))
}
