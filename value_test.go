package dtunit_test

import (
	"testing"

	"github.com/dtunit/dtunit"
)

func TestDateTimeValueOfAndStruct(t *testing.T) {
	s := dtunit.DateTimeStruct{Year: 2000, Month: 2, Day: 29}
	v := dtunit.DateTimeValueOf(s, dtunit.MetadataOf(dtunit.D, 1))
	if v.Raw() != 11016 {
		t.Errorf("DateTimeValueOf(2000-02-29, D).Raw() = %d, want 11016", v.Raw())
	}
	back := v.Struct()
	if back.Year != s.Year || back.Month != s.Month || back.Day != s.Day {
		t.Errorf("v.Struct() = %+v, want %+v", back, s)
	}
}

func TestDateTimeValueFromTicksGenericPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("DateTimeValueFromTicks(non-NaT, Generic): want panic, got none")
		}
	}()
	dtunit.DateTimeValueFromTicks(5, dtunit.GenericMetadata())
}

func TestDateTimeNaT(t *testing.T) {
	v := dtunit.DateTimeNaT(dtunit.MetadataOf(dtunit.D, 1))
	if !v.IsNaT() {
		t.Error("DateTimeNaT().IsNaT() = false, want true")
	}
	if v.String() != "NaT" {
		t.Errorf("DateTimeNaT().String() = %q, want %q", v.String(), "NaT")
	}
}

func TestDateTimeValueCast(t *testing.T) {
	v := dtunit.DateTimeValueFromTicks(1, dtunit.MetadataOf(dtunit.H, 1))
	if !v.CanCast(dtunit.MetadataOf(dtunit.Min, 1), dtunit.Safe) {
		t.Error("CanCast(h/1 -> m/1, Safe) = false, want true")
	}
	got, err := v.Cast(dtunit.MetadataOf(dtunit.Min, 1), dtunit.Safe)
	if err != nil {
		t.Fatalf("Cast: %v", err)
	}
	if got.Raw() != 60 {
		t.Errorf("Cast(h/1 -> m/1).Raw() = %d, want 60", got.Raw())
	}
}

func TestDateTimeValueCastRefusedError(t *testing.T) {
	v := dtunit.DateTimeValueFromTicks(1, dtunit.MetadataOf(dtunit.H, 1))
	if _, err := v.Cast(dtunit.MetadataOf(dtunit.D, 1), dtunit.Safe); err == nil {
		t.Fatal("Cast(h/1 -> D/1, Safe): want error (coarsening refused), got nil")
	}
}

func TestDateTimeValueMustCastPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCast refused cast: want panic, got none")
		}
	}()
	v := dtunit.DateTimeValueFromTicks(1, dtunit.MetadataOf(dtunit.H, 1))
	v.MustCast(dtunit.MetadataOf(dtunit.D, 1), dtunit.Safe)
}

func TestDateTimeValueAddSub(t *testing.T) {
	start := dtunit.DateTimeValueOf(dtunit.DateTimeStruct{Year: 1970, Month: 1, Day: 1}, dtunit.MetadataOf(dtunit.D, 1))
	delta := dtunit.TimeDeltaValueFromTicks(25, dtunit.MetadataOf(dtunit.H, 1))

	if !start.CanAdd(delta) {
		t.Fatal("CanAdd(D/1, h/25) = false, want true")
	}
	sum := start.Add(delta)
	wantStruct := dtunit.DateTimeStruct{Year: 1970, Month: 1, Day: 2, Hour: 1}
	gotStruct := sum.Struct()
	if gotStruct.Year != wantStruct.Year || gotStruct.Month != wantStruct.Month ||
		gotStruct.Day != wantStruct.Day || gotStruct.Hour != wantStruct.Hour {
		t.Errorf("start.Add(25h) = %+v, want %+v", gotStruct, wantStruct)
	}

	back := sum.Sub(start)
	if back.Raw() != 25 || back.Meta.Unit != dtunit.H {
		t.Errorf("sum.Sub(start) = %d%s, want 25h", back.Raw(), back.Meta)
	}
}

func TestDateTimeValueAddSubNaTAbsorbs(t *testing.T) {
	nat := dtunit.DateTimeNaT(dtunit.MetadataOf(dtunit.D, 1))
	delta := dtunit.TimeDeltaValueFromTicks(1, dtunit.MetadataOf(dtunit.D, 1))
	if !nat.Add(delta).IsNaT() {
		t.Error("NaT.Add(delta) is not NaT")
	}

	start := dtunit.DateTimeValueFromTicks(1, dtunit.MetadataOf(dtunit.D, 1))
	natDelta := dtunit.TimeDeltaNaT(dtunit.MetadataOf(dtunit.D, 1))
	if !start.Add(natDelta).IsNaT() {
		t.Error("value.Add(NaT delta) is not NaT")
	}
	if !start.Sub(dtunit.DateTimeNaT(dtunit.MetadataOf(dtunit.D, 1))).IsNaT() {
		t.Error("value.Sub(NaT) is not NaT")
	}
}

func TestDateTimeValueEqual(t *testing.T) {
	a := dtunit.DateTimeValueFromTicks(1, dtunit.MetadataOf(dtunit.D, 1))
	b := dtunit.DateTimeValueFromTicks(24, dtunit.MetadataOf(dtunit.H, 1))
	if !a.Equal(b) {
		t.Errorf("%s.Equal(%s) = false, want true", a, b)
	}
	nat := dtunit.DateTimeNaT(dtunit.MetadataOf(dtunit.D, 1))
	if nat.Equal(nat) {
		t.Error("NaT.Equal(NaT) = true, want false")
	}
}

func TestDateTimeValueCompare(t *testing.T) {
	a := dtunit.DateTimeValueFromTicks(1, dtunit.MetadataOf(dtunit.D, 1))
	b := dtunit.DateTimeValueFromTicks(2, dtunit.MetadataOf(dtunit.D, 1))
	cmp, err := a.Compare(b)
	if err != nil {
		t.Fatalf("Compare: %v", err)
	}
	if cmp != -1 {
		t.Errorf("a.Compare(b) = %d, want -1", cmp)
	}
	cmp, err = b.Compare(a)
	if err != nil || cmp != 1 {
		t.Errorf("b.Compare(a) = (%d, %v), want (1, nil)", cmp, err)
	}
	cmp, err = a.Compare(a)
	if err != nil || cmp != 0 {
		t.Errorf("a.Compare(a) = (%d, %v), want (0, nil)", cmp, err)
	}
}

func TestDateTimeValueCompareNaTErrors(t *testing.T) {
	nat := dtunit.DateTimeNaT(dtunit.MetadataOf(dtunit.D, 1))
	other := dtunit.DateTimeValueFromTicks(1, dtunit.MetadataOf(dtunit.D, 1))
	if _, err := nat.Compare(other); err == nil {
		t.Fatal("Compare(NaT, x): want error, got nil")
	}
}

func TestTimeDeltaValueFromTicksGenericPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("TimeDeltaValueFromTicks(non-NaT, Generic): want panic, got none")
		}
	}()
	dtunit.TimeDeltaValueFromTicks(5, dtunit.GenericMetadata())
}

func TestTimeDeltaNaT(t *testing.T) {
	v := dtunit.TimeDeltaNaT(dtunit.MetadataOf(dtunit.D, 1))
	if !v.IsNaT() {
		t.Error("TimeDeltaNaT().IsNaT() = false, want true")
	}
	if v.String() != "NaT" {
		t.Errorf("TimeDeltaNaT().String() = %q, want %q", v.String(), "NaT")
	}
}

func TestTimeDeltaValueAdd(t *testing.T) {
	a := dtunit.TimeDeltaValueFromTicks(1, dtunit.MetadataOf(dtunit.D, 1))
	b := dtunit.TimeDeltaValueFromTicks(12, dtunit.MetadataOf(dtunit.H, 1))
	sum := a.Add(b)
	if sum.Meta.Unit != dtunit.H || sum.Raw() != 36 {
		t.Errorf("(1D).Add(12h) = %d%s, want 36h", sum.Raw(), sum.Meta)
	}
}

func TestTimeDeltaValueAddNaTAbsorbs(t *testing.T) {
	nat := dtunit.TimeDeltaNaT(dtunit.MetadataOf(dtunit.D, 1))
	other := dtunit.TimeDeltaValueFromTicks(1, dtunit.MetadataOf(dtunit.D, 1))
	if !nat.Add(other).IsNaT() {
		t.Error("NaT.Add(x) is not NaT")
	}
	if !other.Add(nat).IsNaT() {
		t.Error("x.Add(NaT) is not NaT")
	}
}

func TestTimeDeltaValueEqual(t *testing.T) {
	a := dtunit.TimeDeltaValueFromTicks(1, dtunit.MetadataOf(dtunit.D, 1))
	b := dtunit.TimeDeltaValueFromTicks(24, dtunit.MetadataOf(dtunit.H, 1))
	if !a.Equal(b) {
		t.Errorf("%s.Equal(%s) = false, want true", a, b)
	}
	c := dtunit.TimeDeltaValueFromTicks(23, dtunit.MetadataOf(dtunit.H, 1))
	if a.Equal(c) {
		t.Errorf("%s.Equal(%s) = true, want false", a, c)
	}
	nat := dtunit.TimeDeltaNaT(dtunit.MetadataOf(dtunit.D, 1))
	if nat.Equal(nat) {
		t.Error("NaT.Equal(NaT) = true, want false")
	}
}

func TestTimeDeltaValueEqualHandlesMinInt64(t *testing.T) {
	// Equal must not negate t2.v (computing GCDMetadata + Cast instead),
	// so the most negative non-NaT tick count (math.MinInt64+1;
	// math.MinInt64 itself is NaT) still compares equal to itself.
	a := dtunit.TimeDeltaValueFromTicks(-9223372036854775807, dtunit.MetadataOf(dtunit.Us, 1))
	b := dtunit.TimeDeltaValueFromTicks(-9223372036854775807, dtunit.MetadataOf(dtunit.Us, 1))
	if !a.Equal(b) {
		t.Error("Equal(MinInt64+1, MinInt64+1) = false, want true")
	}
}

func TestDateTimeValueString(t *testing.T) {
	v := dtunit.DateTimeValueOf(dtunit.DateTimeStruct{Year: 2020, Month: 6, Day: 15, Hour: 12, Minute: 30, Second: 45}, dtunit.MetadataOf(dtunit.S, 1))
	want := "2020-06-15T12:30:45[s]"
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestTimeDeltaValueString(t *testing.T) {
	v := dtunit.TimeDeltaValueFromTicks(5, dtunit.MetadataOf(dtunit.D, 1))
	want := "5[D]"
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
