package dtunit_test

import (
	"testing"

	"github.com/dtunit/dtunit"
)

func TestGCDMetadataSameUnit(t *testing.T) {
	m1 := dtunit.MetadataOf(dtunit.Ms, 6)
	m2 := dtunit.MetadataOf(dtunit.Ms, 4)
	got, err := dtunit.GCDMetadata(m1, m2, false, false)
	if err != nil {
		t.Fatalf("GCDMetadata: %v", err)
	}
	want := dtunit.MetadataOf(dtunit.Ms, 2)
	if !got.Equal(want) {
		t.Errorf("GCDMetadata(%s, %s) = %s, want %s", m1, m2, got, want)
	}
}

func TestGCDMetadataYearMonth(t *testing.T) {
	y := dtunit.MetadataOf(dtunit.Y, 1)
	m := dtunit.MetadataOf(dtunit.M, 1)
	got, err := dtunit.GCDMetadata(y, m, false, false)
	if err != nil {
		t.Fatalf("GCDMetadata: %v", err)
	}
	want := dtunit.MetadataOf(dtunit.M, 1)
	if !got.Equal(want) {
		t.Errorf("GCDMetadata(Y/1, M/1) = %s, want %s", got, want)
	}
}

func TestGCDMetadataBusinessDayStrict(t *testing.T) {
	b := dtunit.MetadataOf(dtunit.B, 1)
	d := dtunit.MetadataOf(dtunit.D, 1)
	if _, err := dtunit.GCDMetadata(b, d, true, true); err == nil {
		t.Fatal("GCDMetadata(B/1, D/1, strict) = nil error, want incompatible-units error")
	}
}

func TestGCDMetadataBusinessDayRelaxed(t *testing.T) {
	// B joined with a unit finer than itself (h) just adopts that finer
	// unit outright under the "take the finer of the two" rule; the
	// B->D coercion only fires when B itself is the finer side (e.g.
	// B joined with Y, M, or W). This matches numpy's
	// compute_datetime_metadata_greatest_common_divisor (datetime.c)
	// and spec §4.5's "take the greater/finer; if *that* would be B,
	// coerce to D" wording.
	b := dtunit.MetadataOf(dtunit.B, 1)
	h := dtunit.MetadataOf(dtunit.H, 1)
	got, err := dtunit.GCDMetadata(b, h, false, false)
	if err != nil {
		t.Fatalf("GCDMetadata(B/1, h/1, relaxed): %v", err)
	}
	want := dtunit.MetadataOf(dtunit.H, 1)
	if !got.Equal(want) {
		t.Errorf("GCDMetadata(B/1, h/1, relaxed) = %s, want %s", got, want)
	}
}

func TestGCDMetadataBusinessDayRelaxedCoercesToDay(t *testing.T) {
	// Here B is the finer of the two units (W is coarser), so the
	// B->D coercion does fire.
	w := dtunit.MetadataOf(dtunit.W, 1)
	b := dtunit.MetadataOf(dtunit.B, 1)
	got, err := dtunit.GCDMetadata(w, b, false, false)
	if err != nil {
		t.Fatalf("GCDMetadata(W/1, B/1, relaxed): %v", err)
	}
	want := dtunit.MetadataOf(dtunit.D, 1)
	if !got.Equal(want) {
		t.Errorf("GCDMetadata(W/1, B/1, relaxed) = %s, want %s", got, want)
	}
}

func TestGCDMetadataGenericIdentity(t *testing.T) {
	g := dtunit.GenericMetadata()
	d := dtunit.MetadataOf(dtunit.D, 5)
	got, err := dtunit.GCDMetadata(g, d, false, false)
	if err != nil {
		t.Fatalf("GCDMetadata(Generic, D/5): %v", err)
	}
	if !got.Equal(d) {
		t.Errorf("GCDMetadata(Generic, D/5) = %s, want %s", got, d)
	}
}

func TestGCDMetadataCommutativeAndIdempotent(t *testing.T) {
	pairs := []struct{ a, b dtunit.Metadata }{
		{dtunit.MetadataOf(dtunit.D, 1), dtunit.MetadataOf(dtunit.H, 6)},
		{dtunit.MetadataOf(dtunit.W, 3), dtunit.MetadataOf(dtunit.D, 5)},
		{dtunit.MetadataOf(dtunit.Ms, 1), dtunit.MetadataOf(dtunit.Ms, 1)},
	}
	for _, p := range pairs {
		ab, errAB := dtunit.GCDMetadata(p.a, p.b, false, false)
		ba, errBA := dtunit.GCDMetadata(p.b, p.a, false, false)
		if (errAB == nil) != (errBA == nil) {
			t.Fatalf("GCDMetadata(%s,%s) error mismatch: %v vs %v", p.a, p.b, errAB, errBA)
		}
		if errAB == nil && !ab.Equal(ba) {
			t.Errorf("GCDMetadata not commutative: %s vs %s", ab, ba)
		}

		aa, err := dtunit.GCDMetadata(p.a, p.a, false, false)
		if err != nil {
			t.Fatalf("GCDMetadata(a,a): %v", err)
		}
		if !aa.Equal(p.a) {
			t.Errorf("GCDMetadata not idempotent: GCDMetadata(%s,%s) = %s, want %s", p.a, p.a, aa, p.a)
		}
	}
}

func TestPromoteType(t *testing.T) {
	meta, kind, err := dtunit.PromoteType(dtunit.MetadataOf(dtunit.D, 1), dtunit.DatetimeKind, dtunit.MetadataOf(dtunit.H, 6), dtunit.TimedeltaKind)
	if err != nil {
		t.Fatalf("PromoteType: %v", err)
	}
	if kind != dtunit.DatetimeKind {
		t.Errorf("PromoteType kind = %v, want DatetimeKind", kind)
	}
	want := dtunit.MetadataOf(dtunit.H, 6)
	if !meta.Equal(want) {
		t.Errorf("PromoteType metadata = %s, want %s", meta, want)
	}
}
