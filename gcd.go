package dtunit

import "math"

// gcd.go implements the metadata GCD and type-promotion join (§4.5).

// GCDMetadata computes the greatest-common-divisor metadata of m1 and
// m2: the coarsest-resolution metadata that both can be exactly cast up
// to. strict1/strict2 are each value's casting strictness (true for
// timedelta, false for datetime, per §4.4's partition choice) and gate
// whether an incompatible Y/M/B pairing is an error or a conservative
// best-effort join.
//
// The B-involving branch documents a known approximation (spec §9's
// FIXME): relaxed joins take the finer of the two units outright,
// adopting its multiplier without computing any actual business-day
// conversion factor (B has none). That only surfaces as a coercion to
// D when B itself turns out to be the finer side (B joined with Y, M,
// or W) — B paired with a unit finer than itself (h, s, ...) simply
// adopts that finer unit as-is, since it was already going to win the
// "take the finer unit" rule. This is intentional and preserved as
// specified, not a bug to fix.
func GCDMetadata(m1, m2 Metadata, strict1, strict2 bool) (Metadata, error) {
	if m1.Unit == Generic {
		return m2, nil
	}
	if m2.Unit == Generic {
		return m1, nil
	}

	if m1.Unit == m2.Unit {
		return mkMetadata(m1.Unit, gcdU64(uint64(m1.Mult), uint64(m2.Mult)))
	}

	strict := strict1 || strict2

	switch {
	case (m1.Unit == Y && m2.Unit == M) || (m1.Unit == M && m2.Unit == Y):
		var yMeta, mMeta Metadata
		if m1.Unit == Y {
			yMeta, mMeta = m1, m2
		} else {
			yMeta, mMeta = m2, m1
		}
		scaled := uint64(yMeta.Mult) * 12
		return mkMetadata(M, gcdU64(scaled, uint64(mMeta.Mult)))

	case m1.Unit == B || m2.Unit == B:
		if strict {
			return Metadata{}, valueErrorf("incompatible nonlinear units %s and %s", m1.Unit, m2.Unit)
		}
		chosen := m1.Unit
		chosenMult := m1.Mult
		if m2.Unit > m1.Unit {
			chosen, chosenMult = m2.Unit, m2.Mult
		}
		if chosen == B {
			chosen, chosenMult = D, 1
		}
		return mkMetadata(chosen, uint64(chosenMult))

	case (m1.Unit == Y || m1.Unit == M) || (m2.Unit == Y || m2.Unit == M):
		// Exactly one side is Y or M (the Y<->M and B cases were
		// handled above), the other a fine linear unit.
		if strict {
			return Metadata{}, valueErrorf("incompatible nonlinear units %s and %s", m1.Unit, m2.Unit)
		}
		if m1.Unit > m2.Unit {
			return m1, nil
		}
		return m2, nil

	default:
		coarse, coarseMult := m1.Unit, m1.Mult
		fine, fineMult := m2.Unit, m2.Mult
		if coarse > fine {
			coarse, fine = fine, coarse
			coarseMult, fineMult = fineMult, coarseMult
		}

		f, overflowed := unitsFactor(coarse, fine)
		if overflowed {
			return Metadata{}, overflowErrorf("GCD of %s and %s overflows", m1.Unit, m2.Unit)
		}
		scaled, overflowed := mulU64Checked(uint64(coarseMult), f)
		if overflowed {
			return Metadata{}, overflowErrorf("GCD of %s and %s overflows", m1.Unit, m2.Unit)
		}
		return mkMetadata(fine, gcdU64(scaled, uint64(fineMult)))
	}
}

func mkMetadata(unit Unit, mult uint64) (Metadata, error) {
	if mult == 0 || mult > math.MaxInt32 {
		return Metadata{}, overflowErrorf("GCD multiplier %d does not fit in a positive int32", mult)
	}
	return Metadata{Unit: unit, Mult: int32(mult)}, nil
}

// strict reports whether an operand of kind k joins under the strict
// nonlinear-unit rules (true for timedelta, false for datetime), per
// §4.4/§4.5's differing strictness rules.
func (k ValueKind) strict() bool {
	return strictNonlinearFor(k)
}

// PromoteType joins two (metadata, kind) operands per §4.5: the
// result's metadata is GCDMetadata(a, b) with each side's strictness
// drawn from its own kind, and the result kind is Datetime if either
// operand is Datetime, else Timedelta.
func PromoteType(aMeta Metadata, aKind ValueKind, bMeta Metadata, bKind ValueKind) (Metadata, ValueKind, error) {
	meta, err := GCDMetadata(aMeta, bMeta, aKind.strict(), bKind.strict())
	if err != nil {
		return Metadata{}, 0, err
	}

	kind := TimedeltaKind
	if aKind == DatetimeKind || bKind == DatetimeKind {
		kind = DatetimeKind
	}
	return meta, kind, nil
}
