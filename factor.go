package dtunit

import "math/big"

// factor.go implements the unit-factor arithmetic (§4.3): exact
// conversion factors between unit pairs as reduced rationals, with
// overflow detection on the u64 accumulators involved.

// unitFactor[u] is the ratio of one tick of u to one tick of the next
// finer unit. Y, M and B carry a placeholder value of 1 (multiplicative
// identity) rather than a real factor: they have no constant
// conversion to other units and callers must special-case them before
// reaching the generic linear-chain arithmetic below. Generic carries 0,
// so any factor product that includes it is 0.
var unitFactor = [Generic + 1]uint64{
	Y:       1,
	M:       1,
	W:       7,
	B:       1,
	D:       24,
	H:       60,
	Min:     60,
	S:       1000,
	Ms:      1000,
	Us:      1000,
	Ns:      1000,
	Ps:      1000,
	Fs:      1000,
	As:      1,
	Generic: 0,
}

// unitsFactor returns the product of unitFactor[u] for every unit u
// strictly coarser than fine, starting at coarse (coarse must be no
// finer than fine). It returns (0, true) on overflow, using the same
// conservative top-8-bit guard as mulU64Checked.
func unitsFactor(coarse, fine Unit) (uint64, bool) {
	product := uint64(1)
	for u := coarse; u < fine; u++ {
		var overflowed bool
		product, overflowed = mulU64Checked(product, unitFactor[u])
		if overflowed {
			return 0, true
		}
	}
	return product, false
}

// gcdU64 returns the greatest common divisor of a and b, computed via
// math/big.Int.GCD the way the teacher reaches for big.Int whenever an
// arithmetic step could otherwise overflow its native accumulator
// (date.go's addDurationToBigDate, local_date_time.go's big.Int-backed
// instant field): a plain uint64 Euclidean loop would be exact here
// too, but routing the reduction through big.Int keeps this package's
// "never silently overflow" discipline uniform with the rest of the
// value arithmetic.
func gcdU64(a, b uint64) uint64 {
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).SetUint64(a), new(big.Int).SetUint64(b))
	return g.Uint64()
}

// rational400Y is the 400-year Gregorian cycle length in days
// (400*365 + 97 leap days), used as the exact calendar-average factor
// whenever Y or M must be converted to a linear unit. The FIXME this is
// grounded on (spec §9): the result is an average, not an exact
// per-instance factor, and implementers must preserve that
// approximation rather than try to make it exact.
const rational400Y = 146097

// conversionFactor computes (num, den) such that a value v in src
// equals v*num/den in dst, per §4.3.
func conversionFactor(src, dst Metadata) (num, den int64, err error) {
	switch {
	case src.Unit == Generic && dst.Unit == Generic:
		return 1, 1, nil
	case src.Unit == Generic:
		return 1, 1, nil
	case dst.Unit == Generic:
		return 0, 0, typeErrorf("cannot convert specific unit %s to Generic", src.Unit)
	}

	var n, d uint64
	if src.Unit == dst.Unit {
		n, d = uint64(src.Mult), uint64(dst.Mult)
	} else {
		coarse, fine := src.Unit, dst.Unit
		swapped := false
		if coarse > fine {
			coarse, fine = fine, coarse
			swapped = true
		}

		var overflowed bool
		n, d, overflowed = unitPairFactor(coarse, fine)
		if overflowed {
			return 0, 0, overflowErrorf("conversion factor between %s and %s overflows", src.Unit, dst.Unit)
		}

		if swapped {
			n, d = d, n
		}

		var ofN, ofD bool
		n, ofN = mulU64Checked(n, uint64(src.Mult))
		d, ofD = mulU64Checked(d, uint64(dst.Mult))
		if ofN || ofD {
			return 0, 0, overflowErrorf("conversion factor between %s and %s overflows", src.Unit, dst.Unit)
		}
	}

	g := gcdU64(n, d)
	if g > 0 {
		n /= g
		d /= g
	}

	if n > 1<<62 || d > 1<<62 {
		return 0, 0, overflowErrorf("conversion factor between %s and %s overflows", src.Unit, dst.Unit)
	}
	return int64(n), int64(d), nil
}

// unitPairFactor computes the (num, den) factor taking one tick of
// coarse to dst ticks of fine, where coarse <= fine in unit order. It
// implements the Y/M-anchored nonlinear bullets of §4.3 plus the
// all-linear fallback.
func unitPairFactor(coarse, fine Unit) (num, den uint64, overflowed bool) {
	switch coarse {
	case Y:
		switch {
		case fine == M:
			return 12, 1, false
		case fine == W:
			return rational400Y, 400 * 7, false
		case fine == B:
			return rational400Y * 5 / 7, 400, false
		case fine >= D:
			f, of := unitsFactor(D, fine)
			if of {
				return 0, 0, true
			}
			n, of := mulU64Checked(rational400Y, f)
			return n, 400, of
		default:
			return 0, 0, true
		}
	case M:
		switch {
		case fine == W:
			return rational400Y, 400 * 12 * 7, false
		case fine == B:
			return rational400Y * 5 / 7, 400 * 12, false
		case fine >= D:
			f, of := unitsFactor(D, fine)
			if of {
				return 0, 0, true
			}
			n, of := mulU64Checked(rational400Y, f)
			return n, 400 * 12, of
		default:
			return 0, 0, true
		}
	case B:
		// B has no linear factor to any other unit; only Y/M -> B
		// (handled above) and B -> B (same-unit, handled by the
		// caller) are supported.
		return 0, 0, true
	default:
		if fine == B {
			// Y/M -> B is handled above; the remaining W -> B pair
			// has no linear factor and is unsupported.
			return 0, 0, true
		}
		f, of := unitsFactor(coarse, fine)
		return f, 1, of
	}
}

// metadataDivides reports whether divisor evenly divides dividend, i.e.
// whether some positive integer k exists such that divisor*k ==
// dividend once both are normalized to a common unit, per §4.3.
func metadataDivides(dividend, divisor Metadata, strictNonlinear bool) bool {
	if divisor.Unit == Generic {
		return true
	}
	if dividend.Unit == Generic {
		return false
	}
	if divisor.Unit == B || dividend.Unit == B {
		return divisor.Unit == dividend.Unit
	}

	if (divisor.Unit == Y || divisor.Unit == M) != (dividend.Unit == Y || dividend.Unit == M) {
		// Exactly one side is a Y/M nonlinear unit; the other is
		// neither B nor Generic (both already excluded above).
		if strictNonlinear {
			return false
		}
		return true
	}

	if (divisor.Unit == Y || divisor.Unit == M) && (dividend.Unit == Y || dividend.Unit == M) {
		// Y and M are mutually commensurable via the exact factor 12.
		divNum := int64(divisor.Mult)
		if divisor.Unit == Y {
			divNum *= 12
		}
		dividendNum := int64(dividend.Mult)
		if dividend.Unit == Y {
			dividendNum *= 12
		}
		return dividendNum%divNum == 0
	}

	common := divisor.Unit
	if dividend.Unit > common {
		common = dividend.Unit
	}

	divisorTicks := uint64(divisor.Mult)
	if divisor.Unit != common {
		f, of := unitsFactor(divisor.Unit, common)
		if of {
			return false
		}
		divisorTicks *= f
	}

	dividendTicks := uint64(dividend.Mult)
	if dividend.Unit != common {
		f, of := unitsFactor(dividend.Unit, common)
		if of {
			return false
		}
		dividendTicks *= f
	}

	if divisorTicks == 0 {
		return false
	}
	return dividendTicks%divisorTicks == 0
}
