package dtunit

import (
	"math"
	"strconv"
	"strings"
)

// format.go implements metadata (de)serialization (§4.6): the bracketed
// metastr grammar, the type-prefix and tuple input forms, and the
// output formatter referenced by Metadata.String.

// divisorCandidate names one finer unit reachable from another unit by
// exact multiplication, for divisor_to_multiple resolution.
type divisorCandidate struct {
	factor uint64
	unit   Unit
}

// divisorTable lists, per unit, up to four finer candidates reachable
// by exact multiplication, for resolving a metastr denominator (§4.6).
// This is a distinct, nominal table from unitFactor/unitsFactor: Y and
// M here use the common calendar approximations (365 days/year, 30
// days/month) rather than the exact 400-year-cycle rational used by
// conversionFactor, matching the grammar's own documented behavior. B
// and As have no entries and so never resolve a denominator.
var divisorTable = map[Unit][]divisorCandidate{
	Y:   {{12, M}, {52, W}, {365, D}},
	M:   {{4, W}, {30, D}, {720, H}, {43200, Min}},
	W:   {{7, D}, {168, H}, {10080, Min}, {604800, S}},
	D:   {{24, H}, {1440, Min}, {86400, S}},
	H:   {{60, Min}, {3600, S}},
	Min: {{60, S}},
	S:   {{1000, Ms}},
	Ms:  {{1000, Us}},
	Us:  {{1000, Ns}},
	Ns:  {{1000, Ps}},
	Ps:  {{1000, Fs}},
	Fs:  {{1000, As}},
}

// divisorToMultiple resolves a parsed denominator against unit u,
// implementing the grammar's divisor_to_multiple rule: find the
// smallest finer candidate from divisorTable whose factor is evenly
// divisible by den.
func divisorToMultiple(u Unit, den uint64) (Unit, uint64, bool) {
	if den <= 1 {
		return u, 1, true
	}
	for _, c := range divisorTable[u] {
		if c.factor%den == 0 {
			return c.unit, c.factor / den, true
		}
	}
	return 0, 0, false
}

// ParseMetadata parses a bracketed metastr, per §4.6's grammar. The
// empty string denotes Generic/1.
func ParseMetadata(s string) (Metadata, error) {
	if s == "" {
		return GenericMetadata(), nil
	}
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return Metadata{}, typeErrorf("malformed metadata string %q", s)
	}
	return parseMetadataExt(s[1 : len(s)-1])
}

func parseMetadataExt(ext string) (Metadata, error) {
	i := 0
	for i < len(ext) && ext[i] >= '0' && ext[i] <= '9' {
		i++
	}
	numStr, rest := ext[:i], ext[i:]

	num := int64(1)
	if numStr != "" {
		n, err := strconv.ParseInt(numStr, 10, 64)
		if err != nil || n <= 0 {
			return Metadata{}, typeErrorf("malformed metadata multiplier %q", numStr)
		}
		num = n
	}

	unitStr, denStr := rest, ""
	if idx := strings.IndexByte(rest, '/'); idx >= 0 {
		unitStr, denStr = rest[:idx], rest[idx+1:]
	}

	unit, ok := unitByName[unitStr]
	if !ok {
		return Metadata{}, typeErrorf("unrecognized unit %q", unitStr)
	}

	if denStr == "" {
		if num > math.MaxInt32 {
			return Metadata{}, overflowErrorf("metadata multiplier %d overflows int32", num)
		}
		return Metadata{Unit: unit, Mult: int32(num)}, nil
	}

	den, err := strconv.ParseInt(denStr, 10, 64)
	if err != nil || den <= 0 {
		return Metadata{}, typeErrorf("malformed metadata denominator %q", denStr)
	}

	newUnit, factor, ok := divisorToMultiple(unit, uint64(den))
	if !ok {
		return Metadata{}, valueErrorf("denominator %d does not evenly divide any finer unit of %s", den, unit)
	}
	mult, overflowed := mulU64Checked(uint64(num), factor)
	if overflowed || mult > math.MaxInt32 {
		return Metadata{}, overflowErrorf("metadata multiplier overflows int32")
	}
	return Metadata{Unit: newUnit, Mult: int32(mult)}, nil
}

// typePrefixes lists the type strings recognized ahead of a metastr,
// mapped to the value kind they denote, in longest-match-first order so
// that "M8" isn't mistaken for a prefix of "M8[...]" ambiguously (it
// never is, but datetime64/timedelta64 are checked before the bare
// two-letter forms for clarity).
var typePrefixes = []struct {
	prefix string
	kind   ValueKind
}{
	{"datetime64", DatetimeKind},
	{"timedelta64", TimedeltaKind},
	{"M8", DatetimeKind},
	{"m8", TimedeltaKind},
}

// ParseTypeString parses a full type string such as "M8[5us]" or
// "datetime64[ns]" into its metadata and value kind, per §6's external
// interface. A string with no recognized prefix is parsed as a bare
// metastr and defaults to DatetimeKind.
func ParseTypeString(s string) (Metadata, ValueKind, error) {
	for _, p := range typePrefixes {
		if strings.HasPrefix(s, p.prefix) {
			meta, err := ParseMetadata(s[len(p.prefix):])
			return meta, p.kind, err
		}
	}
	meta, err := ParseMetadata(s)
	return meta, DatetimeKind, err
}

// MetadataFromTuple builds a Metadata from the tuple input form
// (unit_string, multiplier[, denominator]) described in §6. den == 0
// means no denominator was supplied.
func MetadataFromTuple(unitStr string, mult int32, den int32) (Metadata, error) {
	if mult <= 0 {
		return Metadata{}, valueErrorf("tuple metadata multiplier must be positive, got %d", mult)
	}
	unit, ok := unitByName[unitStr]
	if !ok {
		return Metadata{}, valueErrorf("unrecognized unit %q", unitStr)
	}
	if den <= 0 {
		return Metadata{Unit: unit, Mult: mult}, nil
	}

	newUnit, factor, ok := divisorToMultiple(unit, uint64(den))
	if !ok {
		return Metadata{}, valueErrorf("denominator %d does not evenly divide any finer unit of %s", den, unit)
	}
	scaled, overflowed := mulU64Checked(uint64(mult), factor)
	if overflowed || scaled > math.MaxInt32 {
		return Metadata{}, overflowErrorf("tuple metadata multiplier overflows int32")
	}
	return Metadata{Unit: newUnit, Mult: int32(scaled)}, nil
}

// Format renders m per §4.6's output form: "[<mult><unit>]" (or just
// "[<unit>]" when the multiplier is 1), or the bracket-free body when
// skipBrackets is set. Generic renders as "generic" with skipBrackets,
// or the empty string otherwise.
func (m Metadata) Format(skipBrackets bool) string {
	if m.Unit == Generic {
		if skipBrackets {
			return "generic"
		}
		return ""
	}

	body := m.Unit.String()
	if m.Mult != 1 {
		body = strconv.FormatInt(int64(m.Mult), 10) + body
	}
	if skipBrackets {
		return body
	}
	return "[" + body + "]"
}
