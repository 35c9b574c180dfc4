package dtunit

import "fmt"

// Unit identifies the granularity a datetime or timedelta value is
// measured in, ordered from coarsest to finest.
type Unit int8

// The supported units. Generic means "unit not yet fixed" and
// participates as an identity element in GCD and promotion.
const (
	Y Unit = iota
	M
	W
	B
	D
	H
	Min
	S
	Ms
	Us
	Ns
	Ps
	Fs
	As
	Generic
)

func (u Unit) String() string {
	if u < Y || u > Generic {
		return fmt.Sprintf("%%!Unit(%d)", int8(u))
	}
	return unitNames[u]
}

var unitNames = [...]string{
	Y:       "Y",
	M:       "M",
	W:       "W",
	B:       "B",
	D:       "D",
	H:       "h",
	Min:     "m",
	S:       "s",
	Ms:      "ms",
	Us:      "us",
	Ns:      "ns",
	Ps:      "ps",
	Fs:      "fs",
	As:      "as",
	Generic: "generic",
}

// unitByName maps the textual unit tokens accepted by the metadata
// grammar (§4.6) back to their Unit value.
var unitByName = map[string]Unit{
	"Y": Y, "M": M, "W": W, "B": B, "D": D,
	"h": H, "m": Min, "s": S,
	"ms": Ms, "us": Us, "ns": Ns, "ps": Ps, "fs": Fs, "as": As,
}

// isNonlinear reports whether u has no constant conversion factor to
// other units (Y, M, B).
func (u Unit) isNonlinear() bool {
	return u == Y || u == M || u == B
}

// isDateUnit reports whether u is on the date side of the datetime
// casting partition ({Y, M, W, B, D}).
func (u Unit) isDateUnit() bool {
	return u == Y || u == M || u == W || u == B || u == D
}

// isTimedeltaNonlinear reports whether u is on the nonlinear side of
// the timedelta casting/GCD partition ({Y, M}). B is linear for
// timedelta purposes even though it is nonlinear for datetime codec
// purposes.
func (u Unit) isTimedeltaNonlinear() bool {
	return u == Y || u == M
}

// Metadata is a (unit, multiplier) pair tagging a datetime or timedelta
// value. The zero value is unit Y with multiplier 0, which MetadataOf
// would reject; use GenericMetadata for Generic/1.
type Metadata struct {
	Unit Unit
	Mult int32
}

// MetadataOf returns the Metadata for the given unit and multiplier.
// It panics if mult is not positive.
func MetadataOf(unit Unit, mult int32) Metadata {
	if mult <= 0 {
		panic("dtunit: multiplier must be positive")
	}
	return Metadata{Unit: unit, Mult: mult}
}

// GenericMetadata returns the Generic/1 metadata, meaning "unit not yet
// fixed".
func GenericMetadata() Metadata {
	return Metadata{Unit: Generic, Mult: 1}
}

// Equal reports whether m and m2 denote the same metadata. Generic
// metadata compares equal regardless of multiplier, per spec: Generic's
// multiplier is conventionally 1 and ignored by equality.
func (m Metadata) Equal(m2 Metadata) bool {
	if m.Unit == Generic && m2.Unit == Generic {
		return true
	}
	return m.Unit == m2.Unit && m.Mult == m2.Mult
}

func (m Metadata) String() string {
	return m.Format(false)
}
