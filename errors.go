package dtunit

import "fmt"

// TypeError indicates that an input has the wrong shape for the operation
// attempted on it: an unparsable metadata string, an object missing the
// attributes an adapter requires, or an Arange bound that is neither a
// DateTimeValue nor a TimeDeltaValue.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return "dtunit: " + e.Msg }

// ValueError indicates a value was well-shaped but out of range: an
// invalid calendar component, a Generic unit where a concrete unit is
// required, or invalid arange arguments.
type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return "dtunit: " + e.Msg }

// OverflowError indicates that a conversion factor or GCD multiplier
// could not be represented in the accumulator used to compute it.
type OverflowError struct {
	Msg string
}

func (e *OverflowError) Error() string { return "dtunit: " + e.Msg }

// CastingError indicates a cast was refused under the requested casting
// level. It names both metadatas and the rule that rejected the cast.
type CastingError struct {
	Src, Dst Metadata
	Level    CastingLevel
}

func (e *CastingError) Error() string {
	return fmt.Sprintf("dtunit: cannot cast %s to %s under %s casting", e.Src, e.Dst, e.Level)
}

func typeErrorf(format string, args ...any) error {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

func valueErrorf(format string, args ...any) error {
	return &ValueError{Msg: fmt.Sprintf(format, args...)}
}

func overflowErrorf(format string, args ...any) error {
	return &OverflowError{Msg: fmt.Sprintf(format, args...)}
}
