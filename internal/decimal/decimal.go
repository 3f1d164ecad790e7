// Package decimal implements exact non-negative integers of arbitrary length,
// stored and compared as canonical decimal digit strings.
package decimal

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformedNumber is returned when text is not a non-empty run of ASCII digits
	ErrMalformedNumber = errors.New("malformed number")

	// ErrNegativeResult is returned by Sub when the subtrahend is larger
	ErrNegativeResult = errors.New("subtraction result would be negative")
)

// Ordering is the result of comparing two values
type Ordering int

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

func (o Ordering) String() string {
	switch o {
	case Less:
		return "LESS"
	case Equal:
		return "EQUAL"
	case Greater:
		return "GREATER"
	}
	return "Ordering(" + strconv.Itoa(int(o)) + ")"
}

// Value is a non-negative integer of arbitrary magnitude.
// digits holds the canonical form without leading zeros; zero is the empty
// string so that the zero Value is 0 and == agrees with Compare.
type Value struct {
	digits string
}

// Zero is the value 0
var Zero = Value{}

// Parse converts a string of ASCII digits into a Value.
// Leading zeros are dropped, so "007" and "7" parse to the same Value.
func Parse(s string) (Value, error) {
	if err := validate(s); err != nil {
		return Value{}, err
	}
	return Value{digits: trimLeadingZeros(s)}, nil
}

// MustParse is like Parse but panics on malformed input
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromUint64 returns the Value for n
func FromUint64(n uint64) Value {
	return Value{digits: trimLeadingZeros(strconv.FormatUint(n, 10))}
}

func validate(s string) error {
	if s == "" {
		return fmt.Errorf("%w: empty", ErrMalformedNumber)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return fmt.Errorf("%w: %q", ErrMalformedNumber, s)
		}
	}
	return nil
}

func trimLeadingZeros(s string) string {
	i := 0
	for i < len(s) && s[i] == '0' {
		i++
	}
	return s[i:]
}

// String returns the canonical decimal form
func (v Value) String() string {
	if v.digits == "" {
		return "0"
	}
	return v.digits
}

// Len returns the number of digits in the canonical form (1 for zero)
func (v Value) Len() int {
	if v.digits == "" {
		return 1
	}
	return len(v.digits)
}

// IsZero reports whether v is 0
func (v Value) IsZero() bool {
	return v.digits == ""
}

// Cmp compares v with w
func (v Value) Cmp(w Value) Ordering {
	return Compare(v, w)
}

// Equal reports whether v and w are the same number
func (v Value) Equal(w Value) bool {
	return v.digits == w.digits
}

// LessOrEqual reports whether v <= w
func (v Value) LessOrEqual(w Value) bool {
	return Compare(v, w) != Greater
}

// Uint64 returns v as a uint64, and false if it does not fit
func (v Value) Uint64() (uint64, bool) {
	n, err := strconv.ParseUint(v.String(), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MarshalText implements encoding.TextMarshaler
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (v *Value) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// Compare orders a and b.
// A shorter canonical form is always smaller; equal lengths are compared
// digit by digit from the most significant end.
func Compare(a, b Value) Ordering {
	x, y := a.String(), b.String()
	if len(x) != len(y) {
		if len(x) < len(y) {
			return Less
		}
		return Greater
	}
	for i := 0; i < len(x); i++ {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return Less
			}
			return Greater
		}
	}
	return Equal
}
