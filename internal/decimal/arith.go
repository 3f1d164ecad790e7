package decimal

import "fmt"

// DialBase is the modulus used by Mod100 and ParseMod100
const DialBase = 100

var digitValues = [10]Value{
	{}, {"1"}, {"2"}, {"3"}, {"4"}, {"5"}, {"6"}, {"7"}, {"8"}, {"9"},
}

// Add returns a + b
func Add(a, b Value) Value {
	x, y := a.String(), b.String()
	if len(x) < len(y) {
		x, y = y, x
	}

	out := make([]byte, len(x)+1)
	var carry byte
	for i := 0; i < len(x); i++ {
		d := x[len(x)-1-i] - '0' + carry
		if i < len(y) {
			d += y[len(y)-1-i] - '0'
		}
		carry = d / 10
		out[len(out)-1-i] = d%10 + '0'
	}
	out[0] = carry + '0'

	return Value{digits: trimLeadingZeros(string(out))}
}

// Sub returns a - b. It fails with ErrNegativeResult when b > a; callers that
// need wraparound must reduce their operands first.
func Sub(a, b Value) (Value, error) {
	if Compare(a, b) == Less {
		return Value{}, fmt.Errorf("%w: %s - %s", ErrNegativeResult, a, b)
	}

	x, y := a.String(), b.String()
	out := make([]byte, len(x))
	borrow := 0
	for i := 0; i < len(x); i++ {
		d := int(x[len(x)-1-i]-'0') - borrow
		if i < len(y) {
			d -= int(y[len(y)-1-i] - '0')
		}
		borrow = 0
		if d < 0 {
			d += 10
			borrow = 1
		}
		out[len(out)-1-i] = byte(d) + '0'
	}

	return Value{digits: trimLeadingZeros(string(out))}, nil
}

// MulTen returns a * 10
func MulTen(a Value) Value {
	if a.IsZero() {
		return a
	}
	return Value{digits: a.digits + "0"}
}

// Mod100 returns a mod 100
func Mod100(a Value) Value {
	s := a.digits
	if len(s) > 2 {
		s = s[len(s)-2:]
	}
	return Value{digits: trimLeadingZeros(s)}
}

// Rem100 returns a mod 100 as an int in [0, 100)
func (v Value) Rem100() int {
	s := Mod100(v).digits
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

// ParseMod100 parses digits and reduces the result mod 100.
// The accumulator is reduced after every digit, acc = (acc*10 + d) mod 100,
// so it never holds more than four digits however long the input is.
func ParseMod100(digits string) (int, error) {
	if err := validate(digits); err != nil {
		return 0, err
	}

	acc := Zero
	for i := 0; i < len(digits); i++ {
		acc = Mod100(Add(MulTen(acc), digitValues[digits[i]-'0']))
	}
	return acc.Rem100(), nil
}
