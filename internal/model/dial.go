package model

import "github.com/mcoot/puzzlesolver/internal/decimal"

// Dial geometry
const (
	DialSize  = decimal.DialBase // Positions 0..99
	DialStart = 50               // Position before the first command
)

// Direction is the way a rotation turns the dial
type Direction byte

const (
	Left  Direction = 'L' // Towards lower numbers
	Right Direction = 'R' // Towards higher numbers
)

func (d Direction) String() string {
	return string(d)
}

// RotationCommand is one parsed dial instruction
type RotationCommand struct {
	Direction Direction
	Amount    decimal.Value // may exceed the dial size
}

// DialStep is the dial state after one input line
type DialStep struct {
	Line     int // 1-based
	Text     string
	Applied  bool // false when the line was not a rotation and left the dial alone
	Position int
	Password int // running count of zero landings including this step
}

// DialResult is the outcome of a full dial simulation
type DialResult struct {
	Password      int
	FinalPosition int
	Commands      int // lines applied as rotations
	Skipped       int // unrecognised lines treated as no-ops
}
