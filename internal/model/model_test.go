package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/puzzlesolver/internal/decimal"
)

func TestParsePuzzleKind(t *testing.T) {
	for _, k := range PuzzleKinds {
		got, err := ParsePuzzleKind(string(k))
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	_, err := ParsePuzzleKind("Dial")
	assert.ErrorIs(t, err, ErrUnknownPuzzle)
}

func TestRangeContains(t *testing.T) {
	r := Range{Min: decimal.MustParse("10"), Max: decimal.MustParse("14")}

	assert.True(t, r.Contains(decimal.MustParse("10")))
	assert.True(t, r.Contains(decimal.MustParse("14")))
	assert.False(t, r.Contains(decimal.MustParse("9")))
	assert.False(t, r.Contains(decimal.MustParse("15")))
	assert.Equal(t, "10-14", r.String())
}

func TestInputErrorUnwraps(t *testing.T) {
	err := &InputError{Line: 3, Text: "L", Err: ErrMalformedNumber}

	assert.ErrorIs(t, err, ErrMalformedNumber)
	assert.Equal(t, `line 3 "L": malformed number`, err.Error())

	var target *InputError
	require.True(t, errors.As(error(err), &target))
	assert.Equal(t, 3, target.Line)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "L", Left.String())
	assert.Equal(t, "R", Right.String())
}
