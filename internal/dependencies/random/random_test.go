package random

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringUsesAlphabet(t *testing.T) {
	const alphabet = "AB12"
	r := New()

	s := r.String(64, alphabet)
	assert.Len(t, s, 64)
	for _, c := range s {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected symbol %q", c)
	}
}

func TestStringDegenerateInputs(t *testing.T) {
	r := New()
	assert.Empty(t, r.String(0, "ABC"))
	assert.Empty(t, r.String(5, ""))
	assert.Equal(t, "ZZZ", r.String(3, "Z"))
}
