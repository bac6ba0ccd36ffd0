package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundDecimal(t *testing.T) {
	assert.Equal(t, 3.14, RoundDecimal(3.14159, 2))
	assert.Equal(t, 0.125, RoundDecimal(0.12549, 3))
	assert.Equal(t, -1.5, RoundDecimal(-1.46, 1))
	assert.Equal(t, 2.0, RoundDecimal(1.6, 0))
}

func TestSplitAndTrim(t *testing.T) {
	assert.Equal(t, []string{"a", "b", ""}, SplitAndTrim(" a ,b, ", ","))
	assert.Equal(t, []string{""}, SplitAndTrim("", ","))
}

func TestRemoveEmptyStrings(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, RemoveEmptyStrings([]string{"", "a", "", "b"}))
	assert.Nil(t, RemoveEmptyStrings([]string{"", ""}))
}
