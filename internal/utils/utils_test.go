package utils

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRangeSet(t *testing.T) {
	set := Range(2, 5)
	assert.Equal(t, []int{2, 3, 4, 5}, set.GetKeys())
	assert.False(t, set.Contains(1))
	assert.True(t, set.Contains(5))

	set.Add(9)
	assert.Equal(t, []int{2, 3, 4, 5, 9}, set.GetKeys())
}

func TestEmptyRange(t *testing.T) {
	assert.Empty(t, Range(3, 2))
	var unset Set
	assert.False(t, unset.Contains(0))
}

func TestParseInts(t *testing.T) {
	values, err := ParseInts(" 1  -2 30 ", strconv.Atoi)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, -2, 30}, values)

	_, err = ParseInts("1 b", strconv.Atoi)
	assert.Error(t, err)
}

func TestPadding(t *testing.T) {
	assert.Equal(t, "   ab", PadLeft("ab", 5))
	assert.Equal(t, "123456", PadLeft("123456", 3))
	assert.Equal(t, "", Spaces(-1))
	assert.Equal(t, "   ", Spaces(3))
	assert.Equal(t, 2, Min(2, 9))
	assert.Equal(t, 9, Max(2, 9))
}
