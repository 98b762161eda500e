package utils

import (
	"fmt"
	"sort"
	"strings"
)

func Max(x, y int) int {
	if x < y { return y }
	return x
}

func Min(x, y int) int {
	if x <= y { return x }
	return y
}

// Spaces returns n spaces, or "" when n <= 0.
func Spaces(n int) string {
	if n <= 0 { return "" }
	return strings.Repeat(" ", n)
}

// PadLeft right-aligns str in width bytes. Longer strings are kept whole.
func PadLeft(str string, width int) string { return Spaces(width-len(str)) + str }

// ParseInts splits s on whitespace and converts every field with conv.
func ParseInts(s string, conv func(string) (int, error)) ([]int, error) {
	fields := strings.Fields(s)
	result := make([]int, 0, len(fields))
	for _, field := range fields {
		value, err := conv(field)
		if err != nil { return nil, fmt.Errorf("%q: %w", field, err) }
		result = append(result, value)
	}
	return result, nil
}

type Set map[int]struct{}

// Range returns a set holding every integer in [from, to].
func Range(from, to int) Set {
	set := make(Set)
	for i := from; i <= to; i++ { set.Add(i) }
	return set
}

func (s Set) Add(value int) { s[value] = struct{}{} }

func (s Set) Contains(value int) bool {
	_, exists := s[value]
	return exists
}

// GetKeys returns all keys in the set, sorted.
func (s Set) GetKeys() []int {
	keys := make([]int, 0, len(s))
	for key := range s { keys = append(keys, key) }
	sort.Ints(keys)
	return keys
}
