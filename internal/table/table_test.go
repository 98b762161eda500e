package table

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBracketed(t *testing.T) {
	got, err := Parse("[1,2,3\n4,5,6]")
	require.NoError(t, err)

	want := Table{{1, 2, 3}, {4, 5, 6}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJaggedAndBlankLines(t *testing.T) {
	got, err := Parse("1,2\n\n3\r\n4, 5, 6\n")
	require.NoError(t, err)
	assert.Equal(t, Table{{1, 2}, {3}, {4, 5, 6}}, got)
}

func TestParseSerializedOutput(t *testing.T) {
	got, err := Parse("[10, 20]\n[30]\n")
	require.NoError(t, err)
	assert.Equal(t, Table{{10, 20}, {30}}, got)
}

func TestParseDropsMinusSign(t *testing.T) {
	// the character filter removes '-', negative input comes back positive
	got, err := Parse("[-1,2\n3,-4]")
	require.NoError(t, err)
	assert.Equal(t, Table{{1, 2}, {3, 4}}, got)
}

func TestParseErrors(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"brackets only":  "[]",
		"only newlines":  "\n\n",
		"letters only":   "abc",
		"trailing comma": "1,2,\n3",
		"double comma":   "1,,2",
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(input)
			assert.ErrorIs(t, err, ErrParse)
		})
	}
}

func TestSerialize(t *testing.T) {
	got := Serialize(Table{{1, 2, 3}, {}, {-4}})
	assert.Equal(t, "[1, 2, 3]\n[]\n[-4]\n", got)
	assert.Equal(t, "", Serialize(nil))
}

func TestRoundTrip(t *testing.T) {
	original := Table{{1, 12, 3}, {4, 5, 6, 7}, {0}}
	parsed, err := Parse(Serialize(original))
	require.NoError(t, err)
	assert.True(t, original.Equal(parsed))
}

func TestSerializeParseIsStable(t *testing.T) {
	inputs := []string{
		"1,2,3\n4,5,6",
		"7\n\n8,9,10,11\n",
		"0,00,007",
	}
	for _, input := range inputs {
		first, err := Parse(input)
		require.NoError(t, err)
		once := Serialize(first)

		second, err := Parse(once)
		require.NoError(t, err)
		assert.Equal(t, once, Serialize(second), "input %q", input)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	original := Table{{1, 2}, {3}}
	clone := original.Clone()
	clone[0][0] = 99
	clone[1] = append(clone[1], 4)

	assert.Equal(t, Table{{1, 2}, {3}}, original)
	assert.False(t, original.Equal(clone))
}

func TestToJSON(t *testing.T) {
	got, err := ToJSON(Table{{1, 2}, {}})
	require.NoError(t, err)
	assert.JSONEq(t, `[[1,2],[]]`, got)

	empty, err := ToJSON(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", empty)
}
