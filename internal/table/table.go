package table

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

var ErrParse = errors.New("cannot parse table")

// Row is one line of the dataset. Rows of a table may differ in length.
type Row []int

type Table []Row

func (t Table) Clone() Table {
	clone := make(Table, len(t))
	for i, row := range t {
		clone[i] = append(Row{}, row...)
	}
	return clone
}

func (t Table) Equal(other Table) bool {
	if len(t) != len(other) { return false }
	for i := range t {
		if len(t[i]) != len(other[i]) { return false }
		for j := range t[i] {
			if t[i][j] != other[i][j] { return false }
		}
	}
	return true
}

// Parse reads clipboard text such as "[1,2,3\n4,5,6]" into a table.
// Everything but digits, commas and newlines is dropped before splitting,
// so "-3" reads as 3.
func Parse(raw string) (Table, error) {
	raw = strings.TrimPrefix(raw, "[")
	raw = strings.TrimSuffix(raw, "]")

	var cleaned strings.Builder
	for _, ch := range raw {
		if (ch >= '0' && ch <= '9') || ch == ',' || ch == '\n' {
			cleaned.WriteRune(ch)
		}
	}

	var result Table
	for lineNum, line := range strings.Split(cleaned.String(), "\n") {
		if line == "" { continue }

		tokens := strings.Split(line, ",")
		row := make(Row, 0, len(tokens))
		for tokenNum, token := range tokens {
			value, err := strconv.Atoi(token)
			if err != nil {
				return nil, fmt.Errorf("%w: line %d, value %d %q", ErrParse, lineNum+1, tokenNum+1, token)
			}
			row = append(row, value)
		}
		result = append(result, row)
	}

	if len(result) == 0 { return nil, fmt.Errorf("%w: no rows", ErrParse) }
	return result, nil
}

// Serialize writes one "[v1, v2, ...]" line per row.
func Serialize(t Table) string {
	var result strings.Builder
	for _, row := range t {
		result.WriteByte('[')
		for j, value := range row {
			if j > 0 { result.WriteString(", ") }
			result.WriteString(strconv.Itoa(value))
		}
		result.WriteString("]\n")
	}
	return result.String()
}

func ToJSON(t Table) (string, error) {
	if t == nil { t = Table{} }
	rows := make([][]int, len(t))
	for i, row := range t {
		rows[i] = append([]int{}, row...)
	}
	data, err := json.Marshal(rows)
	if err != nil { return "", fmt.Errorf("error encoding table: %w", err) }
	return string(data), nil
}
