package operations

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	. "tabedit/internal/table"
)

var (
	ErrInvalidScope     = errors.New("invalid scope")
	ErrEmptyTable       = errors.New("table is empty")
	ErrIndexOutOfRange  = errors.New("index out of range")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrMismatchedCounts = errors.New("indexes and changes must correspond one to one")
)

type Action string

const (
	Add        Action = "add"
	DeleteLast Action = "deletelast"
)

// Delta is either an addition of Value or the removal of a row's last element.
type Delta struct {
	Action Action
	Value  int
}

func AddDelta(value int) Delta { return Delta{Action: Add, Value: value} }
func DeleteDelta() Delta       { return Delta{Action: DeleteLast} }

func (d Delta) IsDelete() bool { return d.Action == DeleteLast }

func (d Delta) String() string {
	if d.IsDelete() { return "del" }
	return strconv.Itoa(d.Value)
}

// ParseDelta reads a change token: an integer adds, "d", "del" or "x" deletes.
func ParseDelta(token string) (Delta, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "d", "del", "x":
		return DeleteDelta(), nil
	}
	value, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil { return Delta{}, fmt.Errorf("change %q is neither a number nor d/del/x", token) }
	return AddDelta(value), nil
}

func ParseDeltas(s string) ([]Delta, error) {
	fields := strings.Fields(s)
	deltas := make([]Delta, 0, len(fields))
	for _, field := range fields {
		delta, err := ParseDelta(field)
		if err != nil { return nil, err }
		deltas = append(deltas, delta)
	}
	return deltas, nil
}

// Scope is an inclusive 1-based row range.
type Scope struct {
	Start int
	End   int
}

func (s Scope) String() string { return fmt.Sprintf("(%d, %d)", s.Start, s.End) }

func (s Scope) Validate() error {
	if s.End-s.Start < 1 {
		return fmt.Errorf("%w: end row %d must be greater than start row %d", ErrInvalidScope, s.End, s.Start)
	}
	return nil
}

type ColumnOp struct {
	Column int // 0-based
	Delta  Delta
}

func (op ColumnOp) String() string { return fmt.Sprintf("column %d: %s", op.Column+1, op.Delta) }

type IndexOutOfRangeError struct {
	Row    int // 1-based
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("row %d: index %d out of range, row has %d values", e.Row, e.Index, e.Length)
}

func (e *IndexOutOfRangeError) Is(target error) bool { return target == ErrIndexOutOfRange }

// Pair zips column indexes with their changes.
func Pair(indexes []int, deltas []Delta) ([]ColumnOp, error) {
	if len(indexes) != len(deltas) {
		return nil, fmt.Errorf("%w: %d indexes, %d changes", ErrMismatchedCounts, len(indexes), len(deltas))
	}
	ops := make([]ColumnOp, len(indexes))
	for i := range indexes {
		ops[i] = ColumnOp{Column: indexes[i], Delta: deltas[i]}
	}
	return ops, nil
}

// Apply runs op on every row of scope. Rows are changed in place and the
// same table is returned; rows changed before a failing row stay changed.
func Apply(t Table, scope Scope, op ColumnOp) (Table, error) {
	if err := scope.Validate(); err != nil { return t, err }
	if len(t) == 0 { return t, ErrEmptyTable }
	if scope.Start < 1 || scope.End > len(t) {
		return t, fmt.Errorf("%w: %s outside rows 1..%d", ErrInvalidScope, scope, len(t))
	}
	if op.Column < 0 { return t, &IndexOutOfRangeError{Row: scope.Start, Index: op.Column, Length: len(t[scope.Start-1])} }

	for i := scope.Start - 1; i < scope.End; i++ {
		row := t[i]
		switch {
		case len(row) > op.Column:
			if op.Delta.IsDelete() {
				t[i] = row[:len(row)-1]
			} else {
				row[op.Column] += op.Delta.Value
			}
		case len(row) == op.Column:
			if op.Delta.IsDelete() {
				return t, fmt.Errorf("%w: row %d has no value at index %d to delete", ErrInvalidOperation, i+1, op.Column)
			}
			t[i] = append(row, op.Delta.Value)
		default:
			return t, &IndexOutOfRangeError{Row: i + 1, Index: op.Column, Length: len(row)}
		}
	}
	return t, nil
}

// ApplyAll applies ops in order, each seeing the result of the previous one.
// each, when set, is called after every successful op.
func ApplyAll(t Table, scope Scope, ops []ColumnOp, each func(Table, ColumnOp)) (Table, error) {
	for _, op := range ops {
		var err error
		t, err = Apply(t, scope, op)
		if err != nil { return t, fmt.Errorf("%s: %w", op, err) }
		if each != nil { each(t, op) }
	}
	return t, nil
}
