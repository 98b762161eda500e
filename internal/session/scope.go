package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	. "tabedit/internal/operations"
	. "tabedit/internal/utils"
)

var ErrUnsetLastScope = errors.New("last scope is not set")

// LastScope remembers the most recently confirmed scope.
type LastScope struct {
	scope Scope
	isSet bool
}

func (l *LastScope) Set(scope Scope) { l.scope = scope; l.isSet = true }

func (l LastScope) Get() (Scope, bool) { return l.scope, l.isSet }

func (l LastScope) String() string {
	if !l.isSet { return "unset" }
	return l.scope.String()
}

func (l LastScope) start() (int, error) {
	if !l.isSet { return 0, fmt.Errorf("%w, cannot reuse start row", ErrUnsetLastScope) }
	return l.scope.Start, nil
}

func (l LastScope) end() (int, error) {
	if !l.isSet { return 0, fmt.Errorf("%w, cannot reuse end row", ErrUnsetLastScope) }
	return l.scope.End, nil
}

// ParseScope reads "start end". "-" stands for the first or last row, a
// blank value reuses the matching part of last. Values may be separated by
// a comma, which lets "3, " keep the previous end row. A blank line reuses
// the whole last scope. The result must span at least two rows inside 1..rows.
func ParseScope(line string, rows int, last LastScope) (Scope, error) {
	var tokens []string
	switch {
	case strings.TrimSpace(line) == "":
		tokens = []string{" ", " "}
	case strings.Contains(line, ","):
		tokens = strings.Split(line, ",")
	default:
		tokens = strings.Fields(line)
	}
	if len(tokens) != 2 { return Scope{}, fmt.Errorf("scope needs a start and an end, got %d values", len(tokens)) }

	start, err := scopeValue(tokens[0], 1, last.start)
	if err != nil { return Scope{}, err }
	end, err := scopeValue(tokens[1], rows, last.end)
	if err != nil { return Scope{}, err }

	scope := Scope{Start: start, End: end}
	if err := scope.Validate(); err != nil { return Scope{}, err }
	if scope.Start < 1 || scope.End > rows { return Scope{}, fmt.Errorf("%w: %s outside rows 1..%d", ErrInvalidScope, scope, rows) }
	return scope, nil
}

func scopeValue(token string, full int, reuse func() (int, error)) (int, error) {
	token = strings.TrimSpace(token)
	switch token {
	case "-":
		return full, nil
	case "":
		return reuse()
	}
	value, err := strconv.Atoi(token)
	if err != nil { return 0, fmt.Errorf("%q is not a row number", token) }
	return value, nil
}

// ParseIndexes reads 1-based column numbers and returns them 0-based.
func ParseIndexes(line string) ([]int, error) {
	return ParseInts(line, func(field string) (int, error) {
		value, err := strconv.Atoi(field)
		if err != nil { return 0, errors.New("not a column number") }
		if value < 1 { return 0, errors.New("columns start on 1") }
		return value - 1, nil
	})
}
