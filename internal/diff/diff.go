package diff

import (
	"fmt"
	"strings"

	. "tabedit/internal/table"
	. "tabedit/internal/utils"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/sergi/go-diff/diffmatchpatch"
)

var dmp = diffmatchpatch.New()

// ChangedRows returns the 1-based rows of after whose serialized line is not in before.
func ChangedRows(before, after Table) Set {
	a, b, lines := dmp.DiffLinesToChars(Serialize(before), Serialize(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	changed := make(Set)
	lineNum := 1
	for _, d := range diffs {
		count := strings.Count(d.Text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			for i := 0; i < count; i++ { changed.Add(lineNum + i) }
			lineNum += count
		case diffmatchpatch.DiffEqual:
			lineNum += count
		}
	}
	return changed
}

// Unified renders a unified diff of the two tables, "" when they are equal.
func Unified(before, after Table) (string, error) {
	if before.Equal(after) { return "", nil }
	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(Serialize(before)),
		B:        difflib.SplitLines(Serialize(after)),
		FromFile: "clipboard",
		ToFile:   "edited",
		Context:  1,
	})
	if err != nil { return "", fmt.Errorf("error building diff: %w", err) }
	return text, nil
}
