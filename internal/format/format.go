package format

import (
	"strconv"
	"strings"

	. "tabedit/internal/config"
	. "tabedit/internal/table"
	. "tabedit/internal/utils"

	"github.com/acarl005/stripansi"
	"github.com/mattn/go-runewidth"
)

type Formatter struct {
	Layout  Layout
	Painter Painter
}

func New(layout Layout, painter Painter) Formatter {
	if painter == nil { painter = Plain{} }
	return Formatter{Layout: layout, Painter: painter}
}

// Entry renders one row as "  7:      1,     2,". The value at column is
// painted as changed when highlight is set.
func (f Formatter) Entry(index int, row Row, highlight bool, column int) string {
	role := IndexNormal
	if f.Layout.MarkEvery > 0 && index%f.Layout.MarkEvery == 0 { role = IndexMarked }

	var entry strings.Builder
	entry.WriteString(f.Painter.Paint(role, PadLeft(strconv.Itoa(index+1), f.Layout.IndexWidth)+": "))
	for j, value := range row {
		number := PadLeft(strconv.Itoa(value), f.Layout.ValueWidth)
		if highlight && j == column { number = f.Painter.Paint(Changed, number) }
		entry.WriteString(number)
		entry.WriteString(f.Painter.Paint(Separator, ","))
	}
	return entry.String()
}

// Format lays the rows out in display columns of Layout.WrapRows entries:
// row i lands on line i mod WrapRows. rows holds 0-based row positions to
// highlight at column; column -1 highlights nothing.
func (f Formatter) Format(t Table, rows Set, column int) string {
	if len(t) == 0 { return "" }

	wrap := Max(f.Layout.WrapRows, 1)
	entries := make([]string, len(t))
	fields := make([]int, len(t))
	maxFields := 0
	for i, row := range t {
		entries[i] = f.Entry(i, row, rows.Contains(i), column)
		fields[i] = len(row) + 1
		maxFields = Max(maxFields, fields[i])
	}
	alignWidth := f.Layout.ColumnWidth * maxFields

	lines := make([]strings.Builder, Min(len(t), wrap))
	for i, entry := range entries {
		cell := entry + Spaces(f.Layout.ColumnPad*(fields[i]/2))
		lines[i%wrap].WriteString(padRight(cell, alignWidth))
	}

	var result strings.Builder
	for i := range lines {
		result.WriteString(strings.TrimRight(lines[i].String(), " "))
		result.WriteByte('\n')
	}
	return result.String()
}

func visibleWidth(s string) int { return runewidth.StringWidth(stripansi.Strip(s)) }

func padRight(s string, width int) string { return s + Spaces(width-visibleWidth(s)) }
