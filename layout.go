package flowsheet

import "strings"

// ColumnCount is the number of side-by-side columns a section is split into.
const ColumnCount = 3

// Markup used to continue a nested list across a column boundary.
const (
	ContinuationOpen  = `<li class="continued"><ul>`
	ContinuationClose = `</ul></li>`
)

// Column is one visual column of a section's list.
//
// Open is the number of nested lists still open when the column starts and
// Close the number still open when it ends. Both are rendered as synthetic
// continuation markup so the column is well-formed on its own.
type Column struct {
	Lines []string
	Open  int
	Close int
}

// LayoutColumns splits lines into ColumnCount consecutive columns of
// ceil(n/ColumnCount) rows, the last column absorbing the remainder.
// Trailing columns may be empty; no columns are returned for no lines.
func LayoutColumns(lines []string) []Column {
	if len(lines) == 0 {
		return nil
	}

	rows := (len(lines) + ColumnCount - 1) / ColumnCount
	columns := make([]Column, 0, ColumnCount)
	depth := 0
	for i := 0; i < ColumnCount; i++ {
		start := min(i*rows, len(lines))
		end := min(start+rows, len(lines))
		if i == ColumnCount-1 {
			end = len(lines)
		}

		col := Column{Lines: lines[start:end], Open: depth}
		for _, line := range col.Lines {
			depth += ListDepthDelta(line)
		}
		col.Close = max(depth, 0)
		columns = append(columns, col)
	}
	return columns
}

// ListDepthDelta returns the number of "<ul>" minus "</ul>" tags in line.
func ListDepthDelta(line string) int {
	return strings.Count(line, "<ul>") - strings.Count(line, "</ul>")
}

// HTML renders the column as a self-contained unordered list.
func (c Column) HTML() string {
	var b strings.Builder
	b.WriteString("<ul>")
	b.WriteString(strings.Repeat(ContinuationOpen, c.Open))
	b.WriteString("\n")
	for _, line := range c.Lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat(ContinuationClose, c.Close))
	b.WriteString("</ul>")
	return b.String()
}
