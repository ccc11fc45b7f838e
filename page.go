package flowsheet

import (
	"context"
	"strings"
)

// Section is one panel of a page: a heading and its rendered list rows.
type Section struct {
	ID      string
	Heading string
	Lines   []string
}

// Columns lays out the section's rows.
func (s Section) Columns() []Column {
	return LayoutColumns(s.Lines)
}

// Page is the cheat sheet for a single version.
type Page struct {
	Version   Version
	Versions  []Version // every version in the run, for the version selector
	SourceURL string    // browsable source directory of Version
	DocsURL   string
	Sections  []Section
}

// FileName returns the page's output file name.
func (p *Page) FileName() string {
	return PageFileName(p.Version)
}

// PageFileName returns the output file name of the page for v.
func PageFileName(v Version) string {
	return v.String() + ".html"
}

// MarkdownFileName returns the name of the Markdown companion of an HTML
// page file.
func MarkdownFileName(htmlName string) string {
	return strings.TrimSuffix(htmlName, ".html") + ".md"
}

// FileResult holds the classified, rendered rows of one source file.
type FileResult struct {
	File    SourceFile
	Public  []string
	Private []string
}

// Section IDs of the built-in panels.
const (
	SectionBuiltins        = "builtins"
	SectionBuiltinsPrivate = "builtins-private"
)

// BuildSections assembles page sections in display order: built-ins,
// private built-ins, then public and private rows per file. Sections without
// rows are omitted.
func BuildSections(builtins, privateBuiltins []string, files []FileResult) []Section {
	var sections []Section
	add := func(id, heading string, lines []string) {
		if len(lines) == 0 {
			return
		}
		sections = append(sections, Section{ID: id, Heading: heading, Lines: lines})
	}

	add(SectionBuiltins, "Built-in types", builtins)
	add(SectionBuiltinsPrivate, `Built-in "private" types`, privateBuiltins)
	for _, f := range files {
		id := SectionID(f.File.Name)
		add(id, f.File.Heading, f.Public)
		add(id+"-private", f.File.Heading+` "private" types`, f.Private)
	}
	return sections
}

// SectionID derives an HTML identifier from a file name, e.g.
// "indexeddb.js" → "indexeddb".
func SectionID(file string) string {
	name := strings.TrimSuffix(file, ".js")
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return b.String()
}

// PageRenderer renders a page as a complete HTML document.
type PageRenderer interface {
	Render(page *Page) (string, error)
}

// Converter converts an HTML document to Markdown.
type Converter interface {
	Convert(html string) (string, error)
}

// PageStore persists generated files with atomic semantics.
// Save writes to a staging location; Commit makes all saved files visible;
// Abort discards them.
type PageStore interface {
	Save(ctx context.Context, name string, content []byte) error
	Commit() error
	Abort() error
}
