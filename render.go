package flowsheet

import (
	"fmt"
	"strings"
)

var (
	htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
)

// EscapeHTML escapes "&", "<" and ">" in s.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// Renderer turns declarations and builtins into HTML list items for one
// version of the library.
type Renderer struct {
	Version Version

	// SourceURL is the browsable source directory for Version,
	// ending in a slash.
	SourceURL string

	// ComponentFile and ComponentDocs link declarations of one file to
	// curated documentation instead of raw source.
	ComponentFile string
	ComponentDocs map[string]string
}

// NewRenderer returns a Renderer for version v configured from c.
func NewRenderer(c *Catalog, v Version) *Renderer {
	return &Renderer{
		Version:       v,
		SourceURL:     c.SourceURLFor(v),
		ComponentFile: c.ComponentFile,
		ComponentDocs: c.ComponentDocs,
	}
}

// LineURL returns the deep link to the 0-based line of file.
func (r *Renderer) LineURL(file string, line int) string {
	return fmt.Sprintf("%s%s#L%d", r.SourceURL, file, line+1)
}

// RenderDeclarations renders decls as list items, one string per row.
// A module's member list is closed on the row of its last member, so no row
// consists of a bare closing tag.
func (r *Renderer) RenderDeclarations(decls []*Declaration) []string {
	var lines []string
	for _, d := range decls {
		lines = append(lines, r.RenderDeclaration(d)...)
	}
	return lines
}

// RenderDeclaration renders d and, for modules, its members.
func (r *Renderer) RenderDeclaration(d *Declaration) []string {
	label := r.label(d)
	if len(d.Members) == 0 {
		return []string{"<li>" + label + "</li>"}
	}

	lines := []string{"<li>" + label + "<ul>"}
	for _, m := range d.Members {
		lines = append(lines, r.RenderDeclaration(m)...)
	}
	lines[len(lines)-1] += "</ul></li>"
	return lines
}

// RenderBuiltins renders the builtins available in the renderer's version.
func (r *Renderer) RenderBuiltins(builtins []Builtin) []string {
	var lines []string
	for _, b := range builtins {
		if !r.Version.Includes(b.MinMinor) {
			continue
		}
		lines = append(lines, r.RenderBuiltin(b))
	}
	return lines
}

// RenderBuiltin renders b as a bold documentation link.
func (r *Renderer) RenderBuiltin(b Builtin) string {
	s := "<li>" + docLink(b.Name, b.DocURL)
	if b.MinMinor > 0 {
		s += fmt.Sprintf(" <small>(since v0.%d.0)</small>", b.MinMinor)
	}
	return s + "</li>"
}

func (r *Renderer) label(d *Declaration) string {
	src := r.LineURL(d.File, d.Line)
	if doc, ok := r.componentDoc(d); ok {
		return docLink(d.Name, doc) + fmt.Sprintf(` <small>(%s, <a href="%s">source</a>)</small>`, d.Kind, attrEscaper.Replace(src))
	}
	s := fmt.Sprintf(`<a href="%s">%s</a>`, attrEscaper.Replace(src), EscapeHTML(d.Name))
	if d.Kind != "" {
		s += fmt.Sprintf(" <small>(%s)</small>", d.Kind)
	}
	return s
}

func (r *Renderer) componentDoc(d *Declaration) (string, bool) {
	if r.ComponentFile == "" || d.File != r.ComponentFile {
		return "", false
	}
	name, _, _ := strings.Cut(d.Name, "<")
	doc, ok := r.ComponentDocs[name]
	return doc, ok && doc != ""
}

func docLink(name, url string) string {
	return fmt.Sprintf(`<b><a href="%s">%s</a></b>`, attrEscaper.Replace(url), EscapeHTML(name))
}
