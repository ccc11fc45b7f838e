// Package safehtml renders cheat-sheet pages with github.com/google/safehtml
// templates.
package safehtml

import (
	"strings"

	"github.com/fwojciec/flowsheet"
	"github.com/google/safehtml"
	"github.com/google/safehtml/template"
	"github.com/google/safehtml/uncheckedconversions"
)

// Ensure PageRenderer implements flowsheet.PageRenderer at compile time.
var _ flowsheet.PageRenderer = (*PageRenderer)(nil)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Flow {{.Version}} type cheat sheet</title>
<link rel="stylesheet" href="https://maxcdn.bootstrapcdn.com/bootstrap/3.3.6/css/bootstrap.min.css">
<style>li.continued { list-style: none; }</style>
</head>
<body>
<div class="container">
<p>
<a href="{{.DocsURL}}">Flow</a> is a static type checker for JavaScript.
This is a list of Flow types generated from the source code in
<a href="{{.SourceURL}}">{{.SourceURL}}</a>.
</p>
<p>Note: names containing a <code>$</code> are internal to Flow, so they are listed separately in sections labeled "private" types.</p>
<p>Flow version:</p>
<ul class="list-inline">
{{- range .Versions}}
{{- if .Current}}
<li><strong>{{.Label}}</strong></li>
{{- else}}
<li><a href="{{.Href}}">{{.Label}}</a></li>
{{- end}}
{{- end}}
</ul>
<ul class="list-unstyled">
{{- range .Sections}}
<li><a href="{{.Href}}">{{.Heading}}</a></li>
{{- end}}
</ul>
{{- range .Sections}}
<div class="panel panel-default">
<div class="panel-heading"><h4 id="{{.ID}}">{{.Heading}}</h4></div>
<div class="panel-body">
<div class="row">
{{- range .Columns}}
<div class="col-sm-4">{{.}}</div>
{{- end}}
</div>
</div>
</div>
{{- end}}
</div>
</body>
</html>
`

type versionLink struct {
	Label   string
	Href    string
	Current bool
}

type sectionData struct {
	ID      safehtml.Identifier
	Href    string
	Heading string
	Columns []safehtml.HTML
}

type pageData struct {
	Version   string
	SourceURL string
	DocsURL   string
	Versions  []versionLink
	Sections  []sectionData
}

// PageRenderer renders pages as standalone HTML documents.
type PageRenderer struct {
	tmpl *template.Template
}

// NewPageRenderer returns a PageRenderer with the page template parsed.
func NewPageRenderer() *PageRenderer {
	return &PageRenderer{
		tmpl: template.Must(template.New("page").Parse(pageTemplate)),
	}
}

// Render executes the page template for page.
func (r *PageRenderer) Render(page *flowsheet.Page) (string, error) {
	data := pageData{
		Version:   page.Version.String(),
		SourceURL: page.SourceURL,
		DocsURL:   page.DocsURL,
	}

	for _, v := range page.Versions {
		data.Versions = append(data.Versions, versionLink{
			Label:   v.String(),
			Href:    flowsheet.PageFileName(v),
			Current: v == page.Version,
		})
	}

	for _, s := range page.Sections {
		if len(s.Lines) == 0 {
			continue
		}
		id := safehtml.IdentifierFromConstantPrefix("section", s.ID)
		data.Sections = append(data.Sections, sectionData{
			ID:      id,
			Href:    "#" + id.String(),
			Heading: s.Heading,
			Columns: columnsHTML(s.Columns()),
		})
	}

	var b strings.Builder
	if err := r.tmpl.Execute(&b, data); err != nil {
		return "", flowsheet.Errorf(flowsheet.EINTERNAL, "render page %s: %v", page.Version, err)
	}
	return b.String(), nil
}

func columnsHTML(columns []flowsheet.Column) []safehtml.HTML {
	out := make([]safehtml.HTML, 0, len(columns))
	for _, c := range columns {
		// Column rows are built by flowsheet.Renderer, which escapes every
		// name and attribute value it embeds, and Column.HTML balances the
		// list markup of each column.
		out = append(out, uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(c.HTML()))
	}
	return out
}
