// Package htmltomarkdown produces the Markdown companion of each rendered
// cheat-sheet page.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/fwojciec/flowsheet"
)

var _ flowsheet.Converter = (*Converter)(nil)

// pageLinkRe matches Markdown links to sibling version pages.
var pageLinkRe = regexp.MustCompile(`\]\((v\d+\.\d+\.\d+|index)\.html\)`)

// Converter turns a cheat-sheet page into CommonMark. Declaration lists
// become nested bullet lists and links between version pages are pointed
// at their Markdown companions.
type Converter struct {
	conv *converter.Converter
}

// NewConverter returns a Converter. Pages carry no tables, so only the base
// and CommonMark plugins are installed.
func NewConverter() *Converter {
	return &Converter{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
			),
		),
	}
}

// Convert renders page HTML as Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", flowsheet.Errorf(flowsheet.EINVALID, "cannot convert an empty page")
	}

	md, err := c.conv.ConvertString(html)
	if err != nil {
		return "", flowsheet.Errorf(flowsheet.EINTERNAL, "convert page: %v", err)
	}
	return pageLinkRe.ReplaceAllString(md, "]($1.md)"), nil
}
