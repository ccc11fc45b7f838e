// Package generate runs the cheat-sheet pipeline for every catalog version.
package generate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fwojciec/flowsheet"
)

// IndexFile is the page name that mirrors the newest version.
const IndexFile = "index.html"

// Generator fetches, parses and renders one page per catalog version.
// Versions and files are processed sequentially in declared order.
type Generator struct {
	Fetcher  flowsheet.Fetcher
	Renderer flowsheet.PageRenderer
	Store    flowsheet.PageStore

	// Markdown, when set, converts each page into a companion Markdown file.
	Markdown flowsheet.Converter

	Logger *slog.Logger
}

// Result summarizes a completed run.
type Result struct {
	Files []string // names saved to the store, in order
}

// Run generates every page of c and commits them together.
// Any failure aborts the store, so either all pages are written or none.
func (g *Generator) Run(ctx context.Context, c *flowsheet.Catalog) (_ *Result, err error) {
	defer func() {
		if err != nil {
			_ = g.Store.Abort()
		}
	}()

	if err := c.Validate(); err != nil {
		return nil, err
	}
	versions, err := flowsheet.ParseVersions(c.Versions)
	if err != nil {
		return nil, err
	}
	latest := flowsheet.Latest(versions)

	result := &Result{}
	for _, v := range versions {
		page, err := g.BuildPage(ctx, c, v, versions)
		if err != nil {
			return nil, err
		}

		html, err := g.Renderer.Render(page)
		if err != nil {
			return nil, err
		}

		names := []string{page.FileName()}
		if v == latest {
			names = append(names, IndexFile)
		}
		for _, name := range names {
			if err := g.save(ctx, result, name, html); err != nil {
				return nil, err
			}
		}
	}

	if err := g.Store.Commit(); err != nil {
		return nil, err
	}
	return result, nil
}

// BuildPage fetches and processes every file of version v.
// versions is the full list shown in the page's version selector.
func (g *Generator) BuildPage(ctx context.Context, c *flowsheet.Catalog, v flowsheet.Version, versions []flowsheet.Version) (*flowsheet.Page, error) {
	r := flowsheet.NewRenderer(c, v)
	isPrivate := c.PrivacyRule()

	publicBuiltins, privateBuiltins := flowsheet.ClassifyBuiltins(c.Builtins, isPrivate)

	var results []flowsheet.FileResult
	for _, f := range c.FilesFor(v) {
		body, err := g.Fetcher.Fetch(ctx, c.RawURLFor(v, f.Name))
		if err != nil {
			return nil, withContext(err, "%s %s", v, f.Name)
		}

		decls := flowsheet.Normalize(flowsheet.ParseDeclarations(body, f.Name))
		public, private := flowsheet.Classify(decls, isPrivate)
		g.logger().Debug("parsed file",
			"version", v.String(),
			"file", f.Name,
			"public", len(public),
			"private", len(private),
		)

		results = append(results, flowsheet.FileResult{
			File:    f,
			Public:  r.RenderDeclarations(public),
			Private: r.RenderDeclarations(private),
		})
	}

	return &flowsheet.Page{
		Version:   v,
		Versions:  versions,
		SourceURL: r.SourceURL,
		DocsURL:   c.DocsURLFor(v),
		Sections: flowsheet.BuildSections(
			r.RenderBuiltins(publicBuiltins),
			r.RenderBuiltins(privateBuiltins),
			results,
		),
	}, nil
}

func (g *Generator) save(ctx context.Context, result *Result, name, html string) error {
	if err := g.Store.Save(ctx, name, []byte(html)); err != nil {
		return err
	}
	result.Files = append(result.Files, name)

	if g.Markdown == nil {
		return nil
	}
	md, err := g.Markdown.Convert(html)
	if err != nil {
		return err
	}
	mdName := flowsheet.MarkdownFileName(name)
	if err := g.Store.Save(ctx, mdName, []byte(md)); err != nil {
		return err
	}
	result.Files = append(result.Files, mdName)
	return nil
}

// withContext prefixes err with a location. Application errors keep their
// code and carry the prefix in their message, so it reaches the user.
func withContext(err error, format string, args ...any) error {
	prefix := fmt.Sprintf(format, args...)
	var e *flowsheet.Error
	if !errors.As(err, &e) {
		return fmt.Errorf("%s: %w", prefix, err)
	}
	return flowsheet.Errorf(e.Code, "%s: %s", prefix, e.Message)
}

func (g *Generator) logger() *slog.Logger {
	if g.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return g.Logger
}
