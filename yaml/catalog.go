// Package yaml loads flowsheet catalogs from YAML documents.
package yaml

import (
	"bytes"
	_ "embed"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/flowsheet"
	"gopkg.in/yaml.v3"
)

// defaultCatalog is the catalog compiled into the binary.
//
//go:embed catalog.yaml
var defaultCatalog []byte

type catalogFile struct {
	SourceURL               string            `yaml:"source_url"`
	RawURL                  string            `yaml:"raw_url"`
	DocsURL                 string            `yaml:"docs_url"`
	LegacyUnderscorePrivate bool              `yaml:"legacy_underscore_private"`
	Versions                []string          `yaml:"versions"`
	Files                   []sourceFile      `yaml:"files"`
	Builtins                []builtin         `yaml:"builtins"`
	ComponentFile           string            `yaml:"component_file"`
	ComponentDocs           map[string]string `yaml:"component_docs"`
}

type sourceFile struct {
	Name    string `yaml:"name"`
	Heading string `yaml:"heading"`
	Since   int    `yaml:"since,omitempty"`
}

type builtin struct {
	Name  string `yaml:"name"`
	Doc   string `yaml:"doc"`
	Since int    `yaml:"since,omitempty"`
}

// Default returns the embedded catalog.
func Default() (*flowsheet.Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads the catalog at path, or the embedded catalog when path is empty.
func Load(path string) (*flowsheet.Catalog, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, flowsheet.Errorf(flowsheet.ENOTFOUND, "catalog file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	return Parse(data)
}

// Parse decodes and validates a catalog document. Unknown keys are rejected.
func Parse(data []byte) (*flowsheet.Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, flowsheet.Errorf(flowsheet.EINVALID, "decode catalog: %v", err)
	}

	c := &flowsheet.Catalog{
		SourceURL:               f.SourceURL,
		RawURL:                  f.RawURL,
		DocsURL:                 f.DocsURL,
		Versions:                f.Versions,
		ComponentFile:           f.ComponentFile,
		ComponentDocs:           f.ComponentDocs,
		LegacyUnderscorePrivate: f.LegacyUnderscorePrivate,
	}
	for _, sf := range f.Files {
		c.Files = append(c.Files, flowsheet.SourceFile{Name: sf.Name, Heading: sf.Heading, MinMinor: sf.Since})
	}
	for _, b := range f.Builtins {
		c.Builtins = append(c.Builtins, flowsheet.Builtin{Name: b.Name, DocURL: b.Doc, MinMinor: b.Since})
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}
