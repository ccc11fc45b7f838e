package flowsheet

import "strings"

// Builtin is a curated built-in type with its own documentation page.
// Builtins are not discoverable from the declaration files.
type Builtin struct {
	Name     string
	DocURL   string
	MinMinor int // 0 when available in every version
}

// SourceFile is a library declaration file to process for each version.
type SourceFile struct {
	Name     string // file name under lib/, e.g. "core.js"
	Heading  string
	MinMinor int // 0 when present in every version
}

// Catalog holds the static tables a run is configured from.
//
// URL templates contain a "{version}" placeholder.
type Catalog struct {
	SourceURL string // browsable source directory, used for line links
	RawURL    string // raw file directory, used for fetching
	DocsURL   string // documentation home

	Versions []string
	Files    []SourceFile
	Builtins []Builtin

	// ComponentFile names the file whose declarations are cross-referenced
	// against ComponentDocs, keyed by name without generic parameters.
	ComponentFile string
	ComponentDocs map[string]string

	// LegacyUnderscorePrivate also treats "_"-prefixed names as private.
	LegacyUnderscorePrivate bool
}

// Validate returns an error if the catalog cannot drive a run.
func (c *Catalog) Validate() error {
	if c.SourceURL == "" {
		return Errorf(EINVALID, "catalog source URL required")
	}
	if c.RawURL == "" {
		return Errorf(EINVALID, "catalog raw URL required")
	}
	if len(c.Versions) == 0 {
		return Errorf(EINVALID, "catalog requires at least one version")
	}
	seen := make(map[string]bool, len(c.Versions))
	for _, v := range c.Versions {
		if seen[v] {
			return Errorf(EINVALID, "duplicate catalog version %q", v)
		}
		seen[v] = true
	}
	for _, f := range c.Files {
		if f.Name == "" {
			return Errorf(EINVALID, "catalog file name required")
		}
	}
	return nil
}

// PrivacyRule returns the rule selected by the catalog.
func (c *Catalog) PrivacyRule() PrivacyRule {
	if c.LegacyUnderscorePrivate {
		return PrivateDollarOrUnderscore
	}
	return PrivateDollar
}

// FilesFor returns the files present in version v, in declared order.
func (c *Catalog) FilesFor(v Version) []SourceFile {
	var files []SourceFile
	for _, f := range c.Files {
		if v.Includes(f.MinMinor) {
			files = append(files, f)
		}
	}
	return files
}

// SourceURLFor returns the browsable source directory for v.
func (c *Catalog) SourceURLFor(v Version) string {
	return expandVersion(c.SourceURL, v)
}

// RawURLFor returns the raw URL of file in version v.
func (c *Catalog) RawURLFor(v Version, file string) string {
	return expandVersion(c.RawURL, v) + file
}

// DocsURLFor returns the documentation home for v.
func (c *Catalog) DocsURLFor(v Version) string {
	return expandVersion(c.DocsURL, v)
}

func expandVersion(tmpl string, v Version) string {
	return strings.ReplaceAll(tmpl, "{version}", v.String())
}
