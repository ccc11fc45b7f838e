package flowsheet

import (
	"regexp"
	"slices"
	"strings"
)

var extendsRe = regexp.MustCompile(`\s*\bextends\b.*$`)

// Normalize cleans every declaration name and sorts each nesting level
// case-insensitively. Members are normalized before their parent.
// The slice is sorted in place and returned.
func Normalize(decls []*Declaration) []*Declaration {
	for _, d := range decls {
		if len(d.Members) > 0 {
			d.Members = Normalize(d.Members)
		}
		d.Name = CleanName(d.Name)
	}
	SortDeclarations(decls)
	return decls
}

// SortDeclarations orders decls by lowercased name, breaking ties by the
// name itself so the result does not depend on input order.
func SortDeclarations(decls []*Declaration) {
	slices.SortStableFunc(decls, func(a, b *Declaration) int {
		if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	})
}

// CleanName reduces a captured declaration text to the declared name.
//
// Text containing a ">" is cut after the last ">". Otherwise everything
// from the first "=" and then from the first ": " is dropped. A trailing
// extends clause and one matching pair of surrounding quotes are always
// removed.
func CleanName(name string) string {
	if i := strings.LastIndex(name, ">"); i >= 0 {
		name = name[:i+1]
	} else {
		if i := strings.Index(name, "="); i >= 0 {
			name = name[:i]
		}
		if i := strings.Index(name, ": "); i >= 0 {
			name = name[:i]
		}
	}
	name = extendsRe.ReplaceAllString(name, "")
	name = strings.TrimSpace(name)
	return strings.TrimSpace(unquote(name))
}

func unquote(s string) string {
	if len(s) < 2 {
		return s
	}
	if q := s[0]; (q == '\'' || q == '"') && s[len(s)-1] == q {
		return s[1 : len(s)-1]
	}
	return s
}
