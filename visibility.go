package flowsheet

import "strings"

// PrivacyRule reports whether a cleaned name is internal ("magic") rather
// than part of the public library surface.
type PrivacyRule func(name string) bool

// PrivateDollar treats names containing "$" as private.
func PrivateDollar(name string) bool {
	return strings.Contains(name, "$")
}

// PrivateDollarOrUnderscore additionally treats names with a leading "_"
// as private. Older cheat sheets used this rule.
func PrivateDollarOrUnderscore(name string) bool {
	return strings.HasPrefix(name, "_") || PrivateDollar(name)
}

// Classify splits decls into public and private declarations, preserving
// order within each list. Modules are classified by their own name only.
func Classify(decls []*Declaration, isPrivate PrivacyRule) (public, private []*Declaration) {
	if isPrivate == nil {
		isPrivate = PrivateDollar
	}
	for _, d := range decls {
		if isPrivate(d.Name) {
			private = append(private, d)
		} else {
			public = append(public, d)
		}
	}
	return public, private
}

// ClassifyBuiltins splits builtins the same way Classify splits declarations.
func ClassifyBuiltins(builtins []Builtin, isPrivate PrivacyRule) (public, private []Builtin) {
	if isPrivate == nil {
		isPrivate = PrivateDollar
	}
	for _, b := range builtins {
		if isPrivate(b.Name) {
			private = append(private, b)
		} else {
			public = append(public, b)
		}
	}
	return public, private
}
