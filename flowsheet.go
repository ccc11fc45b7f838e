// Package flowsheet builds static cheat-sheet pages for the Flow type
// checker's library declarations. It fetches the lib/*.js declaration files
// for each Flow release, extracts declaration names, and renders them as
// deep-linked HTML lists grouped by source file.
//
// This package contains domain types, the pure pipeline stages, and
// interfaces following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., http/, safehtml/, yaml/).
package flowsheet
