// Package types defines the decoded form of a Windows VS_VERSIONINFO
// resource: the record tree, the fixed file info block, language/code page
// pairs, the typed error taxonomy and the diagnostics report.
//
// Every value in this package is produced in one pass by pkg/versioninfo and
// is not mutated afterwards. Byte fields alias the input buffer.
//
// This package has no dependencies beyond the standard library.
package types
