// Package defs holds the application command definitions, one file per
// feature area.
package defs

func perm(p int64) *int64 { return &p }
