// Package argmatch matches loosely ordered, optionally typed argument lists
// against a textual pattern.
//
//	res, err := argmatch.Match([]any{"bob", 3}, "name:string,[times:number]")
//	// res["0"], res["name"] -> {Value: "bob", Type: "string", Name: "name"}
//	// res["1"], res["times"] -> {Value: 3, Type: "number", Name: "times"}
//
// Every call compiles the pattern afresh; see package pattern for the syntax.
package argmatch

import "github.com/gnoswap-labs/argmatch/pattern"

// Sentinels for errors.Is, one per failure kind.
var (
	ErrType      = pattern.ErrType
	ErrSyntax    = pattern.ErrSyntax
	ErrRange     = pattern.ErrRange
	ErrUnmatched = pattern.ErrUnmatched
)

var defaultMatcher = New()

// Match binds args to pattern using a matcher that does not log.
func Match(args []any, p string) (Result, error) {
	return defaultMatcher.Match(args, p)
}

// MatchValue binds args to pattern when either input has an unknown dynamic
// type. It fails with ErrType when args is not a slice or an array or when
// p is not a string.
func MatchValue(args any, p any) (Result, error) {
	return defaultMatcher.MatchValue(args, p)
}
