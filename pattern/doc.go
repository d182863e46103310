/*
Package pattern compiles argument patterns into schemas used by the argmatch
matcher.

# Pattern Syntax

A pattern is a comma-separated list of segments. Each segment describes one
positional argument (a slot):

	name:string,[count:number],callback:function|object

Segment rules:

 1. A segment is one or more type specs joined by '|'.
    The first spec is the primary type, the others are alternatives.

 2. A type spec is either "name:type" or a bare "type".
    Example: "id:number", "string"

 3. An alternative without its own name inherits the slot name.
    Example: "id:number|string" binds a string argument to "id"

 4. Wrapping a segment in brackets marks it optional.
    Example: "[verbose:boolean]"

No whitespace is trimmed: " string" has the type tag " string".

# Type Tags

Arguments are classified with TagOf into one of:

  - boolean
  - number
  - string
  - object
  - array (never reported as object)
  - function
  - null

Tags outside this set are accepted by the compiler but never match.

# Errors

Parse does not return errors directly: it returns an Option carrying either
the Schema or an *Error of KindSyntax. Compile unwraps the Option into the
usual (value, error) form.

	schema, err := pattern.Compile("string,[number]")
	if errors.Is(err, pattern.ErrSyntax) {
		// malformed pattern
	}
*/
package pattern
