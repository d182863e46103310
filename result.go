package argmatch

import (
	"strconv"

	"github.com/gnoswap-labs/argmatch/pattern"
)

// Entry is one matched argument.
type Entry struct {
	Value any         `json:"value" yaml:"value"`
	Type  pattern.Tag `json:"type" yaml:"type"`
	Name  string      `json:"name" yaml:"name"`
}

// Result maps the zero-based position of every argument, written in
// decimal, to its Entry. Entries bound to a named slot are also stored
// under that name.
type Result map[string]Entry

func (r Result) bind(i int, e Entry) {
	r[strconv.Itoa(i)] = e
	if e.Name != "" {
		r[e.Name] = e
	}
}

// At returns the entry of the argument at position i.
func (r Result) At(i int) (Entry, bool) {
	e, ok := r[strconv.Itoa(i)]
	return e, ok
}

// Get returns the entry bound to the named slot.
func (r Result) Get(name string) (Entry, bool) {
	e, ok := r[name]
	return e, ok
}

// Positional returns the entries in argument order.
func (r Result) Positional() []Entry {
	var entries []Entry
	for i := 0; ; i++ {
		e, ok := r.At(i)
		if !ok {
			return entries
		}
		entries = append(entries, e)
	}
}
