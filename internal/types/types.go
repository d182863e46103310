package types

// Outcome is the result of evaluating one case of a case file.
type Outcome struct {
	File    string `json:"file"`
	Case    string `json:"case"`
	Pattern string `json:"pattern,omitempty"`
	Passed  bool   `json:"passed"`
	// Kind is the failure kind reported by the matcher ("type", "syntax",
	// "range", "unmatched"), "load" for unreadable case files, or empty.
	Kind    string `json:"kind,omitempty"`
	Message string `json:"message,omitempty"`
}

// Failed counts the outcomes that did not pass.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if !o.Passed {
			n++
		}
	}
	return n
}
