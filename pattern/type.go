package pattern

import "strings"

// Alternative is an additional type tag accepted by a slot.
type Alternative struct {
	Name string
	Type Tag
}

// Slot describes one positional argument of a pattern.
type Slot struct {
	Name         string // may be empty
	Type         Tag    // primary type tag
	Alternatives []Alternative
	Optional     bool
}

// Accepts reports whether the slot accepts an argument tagged t and returns
// the name the argument binds to: the slot name for the primary type,
// otherwise the name of the first alternative carrying t.
func (s Slot) Accepts(t Tag) (string, bool) {
	if s.Type == t {
		return s.Name, true
	}
	for _, alt := range s.Alternatives {
		if alt.Type == t {
			return alt.Name, true
		}
	}
	return "", false
}

// Tags lists every tag the slot accepts, primary first.
func (s Slot) Tags() []Tag {
	tags := make([]Tag, 0, len(s.Alternatives)+1)
	tags = append(tags, s.Type)
	for _, alt := range s.Alternatives {
		tags = append(tags, alt.Type)
	}
	return tags
}

func (s Slot) String() string {
	var b strings.Builder
	if s.Optional {
		b.WriteByte('[')
	}
	writeTyped(&b, s.Name, s.Type)
	for _, alt := range s.Alternatives {
		b.WriteByte('|')
		if alt.Name == s.Name {
			// inherited name, omit it
			b.WriteString(string(alt.Type))
			continue
		}
		writeTyped(&b, alt.Name, alt.Type)
	}
	if s.Optional {
		b.WriteByte(']')
	}
	return b.String()
}

func writeTyped(b *strings.Builder, name string, t Tag) {
	if name != "" {
		b.WriteString(name)
		b.WriteByte(':')
	}
	b.WriteString(string(t))
}

// Schema is the compiled form of a pattern. Slot order is significant.
type Schema struct {
	Slots []Slot
}

// Bounds returns the minimum (required slots) and maximum (all slots)
// argument counts the schema accepts.
func (s Schema) Bounds() (min, max int) {
	for _, slot := range s.Slots {
		if !slot.Optional {
			min++
		}
	}
	return min, len(s.Slots)
}

// String renders the schema back into pattern text.
func (s Schema) String() string {
	parts := make([]string, len(s.Slots))
	for i, slot := range s.Slots {
		parts[i] = slot.String()
	}
	return strings.Join(parts, ",")
}

// UnknownTags lists, in order of first appearance, the tags used by the
// schema that TagOf never produces. Slots carrying only such tags can never
// bind an argument.
func (s Schema) UnknownTags() []Tag {
	var unknown []Tag
	seen := make(map[Tag]bool)
	for _, slot := range s.Slots {
		for _, t := range slot.Tags() {
			if t.Known() || seen[t] {
				continue
			}
			seen[t] = true
			unknown = append(unknown, t)
		}
	}
	return unknown
}
