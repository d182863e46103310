package pattern

import "strings"

const (
	msgEmptyDefinition   = "Empty argument definition in pattern."
	msgUnclosedOptional  = "Argument started as optional but closing bracket missing."
	msgPatternNotString  = "Pattern must be string."
	segmentSeparator     = ","
	alternativeSeparator = "|"
	nameSeparator        = ":"
)

// segment is one comma-separated piece of a pattern while it is being parsed.
type segment struct {
	text     string
	optional bool
}

// Parse compiles a pattern into a Schema. Syntax problems are carried by
// the returned Option instead of being returned separately.
func Parse(pattern string) Option[Schema] {
	parts := strings.Split(pattern, segmentSeparator)
	schema := Schema{Slots: make([]Slot, 0, len(parts))}

	for _, part := range parts {
		slot, err := parseSegment(part).Unwrap()
		if err != nil {
			return Fail[Schema](err)
		}
		schema.Slots = append(schema.Slots, slot)
	}

	return Some(schema)
}

// Compile is Parse in the (value, error) form.
func Compile(pattern string) (Schema, error) {
	return Parse(pattern).Unwrap()
}

// ParseValue is Parse for a pattern of unknown dynamic type.
func ParseValue(pattern any) Option[Schema] {
	s, ok := pattern.(string)
	if !ok {
		return Fail[Schema](Errorf(KindType, msgPatternNotString))
	}
	return Parse(s)
}

func parseSegment(text string) Option[Slot] {
	seg, err := Some(segment{text: text}).
		Bind(requireDefinition).
		Bind(unwrapOptional).
		Bind(requireDefinition).
		Unwrap()
	if err != nil {
		return Fail[Slot](err)
	}
	return Some(buildSlot(seg))
}

func requireDefinition(seg segment) Option[segment] {
	if seg.text == "" {
		return Fail[segment](Errorf(KindSyntax, msgEmptyDefinition))
	}
	return Some(seg)
}

// unwrapOptional strips a surrounding bracket pair and marks the segment
// optional. Both brackets are required once the opening one is present.
func unwrapOptional(seg segment) Option[segment] {
	if !strings.HasPrefix(seg.text, "[") {
		return Some(seg)
	}
	if len(seg.text) < 2 || !strings.HasSuffix(seg.text, "]") {
		return Fail[segment](Errorf(KindSyntax, msgUnclosedOptional))
	}
	return Some(segment{text: seg.text[1 : len(seg.text)-1], optional: true})
}

func buildSlot(seg segment) Slot {
	slot := Slot{Optional: seg.optional}
	for i, spec := range strings.Split(seg.text, alternativeSeparator) {
		name, typ := splitTyped(spec)
		if i == 0 {
			slot.Name, slot.Type = name, typ
			continue
		}
		if name == "" {
			name = slot.Name
		}
		slot.Alternatives = append(slot.Alternatives, Alternative{Name: name, Type: typ})
	}
	return slot
}

// splitTyped splits "name:type" into its parts. Without a colon the whole
// spec is the type. Text after a second colon is dropped.
func splitTyped(spec string) (string, Tag) {
	parts := strings.Split(spec, nameSeparator)
	if len(parts) == 1 {
		return "", Tag(parts[0])
	}
	return parts[0], Tag(parts[1])
}
