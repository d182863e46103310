package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/gnoswap-labs/argmatch/pattern"
)

const schemaTemplate = `{{header .Pattern .Min .Max}}
{{bar .Padding}}
{{- range .Slots}}
{{slot . $.Width}}
{{- end}}
{{bar .Padding}}
{{- range .Unknown}}
{{unknown .}}
{{- end}}
`

// SchemaData is the view of a compiled schema rendered by FormatSchema.
type SchemaData struct {
	Pattern string
	Min     int
	Max     int
	Width   int
	Padding string
	Slots   []SlotData
	Unknown []pattern.Tag
}

// SlotData is one slot line of SchemaData.
type SlotData struct {
	Index    int
	Name     string
	Accepts  []string
	Optional bool
}

var schemaTmpl = template.Must(template.New("schema").Funcs(template.FuncMap{
	"header":  schemaHeader,
	"bar":     bar,
	"slot":    slotLine,
	"unknown": unknownTag,
}).Parse(schemaTemplate))

// FormatSchema renders a compiled schema, one line per slot, followed by a
// warning for every type tag that can never match.
func FormatSchema(schema pattern.Schema) string {
	min, max := schema.Bounds()
	width := len(fmt.Sprintf("%d", len(schema.Slots)-1))

	data := SchemaData{
		Pattern: schema.String(),
		Min:     min,
		Max:     max,
		Width:   width,
		Padding: strings.Repeat(" ", width+1),
		Unknown: schema.UnknownTags(),
	}
	for i, slot := range schema.Slots {
		data.Slots = append(data.Slots, SlotData{
			Index:    i,
			Name:     slot.Name,
			Accepts:  accepted(slot),
			Optional: slot.Optional,
		})
	}

	var buf bytes.Buffer
	if err := schemaTmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting schema: %v", err)
	}
	return buf.String()
}

// accepted lists the tags of a slot; alternatives bound to another name
// are shown as name:tag.
func accepted(slot pattern.Slot) []string {
	out := []string{string(slot.Type)}
	for _, alt := range slot.Alternatives {
		if alt.Name != slot.Name {
			out = append(out, alt.Name+":"+string(alt.Type))
			continue
		}
		out = append(out, string(alt.Type))
	}
	return out
}

func schemaHeader(p string, min, max int) string {
	s := kindStyle.Sprint("pattern: ")
	s += nameStyle.Sprint(p)
	s += noStyle.Sprintf(" (%d-%d arguments)", min, max)
	return s
}

func bar(padding string) string {
	return lineStyle.Sprintf("%s|", padding)
}

func slotLine(slot SlotData, width int) string {
	s := lineStyle.Sprintf("%*d | ", width, slot.Index)
	if slot.Name != "" {
		s += nameStyle.Sprint(slot.Name) + ": "
	}
	s += strings.Join(slot.Accepts, " | ")
	if slot.Optional {
		s += noStyle.Sprint(" (optional)")
	}
	return s
}

func unknownTag(t pattern.Tag) string {
	return warningStyle.Sprint("warning: ") + fmt.Sprintf("type tag %q never matches an argument", string(t))
}
