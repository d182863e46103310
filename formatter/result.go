package formatter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gnoswap-labs/argmatch"
	tt "github.com/gnoswap-labs/argmatch/internal/types"
	"github.com/gnoswap-labs/argmatch/pattern"
)

// FormatResult renders the entries of a match in argument order.
func FormatResult(res argmatch.Result) string {
	entries := res.Positional()
	width := len(strconv.Itoa(len(entries) - 1))

	var builder strings.Builder
	for i, e := range entries {
		builder.WriteString(lineStyle.Sprintf("%*d | ", width, i))
		if e.Name != "" {
			builder.WriteString(nameStyle.Sprint(e.Name))
			builder.WriteString(" = ")
		}
		builder.WriteString(formatValue(e.Value))
		builder.WriteString(noStyle.Sprintf(" (%s)", e.Type))
		builder.WriteString("\n")
	}
	return builder.String()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "null"
	case string:
		return strconv.Quote(x)
	default:
		if pattern.TagOf(v) == pattern.TagFunction {
			return "func"
		}
		return fmt.Sprint(v)
	}
}

// FormatError renders a matching failure with its kind.
func FormatError(err error) string {
	var perr *pattern.Error
	if errors.As(err, &perr) {
		return errorStyle.Sprintf("error[%s]: ", perr.Kind) + messageStyle.Sprintf("%s\n", perr.Msg)
	}
	return errorStyle.Sprint("error: ") + messageStyle.Sprintf("%v\n", err)
}

// FormatOutcomes renders one line per case outcome and a summary line.
func FormatOutcomes(outcomes []tt.Outcome) string {
	var builder strings.Builder
	for _, o := range outcomes {
		if o.Passed {
			builder.WriteString(passStyle.Sprint("PASS "))
		} else {
			builder.WriteString(errorStyle.Sprint("FAIL "))
		}
		builder.WriteString(nameStyle.Sprint(o.File))
		if o.Case != "" {
			builder.WriteString(": " + o.Case)
		}
		if !o.Passed {
			if o.Kind != "" {
				builder.WriteString(kindStyle.Sprintf(" [%s]", o.Kind))
			}
			if o.Message != "" {
				builder.WriteString(" " + messageStyle.Sprint(o.Message))
			}
		}
		builder.WriteString("\n")
	}
	builder.WriteString(noStyle.Sprintf("%d cases, %d failed\n", len(outcomes), tt.Failed(outcomes)))
	return builder.String()
}
