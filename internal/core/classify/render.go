package classify

import (
	"encoding/json"
	"strconv"
	"strings"

	perr "langid/internal/platform/errors"
	pstrings "langid/internal/platform/strings"
)

// Format selects the response encoding
type Format string

const (
	// FormatTuple renders a single tuple-like line
	FormatTuple Format = "tuple"
	// FormatJSON renders one JSON object per response
	FormatJSON Format = "json"
)

// Render serializes res as one newline-terminated response
func Render(f Format, res Result) ([]byte, error) {
	switch f {
	case FormatJSON:
		if res.Candidates == nil {
			res.Candidates = []Candidate{}
		}
		b, err := json.Marshal(res)
		if err != nil {
			return nil, perr.Wrap(err, perr.ErrorCodeUnknown, "encode result")
		}
		return append(b, '\n'), nil
	case FormatTuple, "":
		return []byte(Tuple(res) + "\n"), nil
	default:
		return nil, perr.InvalidArgf("unknown response format %q", f)
	}
}

// Tuple renders res as ('<code>', True|False, (('<NAME>', '<code>', <percent>, <score>), ...))
func Tuple(res Result) string {
	var b strings.Builder
	b.WriteByte('(')
	b.WriteString(quote(res.Code))
	b.WriteString(", ")
	b.WriteString(pyBool(res.Reliable))
	b.WriteString(", (")
	for i, c := range res.Candidates {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		b.WriteString(quote(c.Name))
		b.WriteString(", ")
		b.WriteString(quote(c.Code))
		b.WriteString(", ")
		b.WriteString(strconv.Itoa(c.Percent))
		b.WriteString(", ")
		b.WriteString(strconv.FormatFloat(c.Score, 'f', 4, 64))
		b.WriteByte(')')
	}
	if len(res.Candidates) == 1 {
		b.WriteByte(',')
	}
	b.WriteString("))")
	return b.String()
}

// ErrorLine renders the single response written when a backend fails
func ErrorLine(err error) []byte {
	code := perr.CodeOf(err)
	msg := "internal error"
	if e, ok := perr.As(err); ok && e.Message() != "" {
		msg = e.Message()
	} else if err != nil {
		msg = err.Error()
	}
	msg = pstrings.OneLine(msg)
	return []byte("ERROR " + code.String() + " " + msg + "\n")
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\r", `\r`)
	return "'" + r.Replace(s) + "'"
}

func pyBool(v bool) string {
	if v {
		return "True"
	}
	return "False"
}
