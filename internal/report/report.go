package report

import (
	"fmt"
	"io"
	"strings"

	"go.dw1.io/typebuilder/flags"
)

// Report is the description of one flag set.
type Report struct {
	Expression   string   `json:"expression"`
	Hex          string   `json:"hex"`
	Capabilities []string `json:"capabilities"`
	Value        uint64   `json:"value"`
}

// Describe builds the report for s.
func Describe(s flags.Set) Report {
	caps := s.Capabilities()

	r := Report{
		Expression:   s.String(),
		Hex:          fmt.Sprintf("%#016x", uint64(s)),
		Value:        uint64(s),
		Capabilities: make([]string, 0, len(caps)),
	}
	for _, c := range caps {
		r.Capabilities = append(r.Capabilities, c.String())
	}

	return r
}

// WriteText writes r as aligned "key: value" lines, one capability per
// line.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder

	fmt.Fprintf(&b, "expression:   %s\n", r.Expression)
	fmt.Fprintf(&b, "value:        %s (%d)\n", r.Hex, r.Value)
	b.WriteString("capabilities:")
	if len(r.Capabilities) == 0 {
		b.WriteString(" none")
	}
	b.WriteByte('\n')
	for _, c := range r.Capabilities {
		fmt.Fprintf(&b, "  %s\n", c)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON writes r as one JSON document followed by a newline, indented
// unless compact is set.
func (r Report) WriteJSON(w io.Writer, compact bool) error {
	data, err := encode(r, compact)
	if err != nil {
		return err
	}

	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
