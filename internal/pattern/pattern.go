package pattern

import (
	"strings"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Pattern is a compiled regular expression backed by either coregex or
// regexp2.
type Pattern struct {
	expr string
	core *coregex.Regex
	pcre *regexp2.Regexp
}

// Compile parses expr. Expressions using PCRE-only constructs are compiled
// with regexp2, everything else with coregex.
func Compile(expr string) (*Pattern, error) {
	if needsPCRE(expr) {
		re, err := regexp2.Compile(expr, regexp2.None)
		if err != nil {
			return nil, err
		}
		return &Pattern{expr: expr, pcre: re}, nil
	}

	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, err
	}

	return &Pattern{expr: expr, core: re}, nil
}

// MustCompile is like Compile but panics if expr cannot be parsed.
func MustCompile(expr string) *Pattern {
	p, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return p
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source expression.
func (p *Pattern) String() string {
	return p.expr
}

// MatchString reports whether s contains a match of p.
func (p *Pattern) MatchString(s string) bool {
	if p.core != nil {
		return p.core.MatchString(s)
	}

	matched, err := p.pcre.MatchString(s)
	return err == nil && matched
}

// FindStringSubmatch returns the leftmost match of p in s followed by its
// groups, or nil if there is no match.
func (p *Pattern) FindStringSubmatch(s string) []string {
	if p.core != nil {
		return p.core.FindStringSubmatch(s)
	}

	m, err := p.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	groups := m.Groups()
	out := make([]string, len(groups))
	runes := []rune(s)
	for i, g := range groups {
		if g.Index < 0 || g.Length < 0 || len(g.Captures) == 0 {
			continue
		}
		out[i] = string(runes[g.Index : g.Index+g.Length])
	}

	return out
}

// needsPCRE reports whether expr uses constructs that RE2 cannot execute.
func needsPCRE(expr string) bool {
	for _, tok := range []string{"(?=", "(?!", "(?<=", "(?<!", "(?>", `\k<`} {
		if strings.Contains(expr, tok) {
			return true
		}
	}

	escaped := false
	for i := 0; i < len(expr); i++ {
		if expr[i] != '\\' {
			escaped = false
			continue
		}
		if !escaped && i+1 < len(expr) && expr[i+1] >= '1' && expr[i+1] <= '9' {
			return true
		}
		escaped = !escaped
	}

	// Go only understands (?P<name>...).
	return !strings.Contains(expr, "(?P<") &&
		(strings.Contains(expr, "(?<") || strings.Contains(expr, "(?'"))
}
