package validation

import "strings"

// Token is one parsed unit of a rule string: a rule name plus an optional
// raw parameter string.
//
//	required                          → {Name: "required"}
//	after(startDate)                  → {Name: "after", Params: "startDate", HasParams: true}
//	enum(HOURS|DAYS|default:DAYS)     → {Name: "enum", Params: "HOURS|DAYS|default:DAYS", HasParams: true}
//
// HasParams distinguishes a rule declared without a parameter group at all
// (e.g. `enum`) from one declared with an empty group (`enum()`).
type Token struct {
	Name      string
	Params    string
	HasParams bool
}

// Parse splits a rule string into ordered tokens.
//
// The separator is `|`, but only at parenthesis depth zero — rule parameters
// may themselves contain pipes, so `enum(A|B|default:C)|required` is exactly
// two tokens. An empty rule string yields no tokens.
func Parse(ruleStr string) []Token {
	var tokens []Token
	for _, seg := range splitRules(ruleStr) {
		seg = strings.TrimSpace(seg)
		if seg == "" {
			continue
		}
		tokens = append(tokens, parseToken(seg))
	}
	return tokens
}

// splitRules is a single-pass scanner that splits on `|` while tracking
// parenthesis nesting depth.
func splitRules(s string) []string {
	var out []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case '|':
			if depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	return append(out, s[start:])
}

// parseToken extracts the rule name (everything before an optional `(`) and
// the raw interior of the parameter group. A group left unclosed is treated
// as running to the end of the segment.
func parseToken(seg string) Token {
	open := strings.IndexByte(seg, '(')
	if open < 0 {
		return Token{Name: seg}
	}
	rest := seg[open+1:]
	if close := strings.LastIndexByte(rest, ')'); close >= 0 {
		rest = rest[:close]
	}
	return Token{Name: seg[:open], Params: rest, HasParams: true}
}
