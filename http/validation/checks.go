package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateTimeLayout is the only datetime format the engine accepts.
const DateTimeLayout = "2006-01-02 15:04"

// ruleConfig holds the pattern and message configured for a rule name.
// The "default" entry backs the fallback check for unknown rule names: give
// it a pattern and every unknown rule becomes a regex gate, leave it empty
// and unknown rules pass through.
type ruleConfig struct {
	re      *regexp.Regexp
	message string
}

var ruleConfigs = map[string]*ruleConfig{
	"required": {message: "The %s field is required."},
	"varchar":  {re: regexp.MustCompile(`^[a-zA-Z0-9_\-.\s()/]{1,255}$`), message: "The %s format is invalid."},
	"integer":  {re: regexp.MustCompile(`^[0-9]+$`), message: "The %s must be an integer."},
	"hexcolor": {re: regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`), message: "The %s must be a valid hexadecimal color."},
	"datetime": {message: "The %s is not a valid datetime."},
	"after":    {message: "The %s must be a date after %s."},
	"enum":     {message: "The selected %s is invalid."},
	"default":  {},
}

// ── Check routines ───────────────────────────────────────────────────────────
//
// Every check shares the same contract: the value arrives trimmed, success
// writes the normalized value to the store and returns true, failure goes
// through Validator.fail. Checks other than required are "optional" — they
// only constrain non-empty values (use required to force presence).

func (v *Validator) checkRequired(field, value string, _ Token) bool {
	if value == "" {
		return v.fail(field, fmt.Sprintf(ruleConfigs["required"].message, field))
	}
	v.data[field] = value
	return true
}

func (v *Validator) checkVarchar(field, value string, _ Token) bool {
	if v.passEmpty(field, value) {
		return true
	}
	return v.checkPattern(field, value, "varchar")
}

func (v *Validator) checkInteger(field, value string, _ Token) bool {
	if v.passEmpty(field, value) {
		return true
	}
	// All-digit only: no sign, no decimal point. Leading zeros survive
	// untouched ("042" stays "042").
	return v.checkPattern(field, value, "integer")
}

func (v *Validator) checkHexcolor(field, value string, _ Token) bool {
	if v.passEmpty(field, value) {
		return true
	}
	return v.checkPattern(field, value, "hexcolor")
}

// checkDatetime accepts values in DateTimeLayout. Parsing alone is not
// enough: the parsed time must reformat to the original string, which
// rejects unpadded components a lenient parse would let through.
func (v *Validator) checkDatetime(field, value string, _ Token) bool {
	if v.passEmpty(field, value) {
		return true
	}
	if !validDatetime(value) {
		return v.fail(field, fmt.Sprintf(ruleConfigs["datetime"].message, field))
	}
	v.data[field] = value
	return true
}

// checkAfter validates the value as a datetime, resolves the parameter —
// the name of a field in the store, or failing that a literal datetime —
// and requires the value to be strictly later. Equal timestamps fail.
func (v *Validator) checkAfter(field, value string, tok Token) bool {
	if v.passEmpty(field, value) {
		return true
	}
	// Reuse the datetime check; its store write is part of the contract.
	if !v.checkDatetime(field, value, tok) {
		return false
	}

	ref := tok.Params
	if stored, ok := v.data[ref].(string); ok {
		ref = strings.TrimSpace(stored)
	}
	if !validDatetime(ref) {
		return v.fail(field, fmt.Sprintf("The after rule on %s has no valid datetime to compare against.", field))
	}

	cur, _ := time.Parse(DateTimeLayout, value)
	refTime, _ := time.Parse(DateTimeLayout, ref)
	if !cur.After(refTime) {
		return v.fail(field, fmt.Sprintf(ruleConfigs["after"].message, field, tok.Params))
	}
	return true
}

// checkEnum matches the value against the allowed set declared in the
// parameter group. A `default:D` declaration makes any unlisted value
// resolve to D instead of failing. Declaring enum with no parameter group
// at all is a configuration error.
func (v *Validator) checkEnum(field, value string, tok Token) bool {
	if v.passEmpty(field, value) {
		return true
	}
	if !tok.HasParams {
		return v.fail(field, fmt.Sprintf("The enum rule on %s is misconfigured.", field))
	}

	allowed, def, hasDefault := splitEnumParams(tok.Params)
	for _, a := range allowed {
		if a == value {
			v.data[field] = value
			return true
		}
	}
	if hasDefault {
		v.data[field] = def
		return true
	}
	return v.fail(field, fmt.Sprintf(ruleConfigs["enum"].message, field))
}

// checkDefault is the dispatch fallback for unknown rule names. It is never
// named in a rule string. With no configured pattern it stores the value
// unchanged and passes; with one it acts as a regex gate.
func (v *Validator) checkDefault(field, value string, _ Token) bool {
	if v.passEmpty(field, value) {
		return true
	}
	if cfg := ruleConfigs["default"]; cfg.re != nil {
		if !cfg.re.MatchString(value) {
			return v.fail(field, fmt.Sprintf(cfg.message, field))
		}
	}
	v.data[field] = value
	return true
}

// ── Helpers ──────────────────────────────────────────────────────────────────

// passEmpty implements the optional-check short-circuit: an empty value is
// stored as null and passes without applying the rule.
func (v *Validator) passEmpty(field, value string) bool {
	if value == "" {
		v.data[field] = nil
		return true
	}
	return false
}

// checkPattern applies a configured regex gate.
func (v *Validator) checkPattern(field, value, rule string) bool {
	cfg := ruleConfigs[rule]
	if !cfg.re.MatchString(value) {
		return v.fail(field, fmt.Sprintf(cfg.message, field))
	}
	v.data[field] = value
	return true
}

// validDatetime reports whether s parses under DateTimeLayout and survives
// an exact round-trip back to the same string.
func validDatetime(s string) bool {
	t, err := time.Parse(DateTimeLayout, s)
	return err == nil && t.Format(DateTimeLayout) == s
}

// splitEnumParams partitions enum parameters into the allowed set and an
// optional default declaration. The last default declaration wins.
func splitEnumParams(params string) (allowed []string, def string, hasDefault bool) {
	for _, p := range strings.Split(params, "|") {
		if strings.Contains(p, "default") {
			hasDefault = true
			_, def, _ = strings.Cut(p, ":")
			continue
		}
		allowed = append(allowed, p)
	}
	return allowed, def, hasDefault
}
