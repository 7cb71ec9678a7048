package validation

import "strings"

// ── Types ────────────────────────────────────────────────────────────────────

// Rules is a map of field → pipe-separated rule string.
// e.g. Rules{"startDate": "required|datetime", "endDate": "after(startDate)"}
type Rules map[string]string

// checkFunc applies one rule token to a field. A failing check records the
// field error, nulls the stored value and returns false; checks never panic
// or return Go errors.
type checkFunc func(v *Validator, field, value string, tok Token) bool

// checks is the static dispatch table from rule name to check routine.
// Unknown rule names fall back to checkDefault (pass-through).
var checks = map[string]checkFunc{
	"required": (*Validator).checkRequired,
	"varchar":  (*Validator).checkVarchar,
	"integer":  (*Validator).checkInteger,
	"hexcolor": (*Validator).checkHexcolor,
	"datetime": (*Validator).checkDatetime,
	"after":    (*Validator).checkAfter,
	"enum":     (*Validator).checkEnum,
}

// ── Validator ────────────────────────────────────────────────────────────────

// Validator performs a single validation run. All run state — the validated
// store, the error report and the outcome flag — lives on the instance, so
// independent runs never interfere. A Validator is not safe for concurrent
// use; build one per request with Make.
type Validator struct {
	data   map[string]any
	rules  Rules
	report *Report
	valid  bool
	ran    bool
}

// Make creates a Validator — mirrors Validator::make($data, $rules).
// The input is copied into the validated store, so cross-field references
// (the after rule) resolve regardless of field visit order, and the caller's
// map is never mutated.
func Make(data map[string]string, rules Rules) *Validator {
	store := make(map[string]any, len(data))
	for k, v := range data {
		store[k] = v
	}
	return &Validator{
		data:   store,
		rules:  rules,
		report: newReport(),
		valid:  true,
	}
}

// Fails runs validation (once) and returns true if any rule failed.
func (v *Validator) Fails() bool {
	if !v.ran {
		v.ran = true
		v.ValidateAll()
	}
	return !v.valid
}

// Passes runs validation and returns true if all rules passed.
func (v *Validator) Passes() bool { return !v.Fails() }

// Errors returns the validation report.
func (v *Validator) Errors() *Report { return v.report }

// Validated returns the normalized store: field → string value, or nil for
// empty optional fields and failed checks. The store is always populated,
// even on overall failure, so partially-validated data stays queryable.
func (v *Validator) Validated() map[string]any { return v.data }

// ── Core validation loop ─────────────────────────────────────────────────────

// ValidateAll validates every field present in the input data that also has
// a rule entry. Fields without rules pass through untouched. Rule entries
// whose field is absent from the data are not visited — a required rule on
// an omitted field is never evaluated here, so callers that want it applied
// pre-fill the missing keys with empty strings.
func (v *Validator) ValidateAll() bool {
	for field, raw := range v.data {
		ruleStr, ok := v.rules[field]
		if !ok {
			continue
		}
		value, _ := raw.(string)
		v.ValidateField(field, value, ruleStr)
	}
	return v.valid
}

// ValidateField trims the raw value, writes it to the store and evaluates
// the field's rule tokens strictly left to right. Evaluation stops at the
// first failing token (bail behaviour); later tokens are skipped and false
// is returned. An empty rule string passes vacuously, leaving the trimmed
// value in the store.
func (v *Validator) ValidateField(field, value, ruleStr string) bool {
	value = strings.TrimSpace(value)
	v.data[field] = value

	for _, tok := range Parse(ruleStr) {
		check, ok := checks[tok.Name]
		if !ok {
			check = (*Validator).checkDefault
		}
		if !check(v, field, value, tok) {
			return false
		}
	}
	return true
}

// fail records a failing check: the outcome flag goes false, the field's
// report entry is set (last failure per field wins) and the stored value is
// nulled. Always returns false so checks can `return v.fail(...)`.
func (v *Validator) fail(field, msg string) bool {
	v.valid = false
	v.report.add(field, msg)
	v.data[field] = nil
	return false
}
