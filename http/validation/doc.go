// Package validation provides Laravel-style rule-string validation with
// in-place normalization.
//
// # Overview
//
// Rules are expressed as pipe-separated strings on a map of field names.
// Rule parameters live in a parenthesized group and may themselves contain
// pipes, so the splitter only separates on pipes outside parentheses.
//
// Validation both checks and normalizes: every check writes the field's
// normalized value (or null) back into the validated store, and the store is
// what the caller persists.
//
// # Basic Usage
//
//	v := validation.Make(map[string]string{
//	    "name":         "Refactor billing",
//	    "startDate":    "2024-01-10 09:00",
//	    "endDate":      "2024-01-12 09:00",
//	    "durationUnit": "MONTHS",
//	}, validation.Rules{
//	    "name":         "required|varchar",
//	    "startDate":    "required|datetime",
//	    "endDate":      "after(startDate)",
//	    "durationUnit": "enum(HOURS|DAYS|WEEKS|default:DAYS)",
//	})
//
//	if v.Fails() {
//	    // v.Errors() → {"message": "...", "errors": {"field": "msg"}}
//	}
//	data := v.Validated() // map[string]any, "durationUnit" → "DAYS"
//
// # Available Rules
//
//   - required — value must contain a non-whitespace character
//   - varchar  — ASCII letters, digits, spaces and _-./() — 1 to 255 chars
//   - integer  — digits only, no sign or decimal point
//   - hexcolor — # followed by exactly 3 or 6 hex digits
//   - datetime — "YYYY-MM-DD HH:MM", strict (no calendar roll-over)
//   - after(ref) — strictly later than ref: another field's validated value,
//     or a literal datetime when no such field exists
//   - enum(a|b|c|default:d) — value in the set; with a default declared,
//     unlisted values resolve to the default instead of failing
//
// Every rule except required skips empty values, storing null. Unknown rule
// names are dispatched to a pass-through fallback rather than rejected.
//
// # Evaluation order
//
// A field's rules run left to right and stop at the first failure, so
// `required|varchar` reports at most one error per field. The first failing
// rule nulls the stored value; the overall report message reflects the most
// recent failure.
package validation
