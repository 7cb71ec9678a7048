package validation

// DefaultMessage is the overall message before any failing check supplies
// its own.
const DefaultMessage = "The given data was invalid."

// Report holds the outcome of one validation run.
// JSON output: {"message": "...", "errors": {"field": "msg"}}
type Report struct {
	Message string            `json:"message"`
	Fields  map[string]string `json:"errors"`
}

func newReport() *Report {
	return &Report{Message: DefaultMessage, Fields: make(map[string]string)}
}

// add records a failure for a field. A later failure for the same field
// overwrites the earlier message; the overall Message tracks the most recent
// non-empty failure message across all fields.
func (r *Report) add(field, msg string) {
	r.Fields[field] = msg
	if msg != "" {
		r.Message = msg
	}
}

// Has returns true if any field failed.
func (r *Report) Has() bool { return len(r.Fields) > 0 }

// First returns the recorded message for a field, or "".
func (r *Report) First(field string) string { return r.Fields[field] }
