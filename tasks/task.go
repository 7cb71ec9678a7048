// Package tasks implements the tasks CRUD resource: validation rules,
// persistence and the HTTP controller.
package tasks

import (
	"errors"

	"github.com/tmjaga/api-task/http/validation"
)

// Table is the backing table name.
const Table = "tasks"

// Fields lists every payload field the resource accepts, in persistence
// order. Column names are derived from these via support.CamelToSnake.
var Fields = []string{
	"name",
	"description",
	"startDate",
	"endDate",
	"duration",
	"durationUnit",
	"color",
}

// RuleSet declares the validation rules applied to create and update
// payloads.
func RuleSet() validation.Rules {
	return validation.Rules{
		"name":         "required|varchar",
		"description":  "varchar",
		"startDate":    "required|datetime",
		"endDate":      "after(startDate)",
		"duration":     "integer",
		"durationUnit": "enum(HOURS|DAYS|WEEKS|default:DAYS)",
		"color":        "hexcolor",
	}
}

// ErrNotFound is returned when no live row matches the requested id.
var ErrNotFound = errors.New("task not found")

// Repository persists tasks. Records travel as flat field → value maps in
// the API's camelCase naming (values are strings or nil); implementations
// handle column mapping and soft deletion.
type Repository interface {
	All() ([]map[string]any, error)
	Find(id int64) (map[string]any, error)
	Create(data map[string]any) (int64, error)
	Update(id int64, data map[string]any) error
	Delete(id int64) error
}
