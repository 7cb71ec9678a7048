package tasks

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/tmjaga/api-task/support"
)

// MySQLRepository is the Repository implementation over database/sql.
// Deletion is soft: Delete stamps deleted_at and every read filters on it.
type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

func (r *MySQLRepository) All() ([]map[string]any, error) {
	rows, err := r.db.Query(selectQuery() + " ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	tasks := make([]map[string]any, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("list tasks: %w", err)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (r *MySQLRepository) Find(id int64) (map[string]any, error) {
	row := r.db.QueryRow(selectQuery()+" AND id = ?", id)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find task: %w", err)
	}
	return task, nil
}

func (r *MySQLRepository) Create(data map[string]any) (int64, error) {
	query, args := insertQuery(data)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create task: %w", err)
	}
	return id, nil
}

func (r *MySQLRepository) Update(id int64, data map[string]any) error {
	query, args := updateQuery(id, data)
	result, err := r.db.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return noneAffected(result)
}

func (r *MySQLRepository) Delete(id int64) error {
	result, err := r.db.Exec(
		"UPDATE "+Table+" SET deleted_at = NOW() WHERE id = ? AND deleted_at IS NULL", id)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return noneAffected(result)
}

// ── SQL construction ─────────────────────────────────────────────────────────

func columns() []string {
	cols := make([]string, len(Fields))
	for i, f := range Fields {
		cols[i] = support.CamelToSnake(f)
	}
	return cols
}

func selectQuery() string {
	return fmt.Sprintf("SELECT id, %s FROM %s WHERE deleted_at IS NULL",
		strings.Join(columns(), ", "), Table)
}

func insertQuery(data map[string]any) (string, []any) {
	cols := columns()
	marks := make([]string, len(cols))
	args := make([]any, len(Fields))
	for i, f := range Fields {
		marks[i] = "?"
		args[i] = data[f]
	}
	query := fmt.Sprintf("INSERT INTO %s (%s, created_at) VALUES (%s, NOW())",
		Table, strings.Join(cols, ", "), strings.Join(marks, ", "))
	return query, args
}

func updateQuery(id int64, data map[string]any) (string, []any) {
	sets := make([]string, len(Fields))
	args := make([]any, 0, len(Fields)+1)
	for i, f := range Fields {
		sets[i] = support.CamelToSnake(f) + " = ?"
		args = append(args, data[f])
	}
	query := fmt.Sprintf("UPDATE %s SET %s, updated_at = NOW() WHERE id = ? AND deleted_at IS NULL",
		Table, strings.Join(sets, ", "))
	return query, append(args, id)
}

// ── Row scanning ─────────────────────────────────────────────────────────────

type scannable interface {
	Scan(dest ...any) error
}

// scanTask reads one row into the flat camelCase map the API serves.
// Nullable columns come back as nil values.
func scanTask(row scannable) (map[string]any, error) {
	var id int64
	vals := make([]sql.NullString, len(Fields))
	dest := make([]any, 0, len(Fields)+1)
	dest = append(dest, &id)
	for i := range vals {
		dest = append(dest, &vals[i])
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	task := make(map[string]any, len(Fields)+1)
	task["id"] = id
	for i, f := range Fields {
		if vals[i].Valid {
			task[f] = vals[i].String
		} else {
			task[f] = nil
		}
	}
	return task, nil
}

// noneAffected maps a zero-row write to ErrNotFound.
func noneAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
