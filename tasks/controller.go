package tasks

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/tmjaga/api-task/app"
	gohttp "github.com/tmjaga/api-task/http"
	"github.com/tmjaga/api-task/http/validation"
)

// Controller serves the tasks resource. It satisfies routing.ResourceController:
//
//	r.Resource("/tasks", tasks.NewController(repo))
type Controller struct {
	app.Controller
	repo Repository
}

func NewController(repo Repository) *Controller {
	return &Controller{repo: repo}
}

// Index handles GET /tasks.
func (c *Controller) Index(w http.ResponseWriter, r *http.Request) {
	res := c.Response(w)
	list, err := c.repo.All()
	if err != nil {
		res.ServerError()
		return
	}
	res.Success(list)
}

// Show handles GET /tasks/{id}.
func (c *Controller) Show(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	id, ok := taskID(req)
	if !ok {
		res.NotFound()
		return
	}
	task, err := c.repo.Find(id)
	if errors.Is(err, ErrNotFound) {
		res.NotFound()
		return
	}
	if err != nil {
		res.ServerError()
		return
	}
	res.Success(task)
}

// Store handles POST /tasks: flatten → validate → normalize → persist.
func (c *Controller) Store(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)

	data, err := payload(req)
	if err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	v := validation.Make(data, RuleSet())
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	task := v.Validated()
	fillEndDate(task)

	id, err := c.repo.Create(task)
	if err != nil {
		res.ServerError()
		return
	}
	task["id"] = id
	res.Created(task)
}

// Update handles PUT/PATCH /tasks/{id} with the same validation as Store.
func (c *Controller) Update(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	id, ok := taskID(req)
	if !ok {
		res.NotFound()
		return
	}

	data, err := payload(req)
	if err != nil {
		res.Error(http.StatusBadRequest, err.Error())
		return
	}

	v := validation.Make(data, RuleSet())
	if v.Fails() {
		res.ValidationError(v.Errors())
		return
	}

	task := v.Validated()
	fillEndDate(task)

	switch err := c.repo.Update(id, task); {
	case errors.Is(err, ErrNotFound):
		res.NotFound()
		return
	case err != nil:
		res.ServerError()
		return
	}
	task["id"] = id
	res.Success(task)
}

// Destroy handles DELETE /tasks/{id} (soft delete).
func (c *Controller) Destroy(w http.ResponseWriter, r *http.Request) {
	req, res := c.Request(r), c.Response(w)
	id, ok := taskID(req)
	if !ok {
		res.NotFound()
		return
	}
	switch err := c.repo.Delete(id); {
	case errors.Is(err, ErrNotFound):
		res.NotFound()
		return
	case err != nil:
		res.ServerError()
		return
	}
	res.NoContent()
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func taskID(req *gohttp.Request) (int64, bool) {
	id, err := strconv.ParseInt(req.RouteParam("id"), 10, 64)
	return id, err == nil && id > 0
}

// payload flattens the request body into the field → raw string mapping the
// validator consumes. Every resource field is present in the result, so a
// required rule applies to omitted fields too.
func payload(req *gohttp.Request) (map[string]string, error) {
	var body map[string]any
	if err := req.Bind(&body); err != nil {
		return nil, err
	}
	data := make(map[string]string, len(Fields))
	for _, f := range Fields {
		data[f] = rawString(body[f])
	}
	return data, nil
}

// rawString renders a decoded JSON scalar in the form the validator expects;
// null and absent values become the empty string.
func rawString(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(x)
	default:
		return fmt.Sprintf("%v", x)
	}
}

// fillEndDate computes endDate = startDate + duration × durationUnit when
// the payload omitted endDate but supplied the other three.
func fillEndDate(task map[string]any) {
	if task["endDate"] != nil {
		return
	}
	start, _ := task["startDate"].(string)
	durStr, _ := task["duration"].(string)
	unit, _ := task["durationUnit"].(string)
	if start == "" || durStr == "" || unit == "" {
		return
	}

	n, err := strconv.Atoi(durStr)
	if err != nil {
		return
	}
	from, err := time.Parse(validation.DateTimeLayout, start)
	if err != nil {
		return
	}

	var step time.Duration
	switch unit {
	case "HOURS":
		step = time.Hour
	case "DAYS":
		step = 24 * time.Hour
	case "WEEKS":
		step = 7 * 24 * time.Hour
	default:
		return
	}
	task["endDate"] = from.Add(time.Duration(n) * step).Format(validation.DateTimeLayout)
}
