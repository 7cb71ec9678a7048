// Package http provides Laravel-style request and response helpers for the
// JSON API.
//
// # Request
//
// Request wraps *http.Request with a fluent API mirroring Laravel's
// Illuminate\Http\Request.
//
//	req := gohttp.NewRequest(r)
//
//	// Bind JSON / form body into a struct or map
//	var payload map[string]any
//	if err := req.Bind(&payload); err != nil { ... }
//
//	// Input retrieval (query string + POST body)
//	name := req.Input("name", "default")
//	page := req.Query("page", "1")
//	all  := req.All()          // map[string]string
//	ok   := req.Has("name")
//
//	// Route params (requires Chi router)
//	id := req.RouteParam("id")
//
//	// Type checks
//	req.IsJSON()
//	req.Method()
//	req.Path()
//	req.IP()
//
// # Response
//
// Response wraps http.ResponseWriter with helpers matching Laravel's
// response() helper and JsonResponse.
//
//	res := gohttp.NewResponse(w)
//
//	res.JSON(200, data)           // raw JSON with status
//	res.Success(data)             // 200 {"data": ...}
//	res.Created(data)             // 201 {"data": ...}
//	res.NoContent()               // 204
//
//	res.Error(400, "bad input")   // {"message": "bad input"}
//	res.NotFound()                // 404 {"message": "Not found."}
//	res.ServerError()             // 500 {"message": "Server Error."}
//	res.ValidationError(report)   // 422 {"message": "...", "errors": {"field": "msg"}}
package http
