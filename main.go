package main

import (
	"log"
	"net/http"

	"github.com/tmjaga/api-task/app"
	gohttp "github.com/tmjaga/api-task/http"
	"github.com/tmjaga/api-task/routing"
	"github.com/tmjaga/api-task/tasks"
)

func main() {
	application := app.New() // loads .env automatically

	db, err := application.ConnectDB()
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	r := application.Router

	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		res := gohttp.NewResponse(w)
		res.Success(map[string]any{"message": "api-task up"})
	})

	r.Prefix("/api/v1", func(api *routing.Router) {
		api.Resource("/tasks", tasks.NewController(tasks.NewMySQLRepository(db)))
	})

	application.Run()
}
