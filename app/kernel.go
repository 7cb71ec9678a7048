package app

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/tmjaga/api-task/config"
	"github.com/tmjaga/api-task/database"
	gohttp "github.com/tmjaga/api-task/http"
	"github.com/tmjaga/api-task/routing"
)

// Application is the top-level container — mirrors Laravel's Application.
type Application struct {
	Config *config.Config
	Router *routing.Router
}

// New bootstraps the application.
//
//	app := app.New()
//	app.Router.Get("/", handler)
//	app.Run()
func New(envFiles ...string) *Application {
	return &Application{
		Config: config.Load(envFiles...),
		Router: routing.New(),
	}
}

// ConnectDB opens the MySQL pool declared in the configuration.
func (a *Application) ConnectDB() (*sql.DB, error) {
	return database.Connect(a.Config.DB.DSN())
}

// Run starts the HTTP server on APP_PORT (default 8000).
func (a *Application) Run() {
	addr := ":" + a.Config.App.Port
	fmt.Printf("🚀  %s running on http://localhost%s  [%s]\n",
		a.Config.App.Name, addr, a.Config.App.Env)

	if err := http.ListenAndServe(addr, a.Router); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// ── Controller base ───────────────────────────────────────────────────────────

// Controller is an embeddable base for all controllers,
// providing Req/Res factory methods.
type Controller struct{}

func (c *Controller) Request(r *http.Request) *gohttp.Request {
	return gohttp.NewRequest(r)
}

func (c *Controller) Response(w http.ResponseWriter) *gohttp.Response {
	return gohttp.NewResponse(w)
}
