// Package api provides HTTP routing for the calendar UI and the REST API.
package api

import (
	"time"

	"github.com/gorilla/mux"

	"github.com/month-planner/backend/internal/api/handlers"
	"github.com/month-planner/backend/internal/api/middleware"
	"github.com/month-planner/backend/internal/storage"
	"github.com/month-planner/backend/internal/store"
	"github.com/month-planner/backend/internal/web"
	"github.com/month-planner/backend/internal/websocket"
)

// Deps bundles everything the routes need.
type Deps struct {
	DB        *storage.DB
	Store     *store.Store
	Hub       *websocket.Hub
	Renderer  *web.Renderer
	WeekStart time.Weekday
}

// NewRouter creates and configures the HTTP router.
func NewRouter(deps Deps) *mux.Router {
	r := mux.NewRouter()

	r.Use(middleware.Logging)
	r.Use(middleware.ErrorRecovery)

	// JSON API.
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", handlers.HealthCheck(deps.DB, deps.Store)).Methods("GET")
	api.HandleFunc("/ws", handlers.WebSocketUpgrade(deps.Hub)).Methods("GET")
	api.HandleFunc("/events", handlers.ListEvents(deps.Store)).Methods("GET")
	api.HandleFunc("/events", handlers.CreateEvent(deps.Store)).Methods("POST")
	api.HandleFunc("/events/{id}", handlers.GetEvent(deps.Store)).Methods("GET")
	api.HandleFunc("/events/{id}", handlers.UpdateEvent(deps.Store)).Methods("PUT")
	api.HandleFunc("/events/{id}", handlers.DeleteEvent(deps.Store)).Methods("DELETE")
	api.HandleFunc("/export.ics", handlers.ExportICS(deps.Store)).Methods("GET")

	// Server-rendered calendar pages and their form endpoints.
	r.HandleFunc("/", handlers.MonthPage(deps.Store, deps.Renderer, deps.WeekStart)).Methods("GET")
	r.HandleFunc("/events", handlers.SubmitCreate(deps.Store)).Methods("POST")
	r.HandleFunc("/events/{id}", handlers.SubmitEdit(deps.Store)).Methods("POST")
	r.HandleFunc("/events/{id}/delete", handlers.SubmitDelete(deps.Store)).Methods("POST")

	// Embedded stylesheet and script.
	r.PathPrefix("/static/").Handler(web.StaticHandler())

	return r
}
