// Package web renders the server-side calendar UI from embedded templates.
package web

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"time"

	"github.com/month-planner/backend/internal/event"
	"github.com/month-planner/backend/internal/view"
)

//go:embed templates/*.html static/*
var assets embed.FS

// Page is the full render model for the month page.
type Page struct {
	Month view.Month
	Modal *Modal
}

// Modal is the render model for the event form overlay. A nil Modal leaves
// the modal mount point empty.
type Modal struct {
	Title        string
	Date         string // "2006-01-02", carried through as a hidden field
	DateLabel    string // "01/02/06", shown in the modal title
	Month        string // visible month value, for redirects
	Name         string
	AllDay       bool
	StartTime    string
	EndTime      string
	Colors       []event.Color
	Selected     event.Color
	SubmitLabel  string
	Action       string
	DeleteAction string // empty in create mode
	CloseURL     string
}

// CreateModal builds the form model for adding an event on date.
func CreateModal(date time.Time, monthValue string) *Modal {
	return &Modal{
		Title:       "Add Event",
		Date:        date.Format("2006-01-02"),
		DateLabel:   date.Format("01/02/06"),
		Month:       monthValue,
		Colors:      event.Palette(),
		Selected:    event.Palette()[0],
		SubmitLabel: "Add",
		Action:      "/events",
		CloseURL:    "/?month=" + monthValue,
	}
}

// EditModal builds the form model for editing an existing event.
func EditModal(evt event.Event, monthValue string) *Modal {
	return &Modal{
		Title:        "Edit Event",
		Date:         evt.Date.Format("2006-01-02"),
		DateLabel:    evt.Date.Format("01/02/06"),
		Month:        monthValue,
		Name:         evt.Name,
		AllDay:       evt.IsAllDay(),
		StartTime:    string(evt.Start()),
		EndTime:      string(evt.End()),
		Colors:       event.Palette(),
		Selected:     evt.Color,
		SubmitLabel:  "Edit",
		Action:       "/events/" + evt.ID,
		DeleteAction: "/events/" + evt.ID + "/delete",
		CloseURL:     "/?month=" + monthValue,
	}
}

// Renderer executes the embedded page templates.
type Renderer struct {
	tmpl *template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(assets, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// MonthPage writes the rendered month page.
func (r *Renderer) MonthPage(w io.Writer, page Page) error {
	return r.tmpl.ExecuteTemplate(w, "calendar.html", page)
}

// StaticHandler serves the embedded stylesheet and script under /static/.
func StaticHandler() http.Handler {
	sub, err := fs.Sub(assets, "static")
	if err != nil {
		return http.NotFoundHandler()
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
