package handlers

import (
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/mux"

	"github.com/month-planner/backend/internal/form"
	"github.com/month-planner/backend/internal/store"
	"github.com/month-planner/backend/internal/view"
	"github.com/month-planner/backend/internal/web"
)

// MonthPage renders the month grid for ?month=YYYY-MM (default: the current
// month). ?new=YYYY-MM-DD mounts the create form in the modal container;
// ?edit=<id> mounts the edit form. Without either, the container is empty.
func MonthPage(s *store.Store, renderer *web.Renderer, weekStart time.Weekday) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()

		visible := now
		if m := r.URL.Query().Get("month"); m != "" {
			if parsed, err := time.ParseInLocation("2006-01", m, time.Local); err == nil {
				visible = parsed
			}
		}

		page := web.Page{Month: view.BuildMonth(visible, now, weekStart, s.List())}

		q := r.URL.Query()
		if d := q.Get("new"); d != "" {
			if date, err := time.ParseInLocation("2006-01-02", d, time.Local); err == nil {
				page.Modal = web.CreateModal(date, page.Month.Value)
			}
		} else if id := q.Get("edit"); id != "" {
			if evt, ok := s.Get(id); ok {
				page.Modal = web.EditModal(evt, page.Month.Value)
			}
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := renderer.MonthPage(w, page); err != nil {
			log.Printf("Failed to render month page: %v", err)
		}
	}
}

// SubmitCreate handles the HTML create form. An invalid submission redirects
// back to the open form so nothing is stored; a valid one stores the event
// and closes the modal by redirecting to the plain month URL.
func SubmitCreate(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		month := r.PostForm.Get("month")
		date, err := time.ParseInLocation("2006-01-02", r.PostForm.Get("date"), time.Local)
		if err != nil {
			http.Redirect(w, r, monthURL(month), http.StatusSeeOther)
			return
		}

		draft, err := form.FromValues(r.PostForm).Draft(date)
		if err != nil {
			http.Redirect(w, r, monthURL(month)+"&new="+date.Format("2006-01-02"), http.StatusSeeOther)
			return
		}

		if _, err := s.Add(draft); err != nil {
			log.Printf("Failed to add event: %v", err)
		}
		http.Redirect(w, r, monthURL(month), http.StatusSeeOther)
	}
}

// SubmitEdit handles the HTML edit form. The event keeps its original date;
// edit mode only rebinds the remaining fields.
func SubmitEdit(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		month := r.PostForm.Get("month")

		evt, ok := s.Get(id)
		if !ok {
			http.Redirect(w, r, monthURL(month), http.StatusSeeOther)
			return
		}

		draft, err := form.FromValues(r.PostForm).Draft(evt.Date)
		if err != nil {
			http.Redirect(w, r, monthURL(month)+"&edit="+url.QueryEscape(id), http.StatusSeeOther)
			return
		}

		if err := s.Edit(id, draft); err != nil {
			log.Printf("Failed to edit event %s: %v", id, err)
		}
		http.Redirect(w, r, monthURL(month), http.StatusSeeOther)
	}
}

// SubmitDelete handles the delete button of the HTML edit form.
func SubmitDelete(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		if err := r.ParseForm(); err != nil {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}

		if err := s.Delete(id); err != nil {
			log.Printf("Failed to delete event %s: %v", id, err)
		}
		http.Redirect(w, r, monthURL(r.PostForm.Get("month")), http.StatusSeeOther)
	}
}

func monthURL(month string) string {
	if month == "" {
		return "/?month=" + time.Now().Format("2006-01")
	}
	return "/?month=" + url.QueryEscape(month)
}
