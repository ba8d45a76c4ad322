package handlers

import (
	"context"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"Reelrank/database"
	"Reelrank/services"
	"Reelrank/templates"

	"github.com/go-playground/validator/v10"
)

// MetadataClient is the slice of the remote catalog the handlers need.
type MetadataClient interface {
	SearchMovies(ctx context.Context, title string) ([]services.SearchResult, error)
	MovieDetails(ctx context.Context, remoteID int) (*services.MovieDetails, error)
}

// Handler carries the dependencies of every route: the movie store, the
// remote catalog client and the session manager are injected rather
// than reached through package globals.
type Handler struct {
	store    *database.Store
	metadata MetadataClient
	sessions *services.SessionManager
	validate *validator.Validate
	pages    map[string]*template.Template
}

func New(store *database.Store, metadata MetadataClient, sessions *services.SessionManager) *Handler {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"index.html", "add.html", "select.html", "edit.html", "error.html"} {
		pages[name] = template.Must(template.ParseFS(templates.FS, "base.html", name))
	}

	return &Handler{
		store:    store,
		metadata: metadata,
		sessions: sessions,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		pages:    pages,
	}
}

func (h *Handler) render(w http.ResponseWriter, page string, status int, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := h.pages[page].ExecuteTemplate(w, "base", data); err != nil {
		slog.Error("Error rendering template", "page", page, "error", err)
	}
}

type errorPageData struct {
	Flashes []string
	Message string
}

func (h *Handler) renderError(w http.ResponseWriter, status int, msg string) {
	h.render(w, "error.html", status, errorPageData{Message: msg})
}

// storeError maps persistence failures onto responses: a missing id is
// the user's 404, anything else is fatal to the request.
func (h *Handler) storeError(w http.ResponseWriter, err error) {
	if errors.Is(err, database.ErrNotFound) {
		h.renderError(w, http.StatusNotFound, "That movie is not in your list.")
		return
	}
	slog.Error("Store error", "error", err)
	h.renderError(w, http.StatusInternalServerError, "The movie store failed. Try again.")
}

// fieldErrors flattens validator output into per-field messages for the
// form templates.
func fieldErrors(err error) map[string]string {
	msgs := make(map[string]string)
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return msgs
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			msgs[fe.Field()] = fe.Field() + " is required."
		case "max":
			msgs[fe.Field()] = fe.Field() + " must be at most " + fe.Param() + " characters."
		default:
			msgs[fe.Field()] = fe.Field() + " is invalid."
		}
	}
	return msgs
}
