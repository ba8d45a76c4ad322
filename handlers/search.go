package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"Reelrank/models"
	"Reelrank/services"
)

type addForm struct {
	Title string `validate:"required,max=400"`
}

type addPageData struct {
	Flashes []string
	Form    addForm
	Errors  map[string]string
}

type selectPageData struct {
	Flashes []string
	Query   string
	Results []services.SearchResult
}

// Add is step one of the add flow: take a title, search the remote
// catalog, and show the candidates. Nothing is persisted here.
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		h.render(w, "add.html", http.StatusOK, addPageData{
			Flashes: h.sessions.Flashes(w, r),
		})
		return
	}

	form := addForm{Title: r.PostFormValue("title")}
	if err := h.validate.Struct(form); err != nil {
		h.render(w, "add.html", http.StatusUnprocessableEntity, addPageData{
			Form:   form,
			Errors: fieldErrors(err),
		})
		return
	}

	results, err := h.metadata.SearchMovies(r.Context(), form.Title)
	if err != nil {
		h.remoteError(w, err)
		return
	}

	h.render(w, "select.html", http.StatusOK, selectPageData{
		Query:   form.Title,
		Results: results,
	})
}

// Details is step two: resolve the chosen catalog id into a full record
// and persist it with rating and ranking unset, then hand off to the
// edit form for the new movie.
func (h *Handler) Details(w http.ResponseWriter, r *http.Request) {
	remoteID, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		h.renderError(w, http.StatusBadRequest, "Missing or invalid catalog id.")
		return
	}

	details, err := h.metadata.MovieDetails(r.Context(), remoteID)
	if err != nil {
		h.remoteError(w, err)
		return
	}

	movie, err := h.store.Insert(r.Context(), &models.Movie{
		Title:       details.Title,
		Year:        details.ReleaseDate,
		Description: details.Overview,
		ImgURL:      details.ImageURL(),
	})
	if err != nil {
		h.storeError(w, err)
		return
	}

	h.sessions.Flash(w, r, "Added \""+movie.Title+"\" — rate it to get it on the list.")
	http.Redirect(w, r, "/edit/"+strconv.Itoa(movie.ID), http.StatusSeeOther)
}

func (h *Handler) remoteError(w http.ResponseWriter, err error) {
	if errors.Is(err, services.ErrRemoteUnavailable) {
		slog.Warn("Remote catalog unavailable", "error", err)
		h.renderError(w, http.StatusBadGateway, "The movie catalog is unreachable right now. Try again in a minute.")
		return
	}
	slog.Error("Remote catalog error", "error", err)
	h.renderError(w, http.StatusInternalServerError, "Looking up the movie catalog failed.")
}
