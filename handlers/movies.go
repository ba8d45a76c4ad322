package handlers

import (
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"Reelrank/models"
	"Reelrank/services"

	"github.com/go-chi/chi/v5"
)

type homePageData struct {
	Flashes []string
	Movies  []models.Movie
}

// Home lists the ranked movies. When the movie_id query parameter is
// present (its value is irrelevant) it instead runs the ranking pass
// and redirects back without the parameter, so a refresh stays a pure
// read.
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("movie_id") {
		if err := services.RunRankingPass(r.Context(), h.store); err != nil {
			slog.Error("Ranking pass failed", "error", err)
			h.renderError(w, http.StatusInternalServerError, "Re-ranking failed partway; refresh to finish it.")
			return
		}
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	movies, err := h.store.ListByRanking(r.Context())
	if err != nil {
		h.storeError(w, err)
		return
	}

	h.render(w, "index.html", http.StatusOK, homePageData{
		Flashes: h.sessions.Flashes(w, r),
		Movies:  movies,
	})
}

type editForm struct {
	Rating string `validate:"required"`
	Review string `validate:"required,max=400"`
}

type editPageData struct {
	Flashes []string
	Movie   *models.Movie
	Form    editForm
	Errors  map[string]string
}

// Edit shows and accepts the rating/review form. Only those two fields
// are ever written; success redirects home with the movie_id parameter
// so a ranking pass follows every edit.
func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "movieID"))
	if err != nil {
		h.renderError(w, http.StatusNotFound, "That movie is not in your list.")
		return
	}

	movie, err := h.store.Get(r.Context(), id)
	if err != nil {
		h.storeError(w, err)
		return
	}

	form := editForm{Review: movie.Review}
	if movie.Rated() {
		form.Rating = strconv.FormatFloat(movie.Rating.Float64, 'f', -1, 64)
	}

	if r.Method == http.MethodGet {
		h.render(w, "edit.html", http.StatusOK, editPageData{
			Flashes: h.sessions.Flashes(w, r),
			Movie:   movie,
			Form:    form,
		})
		return
	}

	form.Rating = r.PostFormValue("rating")
	form.Review = r.PostFormValue("review")

	formErrors := make(map[string]string)
	if err := h.validate.Struct(form); err != nil {
		formErrors = fieldErrors(err)
	}

	rating, err := strconv.ParseFloat(form.Rating, 64)
	if formErrors["Rating"] == "" && (err != nil || math.IsNaN(rating) || math.IsInf(rating, 0)) {
		formErrors["Rating"] = "Rating must be a number."
	}

	if len(formErrors) > 0 {
		h.render(w, "edit.html", http.StatusUnprocessableEntity, editPageData{
			Movie:  movie,
			Form:   form,
			Errors: formErrors,
		})
		return
	}

	if err := h.store.UpdateReview(r.Context(), id, rating, form.Review); err != nil {
		h.storeError(w, err)
		return
	}

	http.Redirect(w, r, "/?movie_id="+strconv.Itoa(id), http.StatusSeeOther)
}

// Delete removes a movie and redirects home with the movie_id parameter
// so the list re-ranks without the deleted entry.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		h.renderError(w, http.StatusNotFound, "That movie is not in your list.")
		return
	}

	if err := h.store.Delete(r.Context(), id); err != nil {
		h.storeError(w, err)
		return
	}

	http.Redirect(w, r, "/?movie_id="+strconv.Itoa(id), http.StatusSeeOther)
}
