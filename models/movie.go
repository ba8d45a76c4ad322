package models

import "database/sql"

// Movie is the sole persisted entity: one row per tracked movie.
// Rating and Ranking stay NULL until the user rates the movie and the
// ranking pass places it; Year holds the release-date string exactly as
// the remote catalog returned it.
type Movie struct {
	ID          int             `db:"id" json:"id"`
	Title       string          `db:"title" json:"title"`
	Year        string          `db:"year" json:"year"`
	Description string          `db:"description" json:"description"`
	Rating      sql.NullFloat64 `db:"rating" json:"rating"`
	Ranking     sql.NullInt64   `db:"ranking" json:"ranking"`
	Review      string          `db:"review" json:"review"`
	ImgURL      string          `db:"img_url" json:"img_url"`
}

// Rated reports whether the user has rated this movie yet.
func (m Movie) Rated() bool {
	return m.Rating.Valid
}
