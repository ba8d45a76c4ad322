package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"Reelrank/models"

	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when an operation targets a movie id that is
// not in the store.
var ErrNotFound = errors.New("movie not found")

// Store holds the movie table. It is passed explicitly to whoever needs
// it rather than living in a package-level variable.
type Store struct {
	db *sqlx.DB
}

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// ListByRanking returns all movies in display order: ranked movies from
// rank 10 down to rank 1, unranked movies after them.
func (s *Store) ListByRanking(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	err := s.db.SelectContext(ctx, &movies, `
		SELECT id, title, year, description, rating, ranking, review, img_url
		FROM movies
		ORDER BY ranking DESC NULLS LAST, title ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

// ListByRating returns all movies in ranking-pass order: best rating
// first, ties broken by title, unrated movies last.
func (s *Store) ListByRating(ctx context.Context) ([]models.Movie, error) {
	var movies []models.Movie
	err := s.db.SelectContext(ctx, &movies, `
		SELECT id, title, year, description, rating, ranking, review, img_url
		FROM movies
		ORDER BY rating DESC NULLS LAST, title ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	return movies, nil
}

func (s *Store) Get(ctx context.Context, id int) (*models.Movie, error) {
	var m models.Movie
	err := s.db.GetContext(ctx, &m, `
		SELECT id, title, year, description, rating, ranking, review, img_url
		FROM movies WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	return &m, nil
}

// Insert persists a new movie and returns it with the assigned id.
// Rating and ranking start NULL; only an edit or the ranking pass sets them.
func (s *Store) Insert(ctx context.Context, m *models.Movie) (*models.Movie, error) {
	err := s.db.QueryRowxContext(ctx, `
		INSERT INTO movies (title, year, description, review, img_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		m.Title, m.Year, m.Description, m.Review, m.ImgURL).Scan(&m.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert movie: %w", err)
	}
	return m, nil
}

// UpdateReview sets the user-facing rating and review. No other field
// is touched.
func (s *Store) UpdateReview(ctx context.Context, id int, rating float64, review string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE movies SET rating = $1, review = $2 WHERE id = $3`,
		rating, review, id)
	if err != nil {
		return fmt.Errorf("failed to update movie %d: %w", id, err)
	}
	return checkFound(res, id)
}

// UpdateRanking assigns a position in the top-10 list.
func (s *Store) UpdateRanking(ctx context.Context, id, ranking int) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE movies SET ranking = $1 WHERE id = $2`,
		ranking, id)
	if err != nil {
		return fmt.Errorf("failed to rank movie %d: %w", id, err)
	}
	return checkFound(res, id)
}

func (s *Store) Delete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM movies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete movie %d: %w", id, err)
	}
	return checkFound(res, id)
}

func checkFound(res sql.Result, id int) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for movie %d: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("movie %d: %w", id, ErrNotFound)
	}
	return nil
}
