package database

import (
	"context"
	"testing"

	"Reelrank/models"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, RunMigrations(db))
	return NewStore(db)
}

func insertMovie(t *testing.T, s *Store, title string) *models.Movie {
	t.Helper()

	m, err := s.Insert(context.Background(), &models.Movie{
		Title:       title,
		Year:        "2001-05-01",
		Description: "a test movie",
		ImgURL:      "https://image.tmdb.org/t/p/w500/poster.jpg",
	})
	require.NoError(t, err)
	return m
}

func TestInsertAndGet(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	created := insertMovie(t, s, "Alien")
	require.NotZero(t, created.ID)

	got, err := s.Get(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, "Alien", got.Title)
	require.Equal(t, "2001-05-01", got.Year)
	require.False(t, got.Rating.Valid, "new movies start unrated")
	require.False(t, got.Ranking.Valid, "new movies start unranked")
}

func TestInsertAssignsFreshIDs(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := insertMovie(t, s, "Alien")
	require.NoError(t, s.Delete(ctx, first.ID))

	second := insertMovie(t, s, "Aliens")
	require.Greater(t, second.ID, first.ID, "ids are never reused")
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.Get(context.Background(), 999)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateReviewOnlyTouchesRatingAndReview(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	m := insertMovie(t, s, "Alien")
	require.NoError(t, s.UpdateReview(ctx, m.ID, 8.5, "still holds up"))

	got, err := s.Get(ctx, m.ID)
	require.NoError(t, err)
	require.Equal(t, 8.5, got.Rating.Float64)
	require.Equal(t, "still holds up", got.Review)
	require.Equal(t, m.Title, got.Title)
	require.Equal(t, m.Year, got.Year)
	require.Equal(t, m.Description, got.Description)
	require.Equal(t, m.ImgURL, got.ImgURL)
	require.False(t, got.Ranking.Valid)
}

func TestUpdateAndDeleteNotFound(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.ErrorIs(t, s.UpdateReview(ctx, 42, 5, "ghost"), ErrNotFound)
	require.ErrorIs(t, s.UpdateRanking(ctx, 42, 1), ErrNotFound)
	require.ErrorIs(t, s.Delete(ctx, 42), ErrNotFound)
}

func TestListByRatingOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	zeta := insertMovie(t, s, "Zeta")
	apple := insertMovie(t, s, "Apple")
	low := insertMovie(t, s, "Middling")
	unrated := insertMovie(t, s, "Unseen")

	require.NoError(t, s.UpdateReview(ctx, zeta.ID, 9, "great"))
	require.NoError(t, s.UpdateReview(ctx, apple.ID, 9, "also great"))
	require.NoError(t, s.UpdateReview(ctx, low.ID, 4, "meh"))

	movies, err := s.ListByRating(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 4)

	// Ties break by title ascending; unrated movies sort last.
	require.Equal(t, apple.ID, movies[0].ID)
	require.Equal(t, zeta.ID, movies[1].ID)
	require.Equal(t, low.ID, movies[2].ID)
	require.Equal(t, unrated.ID, movies[3].ID)
}

func TestListByRankingOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := insertMovie(t, s, "First")
	second := insertMovie(t, s, "Second")
	unranked := insertMovie(t, s, "Unranked")

	require.NoError(t, s.UpdateRanking(ctx, first.ID, 1))
	require.NoError(t, s.UpdateRanking(ctx, second.ID, 2))

	movies, err := s.ListByRanking(ctx)
	require.NoError(t, err)
	require.Len(t, movies, 3)

	// Display counts the list down from the highest rank; unranked last.
	require.Equal(t, second.ID, movies[0].ID)
	require.Equal(t, first.ID, movies[1].ID)
	require.Equal(t, unranked.ID, movies[2].ID)
}
