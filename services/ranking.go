package services

import (
	"context"
	"fmt"
	"log/slog"

	"Reelrank/database"
)

// TopListSize is how many movies survive a ranking pass.
const TopListSize = 10

// RunRankingPass re-ranks the whole store: movies are ordered by rating
// (best first, ties broken by title, unrated last), the first ten get
// ranking 1..10, and everything below position ten is deleted outright.
//
// Each update and delete commits on its own. A store failure mid-walk
// aborts the pass and leaves the earlier assignments in place; the next
// trigger redoes the walk from scratch, so the list self-heals.
func RunRankingPass(ctx context.Context, store *database.Store) error {
	movies, err := store.ListByRating(ctx)
	if err != nil {
		return fmt.Errorf("ranking pass: %w", err)
	}

	for i, m := range movies {
		if i < TopListSize {
			if err := store.UpdateRanking(ctx, m.ID, i+1); err != nil {
				return fmt.Errorf("ranking pass: %w", err)
			}
			continue
		}
		if err := store.Delete(ctx, m.ID); err != nil {
			return fmt.Errorf("ranking pass: %w", err)
		}
		slog.Debug("pruned movie below top list", "id", m.ID, "title", m.Title)
	}

	return nil
}
