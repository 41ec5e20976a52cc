package database

import (
	"context"
	"database/sql"

	"github.com/jask/blogview/internal/database/repository"
	"github.com/jask/blogview/internal/post"
)

// SeedDefaults stores the built-in catalogue when the store has no posts yet.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	n, err := repository.NewPostRepo(db).Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return SeedPosts(ctx, db, post.Catalog())
}

// SeedPosts upserts posts in one transaction, ordered as given.
func SeedPosts(ctx context.Context, db *sql.DB, posts []post.Post) error {
	return WithTx(ctx, db, func(tx *sql.Tx) error {
		repo := repository.NewPostRepo(tx)
		for i, p := range posts {
			if err := repo.Upsert(ctx, p, i); err != nil {
				return err
			}
		}
		return nil
	})
}
