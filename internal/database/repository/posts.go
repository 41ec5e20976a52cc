package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jask/blogview/internal/post"
)

// ErrNotFound is returned when a row does not exist.
var ErrNotFound = errors.New("not found")

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// PostRepo handles posts.
type PostRepo struct {
	db DBTX
}

func NewPostRepo(db DBTX) *PostRepo {
	return &PostRepo{db: db}
}

// Upsert inserts or replaces p, placing it at position order in listings.
func (r *PostRepo) Upsert(ctx context.Context, p post.Post, order int) error {
	_, err := r.db.ExecContext(ctx, `
	INSERT INTO posts(id, title, summary, content, image_url, author, date, sort_order)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
	 title=excluded.title,
	 summary=excluded.summary,
	 content=excluded.content,
	 image_url=excluded.image_url,
	 author=excluded.author,
	 date=excluded.date,
	 sort_order=excluded.sort_order;
	`, p.ID, p.Title, p.Summary, p.Content, p.ImageURL, p.Author, p.Date, order)
	return err
}

func (r *PostRepo) List(ctx context.Context) ([]post.Post, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, title, summary, content, image_url, author, date
	FROM posts ORDER BY sort_order, created_at, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Summary, &p.Content, &p.ImageURL, &p.Author, &p.Date); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostRepo) Get(ctx context.Context, id string) (post.Post, error) {
	row := r.db.QueryRowContext(ctx, `
	SELECT id, title, summary, content, image_url, author, date
	FROM posts WHERE id = ?`, id)
	var p post.Post
	if err := row.Scan(&p.ID, &p.Title, &p.Summary, &p.Content, &p.ImageURL, &p.Author, &p.Date); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return post.Post{}, ErrNotFound
		}
		return post.Post{}, err
	}
	return p, nil
}

func (r *PostRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&n)
	return n, err
}

// NextOrder returns the sort position after the last stored post.
func (r *PostRepo) NextOrder(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(sort_order) + 1, 0) FROM posts`).Scan(&n)
	return n, err
}

func (r *PostRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
