package repository

import (
	"context"
	"errors"

	"github.com/courselens/courselens-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ClassRepository maintains the registry of class titles the community feed
// has seen.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

// Ensure registers a class title if it is not already known.
func (r *ClassRepository) Ensure(ctx context.Context, title string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO classes (title) VALUES ($1) ON CONFLICT (title) DO NOTHING`, title)
	return err
}

// GetByTitle retrieves a class by title. Absent rows return (nil, nil).
func (r *ClassRepository) GetByTitle(ctx context.Context, title string) (*model.Class, error) {
	c := &model.Class{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, created_at FROM classes WHERE title = $1`, title,
	).Scan(&c.ID, &c.Title, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

// List retrieves all registered class titles.
func (r *ClassRepository) List(ctx context.Context) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, created_at FROM classes ORDER BY title ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		var c model.Class
		if err := rows.Scan(&c.ID, &c.Title, &c.CreatedAt); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}
