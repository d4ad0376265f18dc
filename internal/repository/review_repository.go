package repository

import (
	"context"
	"errors"

	"github.com/courselens/courselens-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const reviewColumns = `id, is_professor, subject_name, rating, comment, tags,
	difficulty, workload, recommendability,
	engagement, lecture_quality, assignment_quality, created_at`

// ReviewRepository handles review data access.
type ReviewRepository struct {
	pool *pgxpool.Pool
}

// NewReviewRepository creates a new ReviewRepository.
func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// Create inserts a review and fills in its generated id and timestamp.
func (r *ReviewRepository) Create(ctx context.Context, rev *model.Review) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO reviews
		 (is_professor, subject_name, rating, comment, tags,
		  difficulty, workload, recommendability,
		  engagement, lecture_quality, assignment_quality)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING id, created_at`,
		rev.IsProfessor, rev.SubjectName, rev.Rating, rev.Comment, rev.Tags,
		rev.Difficulty, rev.Workload, rev.Recommendability,
		rev.Engagement, rev.LectureQuality, rev.AssignmentQuality,
	).Scan(&rev.ID, &rev.CreatedAt)
}

// GetByID retrieves a review by ID. Absent rows return (nil, nil).
func (r *ReviewRepository) GetByID(ctx context.Context, id int) (*model.Review, error) {
	rev := &model.Review{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id,
	).Scan(
		&rev.ID, &rev.IsProfessor, &rev.SubjectName, &rev.Rating, &rev.Comment, &rev.Tags,
		&rev.Difficulty, &rev.Workload, &rev.Recommendability,
		&rev.Engagement, &rev.LectureQuality, &rev.AssignmentQuality, &rev.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rev, nil
}

// ListBySubject retrieves reviews for a subject name, newest first.
func (r *ReviewRepository) ListBySubject(ctx context.Context, subjectName string) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reviewColumns+` FROM reviews WHERE subject_name = $1 ORDER BY created_at DESC`,
		subjectName)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// List retrieves all reviews, newest first.
func (r *ReviewRepository) List(ctx context.Context) ([]model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ` + reviewColumns + ` FROM reviews ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReviews(rows)
}

// Update applies a partial update: nil fields keep their stored values.
func (r *ReviewRepository) Update(ctx context.Context, id int, rating *int, comment *string, tags []string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE reviews SET
		 rating  = COALESCE($1, rating),
		 comment = COALESCE($2, comment),
		 tags    = COALESCE($3, tags)
		 WHERE id = $4`,
		rating, comment, tags, id)
	return err
}

// Delete removes a review by ID.
func (r *ReviewRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	return err
}

func scanReviews(rows pgx.Rows) ([]model.Review, error) {
	var reviews []model.Review
	for rows.Next() {
		var rev model.Review
		if err := rows.Scan(
			&rev.ID, &rev.IsProfessor, &rev.SubjectName, &rev.Rating, &rev.Comment, &rev.Tags,
			&rev.Difficulty, &rev.Workload, &rev.Recommendability,
			&rev.Engagement, &rev.LectureQuality, &rev.AssignmentQuality, &rev.CreatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}
