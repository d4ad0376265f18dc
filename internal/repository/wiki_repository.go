package repository

import (
	"context"
	"errors"

	"github.com/courselens/courselens-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const wikiColumns = `id, class_name, topics_covered, prerequisites, instructors,
	tips, when_to_take, study_resources, created_at, updated_at`

// WikiRepository handles course-wiki data access.
type WikiRepository struct {
	pool *pgxpool.Pool
}

// NewWikiRepository creates a new WikiRepository.
func NewWikiRepository(pool *pgxpool.Pool) *WikiRepository {
	return &WikiRepository{pool: pool}
}

// GetByClassName retrieves the wiki for a class. Absent rows return (nil, nil).
func (r *WikiRepository) GetByClassName(ctx context.Context, className string) (*model.CourseWiki, error) {
	w := &model.CourseWiki{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+wikiColumns+` FROM course_wikis WHERE class_name = $1`, className,
	).Scan(&w.ID, &w.ClassName, &w.TopicsCovered, &w.Prerequisites, &w.Instructors,
		&w.Tips, &w.WhenToTake, &w.StudyResources, &w.CreatedAt, &w.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return w, nil
}

// Upsert writes the merged wiki state for a class. The merge itself happens
// in the service; this persists whatever state it is handed.
func (r *WikiRepository) Upsert(ctx context.Context, w *model.CourseWiki) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO course_wikis
		 (class_name, topics_covered, prerequisites, instructors,
		  tips, when_to_take, study_resources)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (class_name) DO UPDATE SET
		   topics_covered  = EXCLUDED.topics_covered,
		   prerequisites   = EXCLUDED.prerequisites,
		   instructors     = EXCLUDED.instructors,
		   tips            = EXCLUDED.tips,
		   when_to_take    = EXCLUDED.when_to_take,
		   study_resources = EXCLUDED.study_resources,
		   updated_at      = NOW()
		 RETURNING id, created_at, updated_at`,
		w.ClassName, w.TopicsCovered, w.Prerequisites, w.Instructors,
		w.Tips, w.WhenToTake, w.StudyResources,
	).Scan(&w.ID, &w.CreatedAt, &w.UpdatedAt)
}

// List retrieves all course wikis ordered by class name.
func (r *WikiRepository) List(ctx context.Context) ([]model.CourseWiki, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT ` + wikiColumns + ` FROM course_wikis ORDER BY class_name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var wikis []model.CourseWiki
	for rows.Next() {
		var w model.CourseWiki
		if err := rows.Scan(&w.ID, &w.ClassName, &w.TopicsCovered, &w.Prerequisites,
			&w.Instructors, &w.Tips, &w.WhenToTake, &w.StudyResources,
			&w.CreatedAt, &w.UpdatedAt); err != nil {
			return nil, err
		}
		wikis = append(wikis, w)
	}
	return wikis, rows.Err()
}

// Delete removes a class's wiki.
func (r *WikiRepository) Delete(ctx context.Context, className string) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM course_wikis WHERE class_name = $1`, className)
	return err
}
