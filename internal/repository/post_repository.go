package repository

import (
	"context"
	"errors"

	"github.com/courselens/courselens-backend/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostRepository handles community-feed post and reply data access.
type PostRepository struct {
	pool *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository.
func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

// Create inserts a post and fills in its generated id and timestamp.
func (r *PostRepository) Create(ctx context.Context, p *model.Post) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO posts
		 (class_name, type, title, content, event_date, event_location,
		  author_username, author_avatar)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at`,
		p.ClassName, p.Type, p.Title, p.Content, p.EventDate, p.EventLocation,
		p.AuthorUsername, p.AuthorAvatar,
	).Scan(&p.ID, &p.CreatedAt)
}

// GetByID retrieves one post with its replies. Absent rows return (nil, nil).
func (r *PostRepository) GetByID(ctx context.Context, id int) (*model.Post, error) {
	p := &model.Post{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, class_name, type, title, content, event_date, event_location,
		        author_username, author_avatar, created_at
		 FROM posts WHERE id = $1`, id,
	).Scan(&p.ID, &p.ClassName, &p.Type, &p.Title, &p.Content, &p.EventDate, &p.EventLocation,
		&p.AuthorUsername, &p.AuthorAvatar, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	replies, err := r.repliesForPosts(ctx, []int{p.ID})
	if err != nil {
		return nil, err
	}
	p.Replies = replies[p.ID]
	if p.Replies == nil {
		p.Replies = []model.Reply{}
	}
	return p, nil
}

// ListByClass retrieves a class's posts with replies, newest post first.
func (r *PostRepository) ListByClass(ctx context.Context, className string) ([]model.Post, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, class_name, type, title, content, event_date, event_location,
		        author_username, author_avatar, created_at
		 FROM posts WHERE class_name = $1 ORDER BY created_at DESC`, className)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectPosts(ctx, rows)
}

// List retrieves all posts with replies, newest first.
func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, class_name, type, title, content, event_date, event_location,
		        author_username, author_avatar, created_at
		 FROM posts ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return r.collectPosts(ctx, rows)
}

// Update applies a partial update: nil fields keep their stored values.
func (r *PostRepository) Update(ctx context.Context, id int, title, content *string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE posts SET
		 title   = COALESCE($1, title),
		 content = COALESCE($2, content)
		 WHERE id = $3`,
		title, content, id)
	return err
}

// Delete removes a post; replies go with it via the FK cascade.
func (r *PostRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	return err
}

// CreateReply inserts a reply and fills in its generated id and timestamp.
func (r *PostRepository) CreateReply(ctx context.Context, reply *model.Reply) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO replies (post_id, content, author_username, author_avatar)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		reply.PostID, reply.Content, reply.AuthorUsername, reply.AuthorAvatar,
	).Scan(&reply.ID, &reply.CreatedAt)
}

// DeleteReply removes a single reply.
func (r *PostRepository) DeleteReply(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM replies WHERE id = $1`, id)
	return err
}

func (r *PostRepository) collectPosts(ctx context.Context, rows pgx.Rows) ([]model.Post, error) {
	var posts []model.Post
	var ids []int
	for rows.Next() {
		var p model.Post
		if err := rows.Scan(&p.ID, &p.ClassName, &p.Type, &p.Title, &p.Content,
			&p.EventDate, &p.EventLocation, &p.AuthorUsername, &p.AuthorAvatar, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Replies = []model.Reply{}
		posts = append(posts, p)
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return posts, nil
	}

	replies, err := r.repliesForPosts(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range posts {
		if rs := replies[posts[i].ID]; rs != nil {
			posts[i].Replies = rs
		}
	}
	return posts, nil
}

// repliesForPosts loads replies for a set of posts, oldest first so threads
// read top-down.
func (r *PostRepository) repliesForPosts(ctx context.Context, postIDs []int) (map[int][]model.Reply, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, post_id, content, author_username, author_avatar, created_at
		 FROM replies WHERE post_id = ANY($1) ORDER BY created_at ASC`, postIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byPost := make(map[int][]model.Reply)
	for rows.Next() {
		var rep model.Reply
		if err := rows.Scan(&rep.ID, &rep.PostID, &rep.Content,
			&rep.AuthorUsername, &rep.AuthorAvatar, &rep.CreatedAt); err != nil {
			return nil, err
		}
		byPost[rep.PostID] = append(byPost[rep.PostID], rep)
	}
	return byPost, rows.Err()
}
