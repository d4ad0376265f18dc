package repository

import (
	"context"

	"github.com/courselens/courselens-backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository handles per-class chat message data access.
type ChatRepository struct {
	pool *pgxpool.Pool
}

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

// Create inserts a chat message and fills in its generated id and timestamp.
func (r *ChatRepository) Create(ctx context.Context, m *model.ChatMessage) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO chat_messages (class_name, content, author_username, author_avatar)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		m.ClassName, m.Content, m.AuthorUsername, m.AuthorAvatar,
	).Scan(&m.ID, &m.CreatedAt)
}

// ListByClass retrieves the most recent messages for a class, oldest first
// so the transcript reads top-down.
func (r *ChatRepository) ListByClass(ctx context.Context, className string, limit int) ([]model.ChatMessage, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, class_name, content, author_username, author_avatar, created_at
		 FROM (
		   SELECT id, class_name, content, author_username, author_avatar, created_at
		   FROM chat_messages WHERE class_name = $1
		   ORDER BY created_at DESC LIMIT $2
		 ) recent
		 ORDER BY created_at ASC`, className, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []model.ChatMessage
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.ClassName, &m.Content,
			&m.AuthorUsername, &m.AuthorAvatar, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// Delete removes a chat message.
func (r *ChatRepository) Delete(ctx context.Context, id int) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM chat_messages WHERE id = $1`, id)
	return err
}
