package model

import "time"

// PostType distinguishes community-feed post kinds.
type PostType string

const (
	PostTypeEvent      PostType = "event"
	PostTypeDiscussion PostType = "discussion"
)

// Post is one community-feed entry for a class.
//
// Author username and avatar are denormalized at creation time and are not
// kept in sync with later profile changes.
type Post struct {
	ID             int       `json:"id"`
	ClassName      string    `json:"class_name"`
	Type           PostType  `json:"type"`
	Title          string    `json:"title"`
	Content        string    `json:"content"`
	EventDate      *string   `json:"event_date,omitempty"`
	EventLocation  *string   `json:"event_location,omitempty"`
	AuthorUsername string    `json:"author_username"`
	AuthorAvatar   string    `json:"author_avatar"`
	CreatedAt      time.Time `json:"created_at"`
	Replies        []Reply   `json:"replies"`
}

// Reply belongs to exactly one post.
type Reply struct {
	ID             int       `json:"id"`
	PostID         int       `json:"post_id"`
	Content        string    `json:"content"`
	AuthorUsername string    `json:"author_username"`
	AuthorAvatar   string    `json:"author_avatar"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreatePostRequest is the payload for posting to a class feed.
type CreatePostRequest struct {
	ClassName     string  `json:"class_name" binding:"required,min=2,max=200"`
	Type          string  `json:"type" binding:"required,oneof=event discussion"`
	Title         string  `json:"title" binding:"required,min=1,max=300"`
	Content       string  `json:"content" binding:"required,min=1,max=10000"`
	EventDate     *string `json:"event_date" binding:"omitempty,max=100"`
	EventLocation *string `json:"event_location" binding:"omitempty,max=300"`
}

// CreateReplyRequest is the payload for replying to a post.
type CreateReplyRequest struct {
	Content string `json:"content" binding:"required,min=1,max=10000"`
}
