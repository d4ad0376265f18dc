package model

import "time"

// Class is a registry row for a class title the community feed has seen.
// Rows are created lazily on the first post for a title.
type Class struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
