package models

import (
	"time"
)

// Vote records that a user cast a vote for a post. The row has its own
// surrogate key and no uniqueness over (user_id, post_id): a user may vote
// for the same post more than once. Rows are append-only.
type Vote struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	PostID    uint      `gorm:"index;not null" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
