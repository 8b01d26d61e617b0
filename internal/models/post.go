package models

import (
	"time"
)

// Post is a submitted link. VoteCount is not a column: reads fill it with a
// correlated COUNT over the votes table so the tally always reflects the
// vote table at query time.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	PostURL   string    `gorm:"column:post_url;not null" json:"post_url"`
	UserID    uint      `gorm:"index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	VoteCount int64 `gorm:"->;-:migration" json:"vote_count"`
}
