package models

import (
	"time"
)

// User is an identity record. Password always holds a bcrypt hash once the
// record has been persisted; the write path hashes before every create and
// every update that touches the field.
//
// The hash is serialized on create/update responses (legacy contract) but
// list/get queries omit the column, so the empty value drops out of the JSON.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"password,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Posts      []Post `gorm:"foreignKey:UserID" json:"posts,omitempty"`
	VotedPosts []Post `gorm:"many2many:votes;joinForeignKey:UserID;joinReferences:PostID" json:"voted_posts,omitempty"`
}
