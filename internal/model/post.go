package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post is a user-authored post. Author name and avatar are denormalized
// snapshots captured at creation time, not live-joined.
type Post struct {
	ID     uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID uuid.UUID `json:"user" gorm:"type:char(36);index;not null"`
	Name   string    `json:"name" gorm:"size:255;not null"`
	Avatar string    `json:"avatar" gorm:"size:512"`
	Text   string    `json:"text" gorm:"type:text;not null"`

	Likes    []Like    `json:"likes" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"comments" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}

// Like marks that one user liked one post. The composite primary key is the
// storage-level uniqueness guarantee: a second like by the same user is a
// duplicate-key error, not a lost update.
type Like struct {
	PostID    uuid.UUID `json:"-" gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);primaryKey"`
	CreatedAt time.Time `json:"-"`
}

// Comment is a sub-entry on a post with its own stable id and an author
// snapshot taken when the comment was written.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	PostID    uuid.UUID `json:"-" gorm:"type:char(36);index;not null"`
	UserID    uuid.UUID `json:"user" gorm:"type:char(36);index;not null"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Avatar    string    `json:"avatar" gorm:"size:512"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"date"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeCreate sets UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
