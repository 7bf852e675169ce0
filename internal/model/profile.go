package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the extended professional data owned by exactly one user.
type Profile struct {
	ID             uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID `json:"user" gorm:"type:char(36);uniqueIndex;not null"`
	Status         string    `json:"status" gorm:"size:255;not null"`
	Skills         []string  `json:"skills" gorm:"serializer:json"`
	Company        string    `json:"company,omitempty" gorm:"size:255"`
	Website        string    `json:"website,omitempty" gorm:"size:255"`
	Location       string    `json:"location,omitempty" gorm:"size:255"`
	Bio            string    `json:"bio,omitempty" gorm:"type:text"`
	GithubUsername string    `json:"githubUsername,omitempty" gorm:"size:255"`

	Social SocialLinks `json:"social" gorm:"embedded;embeddedPrefix:social_"`

	// Newest-first sub-collections.
	Experience []Experience `json:"experience" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Education  []Education  `json:"education" gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`

	Owner *User `json:"owner,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time `json:"date"`
	UpdatedAt time.Time `json:"-"`
}

// SocialLinks groups the optional social profile URLs.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty" gorm:"size:255"`
	Twitter   string `json:"twitter,omitempty" gorm:"size:255"`
	Linkedin  string `json:"linkedin,omitempty" gorm:"size:255"`
	Instagram string `json:"instagram,omitempty" gorm:"size:255"`
	Facebook  string `json:"facebook,omitempty" gorm:"size:255"`
}

// Experience is a work-history entry on a profile.
// Dates are kept as strings; the API is a pass-through of what the client sends.
type Experience struct {
	ID          uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ProfileID   uuid.UUID `json:"-" gorm:"type:char(36);index;not null"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Company     string    `json:"company" gorm:"size:255;not null"`
	Location    string    `json:"location,omitempty" gorm:"size:255"`
	From        string    `json:"from" gorm:"size:64;not null"`
	To          string    `json:"to,omitempty" gorm:"size:64"`
	Current     bool      `json:"current" gorm:"default:false"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"-"`
}

// Education is a study-history entry on a profile.
type Education struct {
	ID           uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	ProfileID    uuid.UUID `json:"-" gorm:"type:char(36);index;not null"`
	School       string    `json:"school" gorm:"size:255;not null"`
	Degree       string    `json:"degree" gorm:"size:255;not null"`
	FieldOfStudy string    `json:"fieldOfStudy" gorm:"size:255;not null"`
	From         string    `json:"from" gorm:"size:64;not null"`
	To           string    `json:"to,omitempty" gorm:"size:64"`
	Current      bool      `json:"current" gorm:"default:false"`
	Description  string    `json:"description,omitempty" gorm:"type:text"`
	CreatedAt    time.Time `json:"-"`
}

// BeforeCreate sets UUID before creating the record.
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// BeforeCreate sets UUID before creating the record.
func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// BeforeCreate sets UUID before creating the record.
func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
