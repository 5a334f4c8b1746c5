package models

import "time"

// Video represents a dubbing job tracked for a user. The actual processing
// happens in an external system; this row only records what it is told.
// Optional URL columns are pointers so absent values serialize as null.
type Video struct {
	ID             string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID         string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	Name           string    `json:"name" gorm:"not null;check:name <> ''"`
	OriginalURL    *string   `json:"original_url"`
	ProcessedURL   *string   `json:"processed_url"`
	TargetLanguage string    `json:"target_language" gorm:"not null;check:target_language <> ''"`
	Status         string    `json:"status" gorm:"not null;default:'pending'"` // free-form, set by the caller
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
