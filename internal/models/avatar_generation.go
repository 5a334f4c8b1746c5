package models

import "time"

// AvatarGeneration represents a request for a generated avatar video.
// VideoURL is filled in later by the external generation service.
type AvatarGeneration struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	AvatarID  string    `json:"avatar_id" gorm:"not null;check:avatar_id <> ''"`
	VoiceID   string    `json:"voice_id" gorm:"not null;check:voice_id <> ''"`
	Text      string    `json:"text" gorm:"type:text;not null;check:text <> ''"`
	VideoURL  *string   `json:"video_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
