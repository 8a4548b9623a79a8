package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Slide is one study card of a generated deck. Content is newline-delimited
// bullet text; no further structure is imposed on it.
type Slide struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// DeckRecord is the persisted copy of a validated deck. Identity is assigned
// here, not by the generation pipeline.
type DeckRecord struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Topic      string         `gorm:"column:topic;not null;index" json:"topic"`
	SlideCount int            `gorm:"column:slide_count;not null" json:"slide_count"`
	ModelUsed  string         `gorm:"column:model_used;not null" json:"model_used"`
	Slides     datatypes.JSON `gorm:"column:slides;type:jsonb;not null" json:"slides"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (DeckRecord) TableName() string { return "deck_record" }
