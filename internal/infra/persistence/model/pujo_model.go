package model

import (
	"time"

	"github.com/google/uuid"
)

// PujoModel mirrors the 'pujos' table.
type PujoModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Address     string    `gorm:"type:text"`
	City        string    `gorm:"type:varchar(100)"`
	SearchScore int       `gorm:"not null;default:0;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	ScoreEvents []ScoreEventModel `gorm:"foreignKey:PujoID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (PujoModel) TableName() string {
	return "pujos"
}

// ScoreEventModel mirrors the 'pujo_score_events' table. Positive rows are
// recorded searches, negative rows are decay compensations.
type ScoreEventModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	PujoID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Value     int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (ScoreEventModel) TableName() string {
	return "pujo_score_events"
}
