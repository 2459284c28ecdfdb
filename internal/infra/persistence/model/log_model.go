package model

import (
	"time"

	"github.com/google/uuid"
)

// LogModel mirrors the 'logs' table written by the request recorder and
// drained by the backup job.
type LogModel struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	Level     string     `gorm:"type:varchar(10);not null"`
	Message   string     `gorm:"type:text;not null"`
	Module    string     `gorm:"type:varchar(100)"`
	UserID    *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (LogModel) TableName() string {
	return "logs"
}

// JobLeaseModel mirrors the 'job_leases' table used for background job
// mutual exclusion.
type JobLeaseModel struct {
	Name      string    `gorm:"type:varchar(50);primaryKey"`
	Holder    string    `gorm:"type:varchar(100);not null"`
	ExpiresAt time.Time `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (JobLeaseModel) TableName() string {
	return "job_leases"
}
