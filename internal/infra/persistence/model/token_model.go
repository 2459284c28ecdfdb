package model

import "time"

// BlacklistedTokenModel mirrors the 'blacklisted_tokens' table. The unique
// hash column doubles as the revocation race arbiter.
type BlacklistedTokenModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	TokenHash string `gorm:"type:char(64);unique;not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BlacklistedTokenModel) TableName() string {
	return "blacklisted_tokens"
}
