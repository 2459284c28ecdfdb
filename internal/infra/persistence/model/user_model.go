package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	UserType     string    `gorm:"type:varchar(20);not null;default:'visitor'"`
	Name         string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(30)"`
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	CollectionItems []UserCollectionItemModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// UserCollectionItemModel mirrors the 'user_collection_items' table. All four
// collection kinds share it, keyed by (user_id, kind, pujo_id).
type UserCollectionItemModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collection_user_kind_pujo"`
	Kind      string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_collection_user_kind_pujo"`
	PujoID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_collection_user_kind_pujo"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserCollectionItemModel) TableName() string {
	return "user_collection_items"
}
