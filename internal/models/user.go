package models

import "time"

// Column sizes for users
const (
	UserUsernameMaxLength = 100
	UserEmailMaxLength    = 255
)

// User is a persisted account record. ID and timestamps are assigned by
// the storage layer on insert.
type User struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Username  string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"username" validate:"required,max=100"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email" validate:"required,max=255"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
