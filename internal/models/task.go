package models

import "time"

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "pending"
)

// Column sizes for tasks
const (
	TaskTitleMaxLength  = 255
	TaskStatusMaxLength = 50
)

// Task is a persisted unit of work owned by a user
type Task struct {
	ID          uint64     `gorm:"primarykey" json:"id"`
	UserID      uint64     `gorm:"column:user_id;not null;index:idx_tasks_user_id" json:"user_id" validate:"required"`
	Title       string     `gorm:"type:varchar(255);not null" json:"title" validate:"required,max=255"`
	Description *string    `gorm:"type:text" json:"description"`
	Status      TaskStatus `gorm:"type:varchar(50);not null;default:'pending';index:idx_tasks_status" json:"status" validate:"max=50"`
	CreatedAt   time.Time  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at" json:"updated_at"`

	// Relations
	User *User `gorm:"foreignKey:UserID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-" validate:"-"`
}

func (Task) TableName() string {
	return "tasks"
}
