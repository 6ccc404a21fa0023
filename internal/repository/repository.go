package repository

import (
	"errors"

	"github.com/yukikurage/jcp-backend-service/internal/database"
	"github.com/yukikurage/jcp-backend-service/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
	// ErrIDAlreadyAssigned is returned when a caller passes a record with an id to Create.
	ErrIDAlreadyAssigned = errors.New("id is assigned by the storage layer")
	// ErrConstraintViolation is returned when a record breaks a length or required column constraint.
	ErrConstraintViolation = errors.New("column constraint violation")
	// ErrUniqueConstraintViolation is returned when an insert collides with a unique column.
	ErrUniqueConstraintViolation = database.ErrUniqueConstraintViolation
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create inserts a new user. ID and timestamps are assigned on insert.
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)
}

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create inserts a new task owned by an existing user.
	// Status defaults to pending.
	Create(task *models.Task) error

	// FindByID finds a task by ID
	FindByID(id uint64) (*models.Task, error)
}
