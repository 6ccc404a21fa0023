package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/jcp-backend-service/internal/database"
	"github.com/yukikurage/jcp-backend-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormTaskRepository is a GORM implementation of TaskRepository
type GormTaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new TaskRepository
func NewTaskRepository(db *gorm.DB) TaskRepository {
	return &GormTaskRepository{db: db}
}

// Create inserts a task after checking its owner exists, in one transaction.
// task is left untouched when the insert fails.
func (r *GormTaskRepository) Create(task *models.Task) error {
	if task.ID != 0 {
		return ErrIDAlreadyAssigned
	}

	record := *task
	if record.Status == "" {
		record.Status = models.TaskStatusPending
	}
	if err := validateRecord(&record); err != nil {
		return err
	}

	record.CreatedAt = time.Time{}
	record.UpdatedAt = time.Time{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var owners int64
		if err := tx.Model(&models.User{}).Where("id = ?", record.UserID).Count(&owners).Error; err != nil {
			return fmt.Errorf("failed to check task owner: %w", err)
		}
		if owners == 0 {
			return fmt.Errorf("%w: id %d", ErrUserNotFound, record.UserID)
		}

		if err := tx.Omit(clause.Associations).Create(&record).Error; err != nil {
			err = database.TranslateError(err)
			if errors.Is(err, database.ErrForeignKeyViolation) {
				return fmt.Errorf("%w: id %d", ErrUserNotFound, record.UserID)
			}
			return fmt.Errorf("failed to create task: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	*task = record
	return nil
}

// FindByID finds a task by ID
func (r *GormTaskRepository) FindByID(id uint64) (*models.Task, error) {
	var task models.Task
	if err := r.db.First(&task, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}
	return &task, nil
}
