package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/yukikurage/jcp-backend-service/internal/database"
	"github.com/yukikurage/jcp-backend-service/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	if user.ID != 0 {
		return ErrIDAlreadyAssigned
	}
	if err := validateRecord(user); err != nil {
		return err
	}

	// timestamps always come from the storage clock. user is only
	// updated once the insert succeeds.
	record := *user
	record.CreatedAt = time.Time{}
	record.UpdatedAt = time.Time{}

	if err := r.db.Create(&record).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", database.TranslateError(err))
	}
	*user = record
	return nil
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id uint64) (*models.User, error) {
	return r.findOne("id = ?", id)
}

// FindByUsername finds a user by username
func (r *GormUserRepository) FindByUsername(username string) (*models.User, error) {
	return r.findOne("username = ?", username)
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	return r.findOne("email = ?", email)
}

func (r *GormUserRepository) findOne(query string, arg interface{}) (*models.User, error) {
	var user models.User
	if err := r.db.Where(query, arg).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}
