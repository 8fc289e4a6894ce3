package repository

import (
	"context"
	"errors"

	"mis/internal/model"
	"mis/pkg/apperror"

	"gorm.io/gorm"
)

// UserRepository defines data access for principals
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	// GetByIdentifier matches either the username or the email
	GetByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	Table() *Table[model.User]
}

type userRepository struct {
	db    *gorm.DB
	table *Table[model.User]
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db, table: NewTable[model.User](db, UserSchema)}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	if err := GetDB(ctx, r.db).Create(user).Error; err != nil {
		return apperror.Internal("failed to create user", err)
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *userRepository) GetByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	return r.first(ctx, "username = ? OR email = ?", identifier, identifier)
}

func (r *userRepository) Table() *Table[model.User] {
	return r.table
}

func (r *userRepository) first(ctx context.Context, cond string, args ...interface{}) (*model.User, error) {
	var user model.User
	err := GetDB(ctx, r.db).Where(cond, args...).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NotFound("user not found")
	}
	if err != nil {
		return nil, apperror.Internal("failed to fetch user", err)
	}
	return &user, nil
}
