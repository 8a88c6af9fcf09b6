package repository

import (
	"context"
	"errors"
	"fmt"

	apperrors "ritual/internal/dashboard/errors"
	"ritual/internal/dashboard/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user model.User) (model.User, error)
	GetUserById(ctx context.Context, userId string) (model.User, error)
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
	GetAllUsers(ctx context.Context) ([]model.User, error)
	UpdateUser(ctx context.Context, updatedData model.User) (model.User, error)
	DeleteUserById(ctx context.Context, userId string) error
	CountUsersByPermission(ctx context.Context, permission string) (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func (u *userRepository) CreateUser(ctx context.Context, user model.User) (model.User, error) {
	result := u.db.WithContext(ctx).Create(&user)
	if result.Error != nil {
		var pgErr *pgconn.PgError
		if errors.As(result.Error, &pgErr) && pgErr.Code == "23505" {
			if pgErr.ConstraintName == "users_email_key" {
				return user, fmt.Errorf("UserRepository.CreateUser: %w", apperrors.ErrUserAlreadyExists)
			}
		}
		return user, fmt.Errorf("UserRepository.CreateUser: %w", result.Error)
	}
	return user, nil
}

func (u *userRepository) GetUserById(ctx context.Context, userId string) (model.User, error) {
	var user model.User
	result := u.db.WithContext(ctx).First(&user, "id = ?", userId)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("UserRepository.GetUserById: %w", apperrors.ErrUserNotFound)
		}
		return user, fmt.Errorf("UserRepository.GetUserById: %w", result.Error)
	}
	return user, nil
}

func (u *userRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	var user model.User
	result := u.db.WithContext(ctx).First(&user, "email = ?", email)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return user, fmt.Errorf("UserRepository.GetUserByEmail: %w", apperrors.ErrUserNotFound)
		}
		return user, fmt.Errorf("UserRepository.GetUserByEmail: %w", result.Error)
	}
	return user, nil
}

func (u *userRepository) GetAllUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	result := u.db.WithContext(ctx).Order("created_at asc").Find(&users)
	if result.Error != nil {
		return nil, fmt.Errorf("UserRepository.GetAllUsers: %w", result.Error)
	}
	return users, nil
}

func (u *userRepository) UpdateUser(ctx context.Context, updatedData model.User) (model.User, error) {
	var user model.User
	result := u.db.WithContext(ctx).Model(&user).Clauses(clause.Returning{}).Where("id = ?", updatedData.ID).Updates(updatedData)
	if result.Error != nil {
		return user, fmt.Errorf("UserRepository.UpdateUser: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return user, fmt.Errorf("UserRepository.UpdateUser: %w", apperrors.ErrUserNotFound)
	}
	return user, nil
}

func (u *userRepository) DeleteUserById(ctx context.Context, userId string) error {
	result := u.db.WithContext(ctx).Where("id = ?", userId).Delete(&model.User{})
	if result.Error != nil {
		return fmt.Errorf("UserRepository.DeleteUserById: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("UserRepository.DeleteUserById: %w", apperrors.ErrUserNotFound)
	}
	return nil
}

func (u *userRepository) CountUsersByPermission(ctx context.Context, permission string) (int64, error) {
	var count int64
	result := u.db.WithContext(ctx).Model(&model.User{}).Where("permission = ?", permission).Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("UserRepository.CountUsersByPermission: %w", result.Error)
	}
	return count, nil
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}
