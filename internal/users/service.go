// Package users — учётные записи: вход и создание пользователей администратором.
package users

import (
	"context"
	"strings"

	"refresh-tracker/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const MinPasswordLength = 8

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameRequired   = errors.New("username is required")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidRole        = errors.New("invalid role")
)

type NewUser struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
	Confirm  string `form:"confirm_password" json:"confirm_password"`
	Role     string `form:"role" json:"role"`
}

type Service struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewService(db *gorm.DB, log *logrus.Logger) *Service {
	return &Service{db: db, log: log}
}

// Authenticate не различает неизвестного пользователя и неверный пароль.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("username = ?", strings.TrimSpace(username)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "load user")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *Service) Create(ctx context.Context, in NewUser, actor string) (*models.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(in.Password) < MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if in.Password != in.Confirm {
		return nil, ErrPasswordMismatch
	}
	role := models.UserRole(strings.ToLower(strings.TrimSpace(in.Role)))
	if role == "" {
		role = models.RoleStandard
	}
	if !role.Valid() {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "hash password")
	}
	user := &models.User{Username: username, PasswordHash: string(hash), Role: role}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var n int64
		if err := tx.Model(&models.User{}).Where("username = ?", username).Count(&n).Error; err != nil {
			return errors.Wrap(err, "check username")
		}
		if n > 0 {
			return ErrUsernameTaken
		}
		return errors.Wrap(tx.Create(user).Error, "create user")
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"username": username, "role": role, "actor": actor}).Info("user created")
	return user, nil
}

func (s *Service) List(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := s.db.WithContext(ctx).Order("username").Find(&out).Error
	return out, errors.Wrap(err, "list users")
}
