// Package auth signs staff into the dashboard. Accounts are created by
// the seeder, not self-service; there is a single "admin" role.
package auth

import (
	"context"
	"errors"

	"meetspace/internal/domain"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

type Service struct {
	users UserRepository
	jwt   jwtService
}

func NewService(users UserRepository, jwt jwtService) *Service {
	return &Service{users: users, jwt: jwt}
}

// Login verifies the password and issues a token. Unknown email and
// wrong password collapse into the same error so the endpoint leaks
// nothing about which accounts exist.
func (s *Service) Login(ctx context.Context, req LoginRequest) (string, *domain.User, error) {
	user, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, "admin")
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
