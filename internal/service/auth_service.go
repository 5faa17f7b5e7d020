package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iliyamo/hotel-booking/internal/model"
	"github.com/iliyamo/hotel-booking/internal/repository"
	"github.com/iliyamo/hotel-booking/internal/utils"
)

// AuthService signs users up and verifies their credentials.
type AuthService struct {
	users UserStore
	cost  int
	clock func() time.Time
}

// NewAuthService returns an AuthService hashing with the given bcrypt cost.
func NewAuthService(users UserStore, bcryptCost int) *AuthService {
	return &AuthService{users: users, cost: bcryptCost, clock: now}
}

// Signup creates a user. It fails with ErrDuplicateEmail when the email is
// already registered, including when a concurrent signup wins the unique
// index between the existence check and the insert.
func (s *AuthService) Signup(ctx context.Context, email, password, name string) (model.User, error) {
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.User{}, persistence("check email", err)
	}
	if exists {
		return model.User{}, ErrDuplicateEmail
	}

	hash, err := utils.HashPassword(password, s.cost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}
	u := model.User{
		Email:        email,
		PasswordHash: hash,
		Name:         name,
		CreatedAt:    s.clock(),
	}
	if err := s.users.Create(ctx, &u); err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return model.User{}, ErrDuplicateEmail
		}
		return model.User{}, persistence("create user", err)
	}
	return u, nil
}

// Login returns the user whose email and password match. Unknown emails and
// wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (model.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		utils.BurnVerify(password, s.cost)
		return model.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, persistence("find user", err)
	}
	if !utils.VerifyPassword(u.PasswordHash, password) {
		return model.User{}, ErrInvalidCredentials
	}
	return u, nil
}
