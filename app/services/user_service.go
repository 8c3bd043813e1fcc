package services

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/storefront/app/models"
	"github.com/shashiranjanraj/storefront/app/repositories"
	"github.com/shashiranjanraj/storefront/app/requests"
	"github.com/shashiranjanraj/storefront/pkg/apperr"
	"github.com/shashiranjanraj/storefront/pkg/auth"
)

// UserService registers users, checks credentials and issues session tokens.
type UserService struct {
	users *repositories.UserRepository
}

func NewUserService(users *repositories.UserRepository) *UserService {
	return &UserService{users: users}
}

// Session is a user together with a freshly signed token.
type Session struct {
	User  *models.User `json:"user"`
	Token string       `json:"-"`
}

func (s *UserService) Register(ctx context.Context, in requests.Register) (*Session, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("user.register: hash: %w", err)
	}
	u := &models.User{Name: in.Name, Email: in.Email, Password: hash}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return s.issue(u)
}

// Login reports an unknown email and a wrong password as 400s.
func (s *UserService) Login(ctx context.Context, in requests.Login) (*Session, error) {
	const op = "user.login"
	u, err := s.users.FindByEmail(ctx, in.Email)
	if apperr.KindOf(err) == apperr.NotFound {
		return nil, apperr.Invalidf(op, apperr.CodeInvalidCredentials, "This email is not registered.")
	}
	if err != nil {
		return nil, err
	}
	if !auth.CheckPassword(u.Password, in.Password) {
		return nil, apperr.Invalidf(op, apperr.CodeInvalidCredentials, "Invalid email or password.")
	}
	return s.issue(u)
}

// ChangePassword requires the current password to match.
func (s *UserService) ChangePassword(ctx context.Context, userID int64, in requests.ChangePassword) error {
	const op = "user.change_password"
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if !auth.CheckPassword(u.Password, in.CurrentPassword) {
		return apperr.Invalidf(op, apperr.CodeInvalidCredentials, "Current password is incorrect.")
	}
	hash, err := auth.HashPassword(in.NewPassword)
	if err != nil {
		return fmt.Errorf("%s: hash: %w", op, err)
	}
	return s.users.UpdatePassword(ctx, userID, hash)
}

func (s *UserService) issue(u *models.User) (*Session, error) {
	token, err := auth.GenerateToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, fmt.Errorf("user.issue_token: %w", err)
	}
	return &Session{User: u, Token: token}, nil
}
