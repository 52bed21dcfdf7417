package account

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/auth"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/models"
)

type LoginInput struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (in LoginInput) identifier() string {
	if v := strings.TrimSpace(in.Email); v != "" {
		return v
	}
	return strings.TrimSpace(in.Username)
}

// LoginResult carries both credentials handed to the client. Exactly one of
// User or Admin is set.
type LoginResult struct {
	Identity  auth.Identity
	Token     string
	SessionID string

	User  *models.User
	Admin *models.Admin
}

func (s *Service) LoginUser(ctx context.Context, in LoginInput) (*LoginResult, error) {
	login := in.identifier()
	if login == "" || in.Password == "" {
		return nil, errLoginRequired
	}

	u, err := s.repo.FindUserByLogin(ctx, login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, err
	}

	if !matches(u.PasswordHash, in.Password) {
		return nil, errBadCredentials
	}
	if !u.IsActive {
		return nil, errDeactivated
	}

	res, err := s.issue(ctx, auth.Identity{
		SubjectID: u.ID,
		Role:      auth.RoleUser,
		Username:  u.Username,
	})
	if err != nil {
		return nil, err
	}
	res.User = u
	return res, nil
}

func (s *Service) LoginAdmin(ctx context.Context, in LoginInput) (*LoginResult, error) {
	login := in.identifier()
	if login == "" || in.Password == "" {
		return nil, errLoginRequired
	}

	a, err := s.repo.FindAdminByLogin(ctx, login)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errBadCredentials
	}
	if err != nil {
		return nil, err
	}

	if !matches(a.PasswordHash, in.Password) {
		return nil, errBadCredentials
	}
	if !a.IsActive {
		return nil, errDeactivated
	}

	now := s.now()
	if err := s.repo.TouchAdminLogin(ctx, a.ID, now); err != nil {
		return nil, err
	}
	a.LastLogin = &now

	res, err := s.issue(ctx, auth.Identity{
		SubjectID: a.ID,
		Role:      auth.RoleAdmin,
		Username:  a.Username,
		AdminRole: a.Role,
	})
	if err != nil {
		return nil, err
	}
	res.Admin = a
	return res, nil
}

// Logout drops the server-side session. Unknown ids are not an error.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return s.sessions.Delete(ctx, sessionID)
}

func (s *Service) issue(ctx context.Context, id auth.Identity) (*LoginResult, error) {
	token, err := s.tokens.Issue(id)
	if err != nil {
		return nil, err
	}
	sid, err := s.sessions.Create(ctx, id)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Identity: id, Token: token, SessionID: sid}, nil
}

var errLoginRequired = httperr.Validation("login_required_fields", "Username/Email and password are required")
