// Package account holds registration, login and profile management for
// customers and staff.
package account

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/food-ordering/internal/auth"
	domain "github.com/BruksfildServices01/food-ordering/internal/domain/account"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
)

const MinPasswordLength = 6

var (
	errBadCredentials = httperr.Unauthenticated("invalid_credentials", "Invalid username/email or password")
	errDeactivated    = httperr.Forbidden("account_deactivated", "Account is deactivated")
	errNoFields       = httperr.Validation("no_fields", "No valid fields to update")
	errShortPassword  = httperr.Validation("password_too_short", "Password must be at least 6 characters")
)

type Service struct {
	repo     domain.Repository
	tokens   *auth.TokenIssuer
	sessions auth.SessionStore

	cost int
	now  func() time.Time
}

func NewService(
	repo domain.Repository,
	tokens *auth.TokenIssuer,
	sessions auth.SessionStore,
) *Service {
	return &Service{
		repo:     repo,
		tokens:   tokens,
		sessions: sessions,
		cost:     bcrypt.DefaultCost,
		now:      time.Now,
	}
}

func (s *Service) hash(plain string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(plain), s.cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func matches(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
