package auth

import (
	"net/http"
	"strings"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
)

type Mode int

const (
	// ModeLogin treats an invalid bearer token like a missing one and falls
	// back to the session.
	ModeLogin Mode = iota
	// ModeRole rejects a present but invalid bearer token outright.
	ModeRole
)

var (
	ErrAuthenticationRequired = httperr.Unauthenticated("authentication_required", "Authentication required")
	ErrTokenRejected          = httperr.Unauthenticated("invalid_token", "Invalid or expired token")
)

// Resolver turns a request into an Identity: bearer token first, session second.
type Resolver struct {
	tokens     *TokenIssuer
	sessions   SessionStore
	cookieName string
}

func NewResolver(tokens *TokenIssuer, sessions SessionStore, cookieName string) *Resolver {
	return &Resolver{tokens: tokens, sessions: sessions, cookieName: cookieName}
}

func (r *Resolver) Resolve(req *http.Request, mode Mode) (Identity, error) {
	if raw := BearerToken(req); raw != "" {
		id, err := r.tokens.Parse(raw)
		if err == nil {
			return id, nil
		}
		if mode == ModeRole {
			return Identity{}, ErrTokenRejected
		}
	}

	id, ok, err := r.FromSession(req)
	if err != nil {
		return Identity{}, err
	}
	if !ok {
		return Identity{}, ErrAuthenticationRequired
	}
	return id, nil
}

// FromSession resolves the identity from the session cookie only.
func (r *Resolver) FromSession(req *http.Request) (Identity, bool, error) {
	sid := r.SessionID(req)
	if sid == "" {
		return Identity{}, false, nil
	}

	id, ok, err := r.sessions.Get(req.Context(), sid)
	if err != nil || !ok || id.SubjectID == 0 {
		return Identity{}, false, err
	}
	return id, true, nil
}

func (r *Resolver) SessionID(req *http.Request) string {
	cookie, err := req.Cookie(r.cookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// BearerToken returns the token from "Authorization: Bearer <token>", or "".
func BearerToken(req *http.Request) string {
	header := req.Header.Get("Authorization")
	if header == "" {
		return ""
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
