package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const cookieName = "food_order_session"

type fixture struct {
	tokens   *TokenIssuer
	sessions *MemoryStore
	resolver *Resolver
}

func newFixture() fixture {
	tokens := NewTokenIssuer("secret", time.Hour)
	sessions := NewMemoryStore(time.Hour)
	return fixture{
		tokens:   tokens,
		sessions: sessions,
		resolver: NewResolver(tokens, sessions, cookieName),
	}
}

func (f fixture) request(t *testing.T, bearer string, session *Identity) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	if session != nil {
		sid, err := f.sessions.Create(context.Background(), *session)
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: cookieName, Value: sid})
	}
	return req
}

func TestBearerWinsOverSession(t *testing.T) {
	f := newFixture()
	token, err := f.tokens.Issue(Identity{SubjectID: 1, Role: RoleUser, Username: "token-user"})
	require.NoError(t, err)

	req := f.request(t, token, &Identity{SubjectID: 2, Role: RoleAdmin, Username: "session-admin"})

	for _, mode := range []Mode{ModeLogin, ModeRole} {
		id, err := f.resolver.Resolve(req, mode)
		require.NoError(t, err)
		assert.Equal(t, "token-user", id.Username)
	}
}

func TestInvalidBearerFallsBackToSessionForLogin(t *testing.T) {
	f := newFixture()
	req := f.request(t, "garbage", &Identity{SubjectID: 2, Role: RoleUser, Username: "session-user"})

	id, err := f.resolver.Resolve(req, ModeLogin)
	require.NoError(t, err)
	assert.Equal(t, "session-user", id.Username)
}

func TestInvalidBearerIsFatalForRoleGates(t *testing.T) {
	f := newFixture()
	req := f.request(t, "garbage", &Identity{SubjectID: 2, Role: RoleAdmin, Username: "session-admin"})

	_, err := f.resolver.Resolve(req, ModeRole)
	assert.Equal(t, ErrTokenRejected, err)
}

func TestNoCredentialsIsAuthenticationRequired(t *testing.T) {
	f := newFixture()

	_, err := f.resolver.Resolve(f.request(t, "", nil), ModeLogin)
	assert.Equal(t, ErrAuthenticationRequired, err)

	_, err = f.resolver.Resolve(f.request(t, "", nil), ModeRole)
	assert.Equal(t, ErrAuthenticationRequired, err)
}

func TestUnknownSessionCookieIsRejected(t *testing.T) {
	f := newFixture()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: cookieName, Value: "missing"})

	_, err := f.resolver.Resolve(req, ModeLogin)
	assert.Equal(t, ErrAuthenticationRequired, err)
}

func TestFromSessionIgnoresBearer(t *testing.T) {
	f := newFixture()
	token, err := f.tokens.Issue(Identity{SubjectID: 1, Role: RoleUser})
	require.NoError(t, err)

	_, ok, err := f.resolver.FromSession(f.request(t, token, nil))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBearerTokenParsing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, BearerToken(req))

	req.Header.Set("Authorization", "Basic abc")
	assert.Empty(t, BearerToken(req))

	req.Header.Set("Authorization", "bearer abc.def")
	assert.Equal(t, "abc.def", BearerToken(req))
}

func TestIdentityRoles(t *testing.T) {
	assert.True(t, Identity{Role: RoleAdmin, AdminRole: "super_admin"}.IsSuperAdmin())
	assert.False(t, Identity{Role: RoleAdmin, AdminRole: "admin"}.IsSuperAdmin())
	assert.False(t, Identity{Role: RoleUser, AdminRole: "super_admin"}.IsSuperAdmin())
}
