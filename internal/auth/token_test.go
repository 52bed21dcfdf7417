package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndParseRoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", 7*24*time.Hour)
	in := Identity{SubjectID: 42, Role: RoleAdmin, Username: "root", AdminRole: "super_admin"}

	raw, err := issuer.Issue(in)
	require.NoError(t, err)

	out, err := issuer.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestTokenExpiresAfterSevenDays(t *testing.T) {
	issuer := NewTokenIssuer("secret", 7*24*time.Hour)
	issued := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	raw, err := issuer.Issue(Identity{SubjectID: 1, Role: RoleUser, Username: "ana"})
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(7*24*time.Hour - time.Minute) }
	_, err = issuer.Parse(raw)
	assert.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(7*24*time.Hour + time.Minute) }
	_, err = issuer.Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsForeignSignature(t *testing.T) {
	raw, err := NewTokenIssuer("other", time.Hour).Issue(Identity{SubjectID: 1, Role: RoleUser})
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsUnsignedToken(t *testing.T) {
	claims := Claims{
		UserID:   1,
		UserType: RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", time.Hour).Parse(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := NewTokenIssuer("secret", time.Hour).Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
