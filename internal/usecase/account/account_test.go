package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/food-ordering/internal/auth"
	"github.com/BruksfildServices01/food-ordering/internal/httperr"
	"github.com/BruksfildServices01/food-ordering/internal/infra/repository"
	"github.com/BruksfildServices01/food-ordering/internal/models"
	"github.com/BruksfildServices01/food-ordering/internal/testutil"
)

func newService(t *testing.T) (*gorm.DB, *Service, *auth.TokenIssuer, *auth.MemoryStore) {
	db := testutil.NewDB(t)
	tokens := auth.NewTokenIssuer("test-secret", time.Hour)
	sessions := auth.NewMemoryStore(time.Hour)

	svc := NewService(repository.NewAccountGormRepository(db), tokens, sessions)
	svc.cost = bcrypt.MinCost
	return db, svc, tokens, sessions
}

func validUser() RegisterUserInput {
	return RegisterUserInput{
		Username: "ana",
		Email:    "ana@example.com",
		Password: "secret1",
		FullName: "Ana Lima",
		Phone:    "+55 11 91234-5678",
	}
}

func ptr[T any](v T) *T { return &v }

func TestRegisterThenLogin(t *testing.T) {
	_, svc, tokens, sessions := newService(t)
	ctx := context.Background()

	u, err := svc.RegisterUser(ctx, validUser())
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", u.PasswordHash)

	res, err := svc.LoginUser(ctx, LoginInput{Username: "ana", Password: "secret1"})
	require.NoError(t, err)
	require.NotNil(t, res.User)

	id, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, id.SubjectID)
	assert.Equal(t, auth.RoleUser, id.Role)

	fromSession, ok, err := sessions.Get(ctx, res.SessionID)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, id, fromSession)

	byEmail, err := svc.LoginUser(ctx, LoginInput{Email: "ana@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.User.ID)
}

func TestMixedCaseEmailRoundTrip(t *testing.T) {
	_, svc, _, _ := newService(t)
	ctx := context.Background()

	in := validUser()
	in.Email = "Ana.Lima@Example.com"
	u, err := svc.RegisterUser(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "ana.lima@example.com", u.Email)

	res, err := svc.LoginUser(ctx, LoginInput{Email: "Ana.Lima@Example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, u.ID, res.User.ID)

	admin := RegisterAdminInput{
		Username: "chef",
		Email:    "Chef@Example.com",
		Password: "secret1",
		FullName: "Head Chef",
	}
	a, err := svc.RegisterAdmin(ctx, admin)
	require.NoError(t, err)

	staff, err := svc.LoginAdmin(ctx, LoginInput{Email: "CHEF@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, a.ID, staff.Admin.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	_, svc, _, _ := newService(t)
	ctx := context.Background()
	_, err := svc.RegisterUser(ctx, validUser())
	require.NoError(t, err)

	res, err := svc.LoginUser(ctx, LoginInput{Username: "ana", Password: "nope-nope"})
	assert.Nil(t, res)
	kind, _ := httperr.KindOf(err)
	assert.Equal(t, httperr.KindAuthentication, kind)

	_, unknown := svc.LoginUser(ctx, LoginInput{Username: "ghost", Password: "secret1"})
	assert.Equal(t, err.Error(), unknown.Error())
}

func TestDeactivatedAccountCannotLogin(t *testing.T) {
	db, svc, _, _ := newService(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "bob", "secret1")
	require.NoError(t, db.Model(u).Update("is_active", false).Error)

	_, err := svc.LoginUser(ctx, LoginInput{Username: "bob", Password: "secret1"})
	assert.True(t, httperr.IsBusiness(err, "account_deactivated"))

	_, err = svc.LoginUser(ctx, LoginInput{Username: "bob", Password: "wrong-pass"})
	assert.True(t, httperr.IsBusiness(err, "invalid_credentials"))
}

func TestRegisterValidation(t *testing.T) {
	_, svc, _, _ := newService(t)
	ctx := context.Background()

	mutate := func(f func(*RegisterUserInput)) RegisterUserInput {
		in := validUser()
		f(&in)
		return in
	}

	cases := []struct {
		name string
		in   RegisterUserInput
		code string
	}{
		{"missing username", mutate(func(in *RegisterUserInput) { in.Username = "" }), "field_required"},
		{"bad email", mutate(func(in *RegisterUserInput) { in.Email = "ana.example.com" }), "invalid_email"},
		{"short password", mutate(func(in *RegisterUserInput) { in.Password = "12345" }), "password_too_short"},
		{"bad phone", mutate(func(in *RegisterUserInput) { in.Phone = "12" }), "invalid_phone"},
		{"blank full name", mutate(func(in *RegisterUserInput) { in.FullName = "   " }), "field_required"},
	}
	for _, tc := range cases {
		_, err := svc.RegisterUser(ctx, tc.in)
		assert.True(t, httperr.IsBusiness(err, tc.code), tc.name)
	}
}

func TestRegisterDuplicate(t *testing.T) {
	_, svc, _, _ := newService(t)
	ctx := context.Background()
	_, err := svc.RegisterUser(ctx, validUser())
	require.NoError(t, err)

	again := validUser()
	again.Username = "other"
	_, err = svc.RegisterUser(ctx, again)
	assert.True(t, httperr.IsBusiness(err, "user_exists"))
}

func TestAdminLoginStampsLastLogin(t *testing.T) {
	db, svc, tokens, _ := newService(t)
	ctx := context.Background()
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	a, err := svc.RegisterAdmin(ctx, RegisterAdminInput{
		Username: "boss",
		Email:    "boss@example.com",
		Password: "secret1",
		FullName: "Boss",
		Role:     models.AdminRoleSuperAdmin,
	})
	require.NoError(t, err)

	res, err := svc.LoginAdmin(ctx, LoginInput{Email: "boss@example.com", Password: "secret1"})
	require.NoError(t, err)

	id, err := tokens.Parse(res.Token)
	require.NoError(t, err)
	assert.True(t, id.IsSuperAdmin())

	var stored models.Admin
	require.NoError(t, db.First(&stored, a.ID).Error)
	require.NotNil(t, stored.LastLogin)
	assert.True(t, fixed.Equal(*stored.LastLogin))
}

func TestRegisterAdminRole(t *testing.T) {
	_, svc, _, _ := newService(t)
	ctx := context.Background()

	a, err := svc.RegisterAdmin(ctx, RegisterAdminInput{
		Username: "staff", Email: "staff@example.com", Password: "secret1", FullName: "Staff",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AdminRoleAdmin, a.Role)

	_, err = svc.RegisterAdmin(ctx, RegisterAdminInput{
		Username: "x", Email: "x@example.com", Password: "secret1", FullName: "X", Role: "owner",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_role"))
}

func TestLogoutDropsSession(t *testing.T) {
	db, svc, _, sessions := newService(t)
	ctx := context.Background()
	testutil.CreateUser(t, db, "ana", "secret1")

	res, err := svc.LoginUser(ctx, LoginInput{Username: "ana", Password: "secret1"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, res.SessionID))
	_, ok, err := sessions.Get(ctx, res.SessionID)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.NoError(t, svc.Logout(ctx, ""))
}

func TestUpdateProfile(t *testing.T) {
	db, svc, _, _ := newService(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "ana", "secret1")

	_, err := svc.UpdateUserProfile(ctx, u.ID, UserProfileInput{})
	assert.True(t, httperr.IsBusiness(err, "no_fields"))

	_, err = svc.UpdateUserProfile(ctx, u.ID, UserProfileInput{FullName: ptr("  ")})
	assert.True(t, httperr.IsBusiness(err, "field_required"))

	_, err = svc.UpdateUserProfile(ctx, u.ID, UserProfileInput{Phone: ptr("123")})
	assert.True(t, httperr.IsBusiness(err, "invalid_phone"))

	cleared, err := svc.UpdateUserProfile(ctx, u.ID, UserProfileInput{Phone: ptr("")})
	require.NoError(t, err)
	assert.Empty(t, cleared.Phone)

	got, err := svc.UpdateUserProfile(ctx, u.ID, UserProfileInput{Address: ptr("Rua A, 10")})
	require.NoError(t, err)
	assert.Equal(t, "Rua A, 10", got.Address)
	assert.Equal(t, u.FullName, got.FullName)

	a := testutil.CreateAdmin(t, db, "staff", "secret1", models.AdminRoleAdmin)
	admin, err := svc.UpdateAdminProfile(ctx, a.ID, AdminProfileInput{FullName: ptr("New Name")})
	require.NoError(t, err)
	assert.Equal(t, "New Name", admin.FullName)
	assert.Equal(t, models.AdminRoleAdmin, admin.Role)
}

func TestChangePassword(t *testing.T) {
	db, svc, _, _ := newService(t)
	ctx := context.Background()
	u := testutil.CreateUser(t, db, "ana", "secret1")
	who := auth.Identity{SubjectID: u.ID, Role: auth.RoleUser, Username: "ana"}

	err := svc.ChangePassword(ctx, who, ChangePasswordInput{CurrentPassword: "wrong!", NewPassword: "another1"})
	assert.True(t, httperr.IsBusiness(err, "wrong_password"))

	err = svc.ChangePassword(ctx, who, ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "123"})
	assert.True(t, httperr.IsBusiness(err, "password_too_short"))

	require.NoError(t, svc.ChangePassword(ctx, who, ChangePasswordInput{CurrentPassword: "secret1", NewPassword: "another1"}))

	_, err = svc.LoginUser(ctx, LoginInput{Username: "ana", Password: "another1"})
	assert.NoError(t, err)
}

func TestSetAdminPassword(t *testing.T) {
	db, svc, _, _ := newService(t)
	ctx := context.Background()
	testutil.CreateAdmin(t, db, "root", "secret1", models.AdminRoleSuperAdmin)

	_, err := svc.SetAdminPassword(ctx, "root", "fresh-pass")
	require.NoError(t, err)

	_, err = svc.LoginAdmin(ctx, LoginInput{Username: "root", Password: "fresh-pass"})
	assert.NoError(t, err)

	_, err = svc.SetAdminPassword(ctx, "nobody", "fresh-pass")
	assert.ErrorIs(t, err, ErrAdminNotFound)
}
