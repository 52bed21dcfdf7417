package validators

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/food-ordering/internal/httperr"
)

func TestIsPhone(t *testing.T) {
	assert.True(t, IsPhone("+1 (555) 123-4567"))
	assert.True(t, IsPhone("5551234567"))
	assert.True(t, IsPhone(""))
	assert.False(t, IsPhone("12345"))
	assert.False(t, IsPhone("1234567890123456"))
}

type signup struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=6"`
	Phone    string  `json:"phone" binding:"phone"`
	Nickname *string `json:"nickname" binding:"omitempty,notblank"`
	Rating   int     `json:"rating" binding:"omitempty,min=1,max=5"`
	Age      int     `json:"age" binding:"omitempty,gt=0"`
}

func TestStructMapsTagsToCodes(t *testing.T) {
	blank := "  "
	valid := func() signup {
		return signup{Email: "ana@example.com", Password: "secret1"}
	}

	cases := []struct {
		name   string
		mutate func(*signup)
		code   string
	}{
		{"missing email", func(s *signup) { s.Email = "" }, "field_required"},
		{"bad email", func(s *signup) { s.Email = "ana.example.com" }, "invalid_email"},
		{"short password", func(s *signup) { s.Password = "12345" }, "password_too_short"},
		{"bad phone", func(s *signup) { s.Phone = "12" }, "invalid_phone"},
		{"blank optional", func(s *signup) { s.Nickname = &blank }, "field_required"},
		{"rating range", func(s *signup) { s.Rating = 6 }, "invalid_rating"},
		{"unmapped field", func(s *signup) { s.Age = -1 }, "invalid_age"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := valid()
			tc.mutate(&in)
			err := Struct(in)
			assert.True(t, httperr.IsBusiness(err, tc.code), "got %v", err)
		})
	}

	assert.NoError(t, Struct(valid()))
}

func TestRequiredMessageUsesJSONName(t *testing.T) {
	err := Struct(signup{Password: "secret1"})
	assert.EqualError(t, err, "email is required")
}

func TestTranslatePassesOtherErrors(t *testing.T) {
	other := errors.New("boom")
	assert.Same(t, other, Translate(other))
	assert.NoError(t, Translate(nil))
	assert.False(t, IsValidation(other))
}
