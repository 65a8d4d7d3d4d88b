package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "schooloffice_backend/internals/helpers"
)

func TestUserRequest_ToModel(t *testing.T) {
	email := "  Jane@School.Test "
	pw := "s3cretpass"
	gender := "f"
	m := UserRequest{UserName: " jane ", UserEmail: &email, UserPassword: &pw, UserGender: &gender}.ToModel()

	assert.Equal(t, "jane", m.UserName)
	assert.Equal(t, "Jane@School.Test", *m.UserEmail)
	assert.Equal(t, "STUDENT", m.UserRole)
	assert.Equal(t, "F", *m.UserGender)
	assert.True(t, m.UserIsActive)
	require.NotEmpty(t, m.UserPasswordHash)
	assert.NoError(t, CheckPassword(m.UserPasswordHash, pw))
}

func TestUserRequest_NoPasswordLeavesHashEmpty(t *testing.T) {
	inactive := false
	m := UserRequest{UserName: "x", UserRole: "TEACHER", UserIsActive: &inactive}.ToModel()
	assert.Empty(t, m.UserPasswordHash)
	assert.False(t, m.UserIsActive)
}

func TestUserRequest_Validation(t *testing.T) {
	v := helper.NewValidator()
	short := "short"
	badGender := "X"
	dob := "2001-13-40"
	errs := v.Struct(UserRequest{UserName: " ", UserRole: "JANITOR", UserPassword: &short, UserGender: &badGender, UserDateOfBirth: &dob})
	for _, f := range []string{"user_name", "user_role", "user_password", "user_gender", "user_date_of_birth"} {
		assert.Contains(t, errs, f)
	}
}

func TestChangePasswordRequest_RejectsSamePassword(t *testing.T) {
	errs := helper.NewValidator().Struct(ChangePasswordRequest{CurrentPassword: "abcdefgh", NewPassword: "abcdefgh"})
	assert.Contains(t, errs, "new_password")
}
