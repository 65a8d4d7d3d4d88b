package controller

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schooloffice_backend/internals/constants"
	"schooloffice_backend/internals/crud"
	"schooloffice_backend/internals/features/accounts/model"
	"schooloffice_backend/internals/helpers/apperr"
)

func TestUserResource_PasswordRules(t *testing.T) {
	res := UserResource()
	w := crud.WriteContext{Role: constants.RoleAdmin, Actor: uuid.New()}

	created := &model.UserModel{UserName: "a", UserRole: constants.RoleTeacher}
	err := res.BeforeWrite(w, nil, created)
	require.Error(t, err)
	assert.Contains(t, apperr.From(err).Fields, "user_password")

	old := &model.UserModel{UserPasswordHash: "stored", UserRole: constants.RoleTeacher}
	edited := &model.UserModel{UserName: "a", UserRole: constants.RoleTeacher}
	require.NoError(t, res.BeforeWrite(w, old, edited))
	assert.Equal(t, "stored", edited.UserPasswordHash)
}

func TestUserResource_SuperAdminGuard(t *testing.T) {
	res := UserResource()
	admin := crud.WriteContext{Role: constants.RoleAdmin}
	super := crud.WriteContext{Role: constants.RoleSuperAdmin}

	m := &model.UserModel{UserPasswordHash: "h", UserRole: constants.RoleSuperAdmin}
	assert.True(t, apperr.Is(res.BeforeWrite(admin, nil, m), apperr.KindForbidden))
	assert.NoError(t, res.BeforeWrite(super, nil, m))

	demote := &model.UserModel{UserPasswordHash: "h", UserRole: constants.RoleAdmin}
	assert.True(t, apperr.Is(res.BeforeWrite(admin, m, demote), apperr.KindForbidden))
}

func TestUserResource_CannotDeleteSelf(t *testing.T) {
	me := uuid.New()
	err := UserResource().BeforeDelete(crud.WriteContext{Actor: me}, &model.UserModel{UserID: me})
	assert.True(t, apperr.Is(err, apperr.KindConflict))
}
