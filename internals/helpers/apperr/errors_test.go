package apperr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"schooloffice_backend/internals/helpers/apperr"
)

func TestFrom_GormErrors(t *testing.T) {
	cases := []struct {
		err  error
		kind apperr.Kind
	}{
		{gorm.ErrRecordNotFound, apperr.KindNotFound},
		{fmt.Errorf("load: %w", gorm.ErrRecordNotFound), apperr.KindNotFound},
		{gorm.ErrDuplicatedKey, apperr.KindConflict},
		{gorm.ErrForeignKeyViolated, apperr.KindValidation},
		{gorm.ErrCheckConstraintViolated, apperr.KindValidation},
		{errors.New("boom"), apperr.KindInternal},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.kind, apperr.From(tc.err).Kind, tc.err.Error())
	}
}

func TestFrom_FiberAndAppErrors(t *testing.T) {
	assert.Equal(t, apperr.KindConflict, apperr.From(fiber.NewError(fiber.StatusConflict, "x")).Kind)
	assert.Equal(t, apperr.KindValidation, apperr.From(fiber.NewError(fiber.StatusBadRequest, "x")).Kind)

	v := apperr.Validation("code", "already taken")
	wrapped := apperr.Wrap(v, "create subject")
	assert.Same(t, v, apperr.From(wrapped))
	assert.Equal(t, []string{"already taken"}, apperr.From(wrapped).Fields["code"])
}

func TestKindStatus(t *testing.T) {
	assert.Equal(t, 422, apperr.KindValidation.Status())
	assert.Equal(t, 404, apperr.KindNotFound.Status())
	assert.Equal(t, 409, apperr.KindConflict.Status())
	assert.Equal(t, 403, apperr.KindForbidden.Status())
	assert.Equal(t, 500, apperr.KindInternal.Status())
	assert.True(t, apperr.Is(apperr.NotFound("book"), apperr.KindNotFound))
}
