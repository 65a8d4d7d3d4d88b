package helper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTrimPtr(t *testing.T) {
	s := "  hi "
	blank := "   "
	assert.Equal(t, "hi", *TrimPtr(&s))
	assert.Nil(t, TrimPtr(&blank))
	assert.Nil(t, TrimPtr(nil))
	assert.Equal(t, "HI", *UpperPtr(&s))
	assert.Equal(t, "", Deref(nil))
}

func TestUUIDPtr(t *testing.T) {
	zero := uuid.Nil
	id := uuid.New()
	assert.Nil(t, UUIDPtr(&zero))
	assert.Equal(t, &id, UUIDPtr(&id))
}

func TestValueOr(t *testing.T) {
	no := false
	assert.True(t, ValueOr(nil, true))
	assert.False(t, ValueOr(&no, true))
	assert.Equal(t, 10, ValueOr[int](nil, 10))
}
