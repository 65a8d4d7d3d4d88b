package helper

import (
	"strings"

	"github.com/google/uuid"
)

// TrimPtr trims s and returns nil when nothing is left.
func TrimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func UpperPtr(s *string) *string {
	t := TrimPtr(s)
	if t == nil {
		return nil
	}
	u := strings.ToUpper(*t)
	return &u
}

func Upper(s string) string { return strings.ToUpper(strings.TrimSpace(s)) }

func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// UUIDPtr drops the zero uuid.
func UUIDPtr(id *uuid.UUID) *uuid.UUID {
	if id == nil || *id == uuid.Nil {
		return nil
	}
	return id
}

// ValueOr returns *p, or def when p is nil.
func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
