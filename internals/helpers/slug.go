package helper

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

const SlugMaxLen = 100

var (
	reNonAlnum = regexp.MustCompile(`[^a-z0-9]+`)
	reHyphen   = regexp.MustCompile(`-+`)
)

// Slugify turns free text into [a-z0-9-]. Diacritics are dropped and runs of
// separators collapse to one "-". Empty input becomes "item".
func Slugify(s string, maxLen int) string {
	if maxLen <= 0 {
		maxLen = SlugMaxLen
	}
	s = strings.ToLower(strings.TrimSpace(s))

	var buf []rune
	for _, r := range norm.NFD.String(s) {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		buf = append(buf, r)
	}
	s = reNonAlnum.ReplaceAllString(string(buf), "-")
	s = strings.Trim(reHyphen.ReplaceAllString(s, "-"), "-")

	if utf8.RuneCountInString(s) > maxLen {
		s = strings.Trim(string([]rune(s)[:maxLen]), "-")
	}
	if s == "" {
		s = "item"
	}
	return s
}

// SlugQuery describes where a slug has to be unique.
type SlugQuery struct {
	Table     string
	Column    string
	KeyColumn string // primary key column, used to skip the row being edited
	ExceptKey any
}

// UniqueSlug slugifies base and appends -2, -3, ... until no other row in
// q.Table holds it (case-insensitive).
func UniqueSlug(ctx context.Context, db *gorm.DB, q SlugQuery, base string) (string, error) {
	root := Slugify(base, SlugMaxLen)
	slug := root
	for i := 2; i < 1000; i++ {
		tx := db.WithContext(ctx).Table(q.Table).
			Where(fmt.Sprintf("LOWER(%s) = ?", q.Column), strings.ToLower(slug))
		if q.ExceptKey != nil && q.KeyColumn != "" {
			tx = tx.Where(fmt.Sprintf("%s <> ?", q.KeyColumn), q.ExceptKey)
		}
		var count int64
		if err := tx.Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return slug, nil
		}
		suffix := fmt.Sprintf("-%d", i)
		slug = trimForSuffix(root, suffix) + suffix
	}
	return "", fmt.Errorf("no free slug for %q", base)
}

// trimForSuffix keeps base+suffix within SlugMaxLen.
func trimForSuffix(base, suffix string) string {
	keep := SlugMaxLen - len(suffix)
	rs := []rune(base)
	if len(rs) > keep {
		rs = rs[:keep]
	}
	out := strings.Trim(string(rs), "-")
	if out == "" {
		out = "x"
	}
	return out
}
