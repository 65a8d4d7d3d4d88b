package helper

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "annual-sports-day-2024", Slugify("  Annual Sports Day — 2024!! ", 0))
	assert.Equal(t, "cafe-creme", Slugify("Café Crème", 0))
	assert.Equal(t, "item", Slugify("***", 0))
	assert.Equal(t, "abc", Slugify("abc-def", 4))
}

func TestTrimForSuffix(t *testing.T) {
	long := strings.Repeat("a", SlugMaxLen)
	got := trimForSuffix(long, "-12") + "-12"
	assert.Len(t, got, SlugMaxLen)
	assert.Equal(t, "x", trimForSuffix("---", "-2"))
}
