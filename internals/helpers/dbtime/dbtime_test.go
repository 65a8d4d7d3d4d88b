package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestParseDate(t *testing.T) {
	d := ParseDate("2024-03-09")
	assert.Equal(t, "2024-03-09", Format(d))
	assert.True(t, time.Time(ParseDate("09/03/2024")).IsZero())
	assert.Nil(t, ParseDatePtr(nil))
	empty := " "
	assert.Nil(t, ParseDatePtr(&empty))
}

func TestParseClock(t *testing.T) {
	assert.Equal(t, datatypes.NewTime(8, 30, 0, 0), ParseClock("08:30"))
	assert.Equal(t, datatypes.NewTime(13, 5, 9, 0), ParseClock("13:05:09"))
	assert.True(t, ParseClock("14:00") > ParseClock("08:00"))
}

func TestDayArithmetic(t *testing.T) {
	start := ParseDate("2024-01-30")
	end := ParseDate("2024-02-02")
	assert.Equal(t, 4, DaysInclusive(start, end))
	assert.Equal(t, 1, DaysInclusive(start, start))
	assert.True(t, Before(start, end))

	due := ParseDate("2024-02-01")
	assert.Equal(t, 3, DaysLate(due, time.Date(2024, 2, 4, 18, 0, 0, 0, time.Local)))
	assert.Equal(t, 0, DaysLate(due, time.Date(2024, 1, 20, 0, 0, 0, 0, time.Local)))
}
