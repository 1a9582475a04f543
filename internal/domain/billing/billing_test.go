package billing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	snapshots := []decimal.Decimal{
		decimal.NewFromInt(100),
		decimal.NewFromInt(150),
		decimal.NewFromInt(200),
	}

	assert.True(t, Total(snapshots).Equal(decimal.NewFromInt(450)))
}

func TestTotalEmpty(t *testing.T) {
	assert.True(t, Total(nil).Equal(decimal.Zero))
}

func TestTotalRoundsOnceAtTheEnd(t *testing.T) {
	snapshots := []decimal.Decimal{
		decimal.RequireFromString("10.005"),
		decimal.RequireFromString("10.005"),
	}

	// 20.01 summed first, not 10.01 + 10.01.
	assert.Equal(t, "20.01", Total(snapshots).StringFixed(2))
}

func TestMonthKey(t *testing.T) {
	ts := time.Date(2025, time.March, 9, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "2025-03", MonthKey(ts))
}

func TestFirstOfMonth(t *testing.T) {
	ts := time.Date(2025, time.March, 9, 14, 30, 12, 99, time.UTC)
	assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), FirstOfMonth(ts))
}

func TestTrailingYearStart(t *testing.T) {
	now := time.Date(2025, time.March, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, time.March, 9, 0, 0, 0, 0, time.UTC), TrailingYearStart(now))
}

func TestIsValidStatus(t *testing.T) {
	assert.True(t, IsValidStatus("unpaid"))
	assert.True(t, IsValidStatus("paid"))
	assert.True(t, IsValidStatus("void"))

	assert.False(t, IsValidStatus("pending"))
	assert.False(t, IsValidStatus(""))
	assert.False(t, IsValidStatus("PAID"))
}
