package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	t.Run("Valid date", func(t *testing.T) {
		date, err := ParseDate("2024-01-15")
		assert.NoError(t, err)
		assert.Equal(t, 2024, date.Year())
		assert.Equal(t, 1, int(date.Month()))
		assert.Equal(t, 15, date.Day())
	})

	t.Run("Invalid format", func(t *testing.T) {
		_, err := ParseDate("2024/01/15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid date format")
	})

	t.Run("Invalid month", func(t *testing.T) {
		_, err := ParseDate("2024-13-15")
		assert.Error(t, err)
	})
}

func TestRentalDays(t *testing.T) {
	t.Run("End date exclusive", func(t *testing.T) {
		// Jan 1 to Jan 4 = 3 days
		days, err := RentalDays("2024-01-01", "2024-01-04")
		assert.NoError(t, err)
		assert.Equal(t, int32(3), days)
	})

	t.Run("Same day", func(t *testing.T) {
		days, err := RentalDays("2024-01-15", "2024-01-15")
		assert.NoError(t, err)
		assert.Equal(t, int32(0), days)
	})

	t.Run("Cross month boundary", func(t *testing.T) {
		days, err := RentalDays("2024-01-25", "2024-02-05")
		assert.NoError(t, err)
		assert.Equal(t, int32(11), days)
	})

	t.Run("Leap year February", func(t *testing.T) {
		days, err := RentalDays("2024-02-28", "2024-03-01")
		assert.NoError(t, err)
		assert.Equal(t, int32(2), days)
	})

	t.Run("Cross year boundary", func(t *testing.T) {
		days, err := RentalDays("2023-12-25", "2024-01-10")
		assert.NoError(t, err)
		assert.Equal(t, int32(16), days)
	})

	t.Run("End before start", func(t *testing.T) {
		_, err := RentalDays("2024-01-20", "2024-01-15")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "end date must be >= start date")
	})

	t.Run("Invalid start date", func(t *testing.T) {
		_, err := RentalDays("not-a-date", "2024-01-15")
		assert.Error(t, err)
	})
}

func TestRentalTotalCents(t *testing.T) {
	t.Run("Three days at ten dollars", func(t *testing.T) {
		total, err := RentalTotalCents("2024-01-01", "2024-01-04", 1000)
		assert.NoError(t, err)
		assert.Equal(t, int64(3000), total)
	})

	t.Run("Same day is free", func(t *testing.T) {
		total, err := RentalTotalCents("2024-01-15", "2024-01-15", 1000)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("Long rental does not overflow", func(t *testing.T) {
		total, err := RentalTotalCents("2020-01-01", "2025-01-01", 2147483)
		assert.NoError(t, err)
		assert.Equal(t, int64(1827)*int64(2147483), total)
	})

	t.Run("Invalid dates", func(t *testing.T) {
		_, err := RentalTotalCents("", "2024-01-04", 1000)
		assert.Error(t, err)
	})
}
