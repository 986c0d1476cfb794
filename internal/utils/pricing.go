package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC time
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %v", err)
	}
	return t, nil
}

// RentalDays returns the number of chargeable days between two dates.
// The end date is exclusive: Jan 1 to Jan 4 is 3 days. Partial days
// round up.
func RentalDays(startDate, endDate string) (int32, error) {
	start, err := ParseDate(startDate)
	if err != nil {
		return 0, fmt.Errorf("invalid start date: %w", err)
	}
	end, err := ParseDate(endDate)
	if err != nil {
		return 0, fmt.Errorf("invalid end date: %w", err)
	}
	if end.Before(start) {
		return 0, fmt.Errorf("end date must be >= start date")
	}

	diff := end.Sub(start)
	days := int32(diff / (24 * time.Hour))
	if diff%(24*time.Hour) > 0 {
		days++
	}
	return days, nil
}

// RentalTotalCents calculates the total rental cost as days * daily price
func RentalTotalCents(startDate, endDate string, pricePerDayCents int32) (int64, error) {
	days, err := RentalDays(startDate, endDate)
	if err != nil {
		return 0, err
	}
	return int64(days) * int64(pricePerDayCents), nil
}
