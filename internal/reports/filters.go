package reports

import (
	"errors"
	"time"
)

// GetDateRange resolves a preset or custom range into [start, end].
// startStr/endStr use "2006-01-02" and only apply to the custom preset.
func GetDateRange(dateRange, startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now().UTC()

	switch dateRange {
	case DateRangeDaily:
		start := now.Truncate(24 * time.Hour)
		return start, start.Add(24*time.Hour - time.Second), nil
	case DateRangeWeekly:
		end := now.Truncate(24 * time.Hour).Add(24*time.Hour - time.Second)
		start := end.AddDate(0, 0, -6).Truncate(24 * time.Hour)
		return start, end, nil
	case DateRangeMonthly:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		return start, start.AddDate(0, 1, 0).Add(-time.Second), nil
	case DateRangeYearly:
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		return start, time.Date(now.Year(), 12, 31, 23, 59, 59, 0, time.UTC), nil
	case DateRangeCustom:
		if startStr == "" || endStr == "" {
			return time.Time{}, time.Time{}, errors.New("start_date and end_date required for custom range")
		}
		start, err := time.ParseInLocation("2006-01-02", startStr, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end, err := time.ParseInLocation("2006-01-02", endStr, time.UTC)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = end.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		if start.After(end) {
			return time.Time{}, time.Time{}, errors.New("start_date must be before end_date")
		}
		return start, end, nil
	default:
		return GetDateRange(DateRangeWeekly, "", "")
	}
}
