package domain

import "fmt"

const unknownDescription = "Unknown"

// Period selects the ranking time window for leaderboard queries.
// The underlying value is the wire format expected by the hub API's
// period query parameter.
type Period string

// Available leaderboard periods.
const (
	// PeriodAllTime ranks users over the lifetime of the platform.
	PeriodAllTime Period = "all_time"

	// PeriodMonth ranks users over the last 30 days.
	PeriodMonth Period = "30_days"

	// PeriodWeek ranks users over the last 7 days.
	PeriodWeek Period = "7_days"
)

// ParsePeriod maps user input to a Period. It accepts both the wire
// values (all_time, 30_days, 7_days) and the short CLI aliases
// (all, month, week). Unrecognised input fails with ErrInvalidInput
// before any network call is made.
func ParsePeriod(s string) (Period, error) {
	switch s {
	case "all", string(PeriodAllTime):
		return PeriodAllTime, nil
	case "month", string(PeriodMonth):
		return PeriodMonth, nil
	case "week", string(PeriodWeek):
		return PeriodWeek, nil
	default:
		return "", fmt.Errorf("%w: invalid period %q (valid: all_time, 30_days, 7_days)", ErrInvalidInput, s)
	}
}

// IsValid returns true if the period is recognised.
func (p Period) IsValid() bool {
	switch p {
	case PeriodAllTime, PeriodMonth, PeriodWeek:
		return true
	default:
		return false
	}
}

// String returns the wire representation.
func (p Period) String() string {
	return string(p)
}

// Description returns a human-readable description of the window.
func (p Period) Description() string {
	switch p {
	case PeriodAllTime:
		return "All Time"
	case PeriodMonth:
		return "Last 30 Days"
	case PeriodWeek:
		return "Last 7 Days"
	default:
		return unknownDescription
	}
}

// AllPeriods returns all available leaderboard periods.
func AllPeriods() []Period {
	return []Period{
		PeriodAllTime,
		PeriodMonth,
		PeriodWeek,
	}
}
