package repository

import "context"

// CounterRepository issues per-day order numbers. Next must be safe under
// concurrent checkout submissions: two simultaneous calls for the same date
// return distinct numbers.
type CounterRepository interface {
	// Next increments and returns the counter for the given ISO date
	// (YYYY-MM-DD). The first call on a new date returns 1.
	Next(ctx context.Context, date string) (int, error)
}
