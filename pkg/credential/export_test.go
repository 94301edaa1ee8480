package credential

import "time"

// SetClock replaces the store clock in tests.
func (s *SQLiteStore) SetClock(now func() time.Time) {
	s.now = now
}
