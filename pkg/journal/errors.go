package journal

import (
	"github.com/pkg/errors"
)

var (
	// ErrDuplicatePeriod is returned when an entry already exists for the
	// day or month an add operation targets.
	ErrDuplicatePeriod = errors.New("journal: period already has an entry")
	// ErrLastEntryForPeriod is returned when a delete would leave a day
	// without entries.
	ErrLastEntryForPeriod = errors.New("journal: cannot delete the last entry of a day")
	// ErrNotFound is returned when an operation references an unknown entry.
	ErrNotFound = errors.New("journal: entry not found")
	// ErrInvalidLevel is returned for unknown selection levels.
	ErrInvalidLevel = errors.New("journal: invalid selection level")
)

// Reason maps an operation error to a stable machine-readable string.
// It returns "" for nil and "unknown" for errors outside the taxonomy.
func Reason(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrDuplicatePeriod):
		return "duplicate_period"
	case errors.Is(err, ErrLastEntryForPeriod):
		return "last_entry_for_period"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidLevel):
		return "invalid_level"
	default:
		return "unknown"
	}
}
