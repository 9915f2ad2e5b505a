package journal

import (
	"strings"

	"github.com/pkg/errors"
)

// Level is the granularity at which the current selection is interpreted.
type Level string

const (
	// LevelYear selects a whole year.
	LevelYear Level = "year"
	// LevelMonth selects a month within a year.
	LevelMonth Level = "month"
	// LevelDate selects a single day. It is the default.
	LevelDate Level = "date"
)

// AllLevels returns the supported levels from coarse to fine.
func AllLevels() []Level {
	return []Level{LevelYear, LevelMonth, LevelDate}
}

// ParseLevel converts a string to a Level. The empty string maps to LevelDate.
func ParseLevel(raw string) (Level, error) {
	l := Level(strings.ToLower(strings.TrimSpace(raw)))
	switch l {
	case "", "day":
		return LevelDate, nil
	case LevelYear, LevelMonth, LevelDate:
		return l, nil
	}
	return LevelDate, errors.Wrapf(ErrInvalidLevel, "%q", raw)
}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelYear, LevelMonth, LevelDate:
		return true
	}
	return false
}

func (l Level) String() string {
	return string(l)
}
