// Package journal holds the production log entry written by the plant
// lifecycle manager for operators.
package journal

import (
	"fmt"
	"strings"
	"time"

	"perfumery/internal/pkg/errs"
)

// Level is the severity of an entry, shared with the audit sink.
type Level string

const (
	LevelInfo    Level = "INFO"
	LevelWarning Level = "WARNING"
	LevelError   Level = "ERROR"
)

// ParseLevel accepts the three levels in any casing.
func ParseLevel(raw string) (Level, error) {
	l := Level(strings.ToUpper(strings.TrimSpace(raw)))
	if err := l.Validate(); err != nil {
		return "", err
	}
	return l, nil
}

func (l Level) Validate() error {
	switch l {
	case LevelInfo, LevelWarning, LevelError:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("level is invalid", fmt.Errorf("%q is not a journal level", string(l)))
	}
}

func (l Level) String() string {
	return string(l)
}

// Entry is one human-readable line of the production log.
type Entry struct {
	level     Level
	message   string
	createdAt time.Time
}

// NewEntry validates and builds an entry.
func NewEntry(level Level, message string, createdAt time.Time) (Entry, error) {
	if err := level.Validate(); err != nil {
		return Entry{}, err
	}
	if strings.TrimSpace(message) == "" {
		return Entry{}, errs.NewValueIsRequiredError("message")
	}
	if createdAt.IsZero() {
		return Entry{}, errs.NewValueIsRequiredError("created at")
	}
	return Entry{level: level, message: message, createdAt: createdAt}, nil
}

func (e Entry) Level() Level         { return e.level }
func (e Entry) Message() string      { return e.message }
func (e Entry) CreatedAt() time.Time { return e.createdAt }

// String renders the entry the way operators read it in the log listing.
func (e Entry) String() string {
	return fmt.Sprintf("%s [%s] %s", e.createdAt.UTC().Format(time.RFC3339), e.level, e.message)
}
