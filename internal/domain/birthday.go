package domain

import (
	"fmt"
	"time"
)

// BirthdayLayout is the only accepted input shape: day.month.year.
const BirthdayLayout = "02.01.2006"

// Birthday is a validated calendar date. The zero value means "not set";
// construct via NewBirthday.
type Birthday struct {
	date time.Time
}

// NewBirthday parses raw strictly against DD.MM.YYYY.
func NewBirthday(raw string) (Birthday, error) {
	t, err := time.Parse(BirthdayLayout, raw)
	if err != nil {
		return Birthday{}, &OpError{
			Op:   "birthday.new",
			Kind: KindInvalidFormat,
			Err:  fmt.Errorf("birthday %q must match DD.MM.YYYY: %w", raw, err),
		}
	}
	return Birthday{date: t}, nil
}

// Date exposes the underlying calendar date for arithmetic.
func (b Birthday) Date() time.Time { return b.date }

func (b Birthday) IsZero() bool { return b.date.IsZero() }

// Equal compares by calendar date.
func (b Birthday) Equal(other Birthday) bool { return b.date.Equal(other.date) }

func (b Birthday) String() string { return b.date.Format(BirthdayLayout) }
