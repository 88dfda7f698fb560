package contacts

import (
	"fmt"
	"time"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/sanitizer"
)

// Field is implemented by every validated value a Record holds.
// Values are only obtainable through their constructors, so a Field is
// always valid.
type Field interface {
	fmt.Stringer
	IsZero() bool
}

var (
	_ Field = Name{}
	_ Field = Phone{}
	_ Field = Birthday{}
)

// Name is a non-empty, letters-only contact name. It is the key of a Record
// inside an AddressBook.
type Name struct {
	value string
}

// NewName validates raw and returns it as a Name.
func NewName(raw string) (Name, error) {
	if err := validateName(raw); err != nil {
		return Name{}, err
	}
	return Name{value: raw}, nil
}

func (n Name) Value() string { return n.value }
func (n Name) String() string { return n.value }
func (n Name) IsZero() bool { return n.value == "" }

// Phone is a sanitized 10-digit phone number.
type Phone struct {
	value string
}

// NewPhone sanitizes raw and accepts it only if exactly ten digits remain.
func NewPhone(raw string) (Phone, error) {
	sanitized := sanitizer.Phone(raw)
	if err := validatePhone(sanitized); err != nil {
		return Phone{}, fmt.Errorf("%w (from %q)", err, raw)
	}
	return Phone{value: sanitized}, nil
}

func (p Phone) Value() string { return p.value }
func (p Phone) String() string { return p.value }
func (p Phone) IsZero() bool { return p.value == "" }

// Birthday holds a calendar date as Unix seconds at midnight UTC, or nothing.
// The zero value is an unset birthday.
type Birthday struct {
	epoch int64
	set   bool
}

// NewBirthday parses raw against config.DateLayouts. An empty input yields an
// unset Birthday rather than an error.
func NewBirthday(raw string) (Birthday, error) {
	if raw == "" {
		return Birthday{}, nil
	}
	epoch, ok := sanitizer.DateToEpoch(raw)
	if !ok {
		return Birthday{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return Birthday{epoch: epoch, set: true}, nil
}

// BirthdayFromDate builds a Birthday from the calendar date of t.
func BirthdayFromDate(t time.Time) Birthday {
	y, m, d := t.Date()
	return Birthday{epoch: time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix(), set: true}
}

// Epoch returns the stored timestamp and whether a birthday is set.
func (b Birthday) Epoch() (int64, bool) { return b.epoch, b.set }

func (b Birthday) IsZero() bool { return !b.set }

// Date returns the birthday as midnight UTC. It is the zero time when unset.
func (b Birthday) Date() time.Time {
	if !b.set {
		return time.Time{}
	}
	return sanitizer.EpochToDate(b.epoch)
}

// NextOccurrence returns the first month/day of the birthday on or after the
// calendar date of now, as midnight UTC. Feb 29 falls on March 1st in non-leap
// years. It is the zero time when unset.
func (b Birthday) NextOccurrence(now time.Time) time.Time {
	if !b.set {
		return time.Time{}
	}
	born := b.Date()
	today := calendarDate(now)

	// time.Date normalizes Feb 29 to March 1st in non-leap years.
	next := time.Date(today.Year(), born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
	if next.Before(today) {
		next = time.Date(today.Year()+1, born.Month(), born.Day(), 0, 0, 0, 0, time.UTC)
	}
	return next
}

// calendarDate maps the local date of t to midnight UTC so day arithmetic is
// immune to DST shifts.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// String formats the birthday as YYYY-MM-DD, or "" when unset.
func (b Birthday) String() string {
	if !b.set {
		return ""
	}
	return b.Date().Format(config.DateFormatDisplay)
}
