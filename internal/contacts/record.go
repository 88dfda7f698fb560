package contacts

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/tartampluch/go-contactbook/internal/config"
)

var uidNamespace = uuid.NewSHA1(uuid.NameSpaceDNS, []byte(config.UIDNamespace))

// Record is one contact: a name, an ordered list of phones and an optional
// birthday. The name never changes after creation.
type Record struct {
	name     Name
	birthday Birthday
	phones   []Phone
	clock    Clock
}

// RecordOption configures a Record at construction time.
type RecordOption func(*Record) error

// WithBirthday sets the birthday from a raw date string.
func WithBirthday(raw string) RecordOption {
	return func(r *Record) error {
		return r.SetBirthday(raw)
	}
}

// WithClock replaces the clock used by DaysToBirthday.
func WithClock(c Clock) RecordOption {
	return func(r *Record) error {
		r.clock = c
		return nil
	}
}

// NewRecord creates a Record with no phones. It fails if the name or any
// option is invalid; no partially built Record is returned.
func NewRecord(name string, opts ...RecordOption) (*Record, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}

	r := &Record{name: n, clock: RealClock{}}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *Record) Name() Name { return r.name }

func (r *Record) Birthday() Birthday { return r.birthday }

// Phones returns a copy of the phone list in insertion order.
func (r *Record) Phones() []Phone {
	out := make([]Phone, len(r.phones))
	copy(out, r.phones)
	return out
}

// UID is a stable identifier derived from the name.
func (r *Record) UID() string {
	return uuid.NewSHA1(uidNamespace, []byte(r.name.Value())).String()
}

// AddPhone appends a phone. Duplicates are allowed.
func (r *Record) AddPhone(raw string) error {
	p, err := NewPhone(raw)
	if err != nil {
		return err
	}
	r.phones = append(r.phones, p)
	return nil
}

// SetBirthday replaces the birthday. An empty string clears it. On error the
// previous birthday is kept.
func (r *Record) SetBirthday(raw string) error {
	b, err := NewBirthday(raw)
	if err != nil {
		return err
	}
	r.birthday = b
	return nil
}

func (r *Record) ClearBirthday() {
	r.birthday = Birthday{}
}

// RemovePhone removes every phone equal to value.
func (r *Record) RemovePhone(value string) error {
	kept := make([]Phone, 0, len(r.phones))
	for _, p := range r.phones {
		if p.Value() != value {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(r.phones) {
		return fmt.Errorf("%w: %q", ErrPhoneRemovalFailed, value)
	}
	r.phones = kept
	return nil
}

// EditPhone replaces the first phone equal to oldValue with newRaw, keeping
// its position.
func (r *Record) EditPhone(oldValue, newRaw string) error {
	idx := r.indexOf(oldValue)
	if idx < 0 {
		return fmt.Errorf("%w: %q", ErrPhoneNotFound, oldValue)
	}
	p, err := NewPhone(newRaw)
	if err != nil {
		return err
	}
	r.phones[idx] = p
	return nil
}

// FindPhone returns the first phone equal to value.
func (r *Record) FindPhone(value string) (Phone, bool) {
	idx := r.indexOf(value)
	if idx < 0 {
		return Phone{}, false
	}
	return r.phones[idx], true
}

func (r *Record) indexOf(value string) int {
	for i, p := range r.phones {
		if p.Value() == value {
			return i
		}
	}
	return -1
}

// DaysToBirthday returns the number of days until the next occurrence of the
// birthday, 0 when it is today. ok is false when no birthday is set.
func (r *Record) DaysToBirthday() (days int, ok bool) {
	if !r.birthday.set {
		return 0, false
	}
	now := r.clock.Now()
	next := r.birthday.NextOccurrence(now)
	return int(next.Sub(calendarDate(now)).Hours()) / config.HoursPerDay, true
}

// String renders the record for display, e.g.
// "Contact name: John, phones: 1112223333; 5555555555, birthday: 1987-11-16".
func (r *Record) String() string {
	values := make([]string, len(r.phones))
	for i, p := range r.phones {
		values[i] = p.Value()
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, config.RecordFormat, r.name, strings.Join(values, config.PhoneSeparator))
	if r.birthday.set {
		fmt.Fprintf(&sb, config.RecordBirthdayFormat, r.birthday)
	}
	return sb.String()
}
