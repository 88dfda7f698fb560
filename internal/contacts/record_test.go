package contacts_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contactbook/internal/contacts"
)

// MockClock controls time for deterministic testing.
type MockClock struct {
	CurrentTime time.Time
}

func (m MockClock) Now() time.Time {
	return m.CurrentTime
}

func newRecord(t *testing.T, name string, opts ...contacts.RecordOption) *contacts.Record {
	t.Helper()
	r, err := contacts.NewRecord(name, opts...)
	require.NoError(t, err)
	return r
}

func phoneValues(r *contacts.Record) []string {
	var out []string
	for _, p := range r.Phones() {
		out = append(out, p.Value())
	}
	return out
}

func TestNewRecord(t *testing.T) {
	r := newRecord(t, "John")
	assert.Equal(t, "John", r.Name().Value())
	assert.Empty(t, r.Phones())
	assert.True(t, r.Birthday().IsZero())

	_, err := contacts.NewRecord("J0hn")
	assert.ErrorIs(t, err, contacts.ErrInvalidName)

	_, err = contacts.NewRecord("John", contacts.WithBirthday("not a date"))
	assert.ErrorIs(t, err, contacts.ErrInvalidDate)

	r = newRecord(t, "John", contacts.WithBirthday("1987-11-16"))
	assert.Equal(t, "1987-11-16", r.Birthday().String())
}

func TestRecord_AddPhone(t *testing.T) {
	r := newRecord(t, "John")

	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddPhone("(555) 555-5555"))
	require.NoError(t, r.AddPhone("1234567890"), "duplicates are allowed")

	err := r.AddPhone("12345")
	assert.ErrorIs(t, err, contacts.ErrInvalidPhone)
	assert.Equal(t, []string{"1234567890", "5555555555", "1234567890"}, phoneValues(r))
}

func TestRecord_Phones_ReturnsCopy(t *testing.T) {
	r := newRecord(t, "John")
	require.NoError(t, r.AddPhone("1234567890"))

	phones := r.Phones()
	phones[0] = contacts.Phone{}

	assert.Equal(t, []string{"1234567890"}, phoneValues(r))
}

func TestRecord_SetBirthday_KeepsPreviousOnError(t *testing.T) {
	r := newRecord(t, "John", contacts.WithBirthday("16.11.1987"))

	err := r.SetBirthday("31.02.1990")
	assert.ErrorIs(t, err, contacts.ErrInvalidDate)
	assert.Equal(t, "1987-11-16", r.Birthday().String())

	require.NoError(t, r.SetBirthday(""))
	assert.True(t, r.Birthday().IsZero())

	require.NoError(t, r.SetBirthday("1990-01-01"))
	r.ClearBirthday()
	assert.True(t, r.Birthday().IsZero())
}

func TestRecord_RemovePhone(t *testing.T) {
	r := newRecord(t, "John")
	for _, p := range []string{"1234567890", "5555555555", "1234567890"} {
		require.NoError(t, r.AddPhone(p))
	}

	require.NoError(t, r.RemovePhone("1234567890"))
	assert.Equal(t, []string{"5555555555"}, phoneValues(r), "every match is removed")

	err := r.RemovePhone("0000000000")
	assert.ErrorIs(t, err, contacts.ErrPhoneRemovalFailed)
	assert.Equal(t, []string{"5555555555"}, phoneValues(r))
}

func TestRecord_EditPhone(t *testing.T) {
	r := newRecord(t, "John")
	for _, p := range []string{"1111111111", "1234567890", "5555555555", "1234567890"} {
		require.NoError(t, r.AddPhone(p))
	}

	require.NoError(t, r.EditPhone("1234567890", "111-222-3333"))
	assert.Equal(t,
		[]string{"1111111111", "1112223333", "5555555555", "1234567890"},
		phoneValues(r),
		"only the first match is replaced, in place")

	err := r.EditPhone("9999999999", "1112223333")
	assert.ErrorIs(t, err, contacts.ErrPhoneNotFound)

	err = r.EditPhone("5555555555", "bad")
	assert.ErrorIs(t, err, contacts.ErrInvalidPhone)
	assert.Len(t, r.Phones(), 4)
	assert.Equal(t, "5555555555", r.Phones()[2].Value(), "failed edit leaves the phone untouched")
}

func TestRecord_FindPhone(t *testing.T) {
	r := newRecord(t, "John")
	require.NoError(t, r.AddPhone("5555555555"))

	p, ok := r.FindPhone("5555555555")
	assert.True(t, ok)
	assert.Equal(t, "5555555555", p.Value())

	_, ok = r.FindPhone("1234567890")
	assert.False(t, ok)
}

// TestRecord_DaysToBirthday verifies the next-occurrence arithmetic around
// today, year boundaries and leap days.
func TestRecord_DaysToBirthday(t *testing.T) {
	// Reference "Now": June 15th, 2025 (Non-Leap Year)
	now := time.Date(2025, 6, 15, 22, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		birthday string
		want     int
	}{
		{"Today", "1990-06-15", 0},
		{"Tomorrow", "1990-06-16", 1},
		{"Later this year", "1987-11-16", 154},
		{"End of year", "1990-12-31", 199},
		{"Already passed", "1990-01-01", 200},
		{"Yesterday", "1990-06-14", 364},
		{"Leapling in non-leap year", "2000-02-29", 259},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newRecord(t, "John",
				contacts.WithClock(MockClock{CurrentTime: now}),
				contacts.WithBirthday(tt.birthday))

			days, ok := r.DaysToBirthday()
			require.True(t, ok)
			assert.Equal(t, tt.want, days)
			assert.GreaterOrEqual(t, days, 0)
			assert.Less(t, days, 366)
		})
	}
}

func TestRecord_DaysToBirthday_LeapYearContext(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := newRecord(t, "Leap",
		contacts.WithClock(MockClock{CurrentTime: now}),
		contacts.WithBirthday("2000-02-29"))

	days, ok := r.DaysToBirthday()
	require.True(t, ok)
	assert.Equal(t, 59, days, "Feb 29 exists in 2024")
}

func TestRecord_DaysToBirthday_LocalCalendarDate(t *testing.T) {
	// 01:30 on June 16th in UTC+3 is still June 15th in UTC.
	loc := time.FixedZone("UTC+3", 3*60*60)
	now := time.Date(2025, 6, 16, 1, 30, 0, 0, loc)
	r := newRecord(t, "John",
		contacts.WithClock(MockClock{CurrentTime: now}),
		contacts.WithBirthday("1990-06-16"))

	days, _ := r.DaysToBirthday()
	assert.Equal(t, 0, days, "the local calendar date decides")
}

func TestRecord_DaysToBirthday_Unset(t *testing.T) {
	r := newRecord(t, "John")
	_, ok := r.DaysToBirthday()
	assert.False(t, ok)
}

func TestRecord_String(t *testing.T) {
	r := newRecord(t, "John")
	require.NoError(t, r.AddPhone("1234567890"))
	require.NoError(t, r.AddPhone("5555555555"))
	assert.Equal(t, "Contact name: John, phones: 1234567890; 5555555555", r.String())

	require.NoError(t, r.SetBirthday("16.11.1987"))
	require.NoError(t, r.EditPhone("1234567890", "1112223333"))
	assert.Equal(t,
		"Contact name: John, phones: 1112223333; 5555555555, birthday: 1987-11-16",
		r.String())

	empty := newRecord(t, "Jane")
	assert.Equal(t, "Contact name: Jane, phones: ", empty.String())
}

func TestRecord_UID(t *testing.T) {
	a := newRecord(t, "John")
	b := newRecord(t, "John")
	c := newRecord(t, "Jane")

	assert.Equal(t, a.UID(), b.UID(), "UID must be stable for the same name")
	assert.NotEqual(t, a.UID(), c.UID())
	assert.Len(t, a.UID(), 36)
}
