package engine

import "time"

// BirthdayEntry is the calendar-side view of a contact with a birthday.
type BirthdayEntry struct {
	// UID is the record's stable identifier.
	UID string

	// Name is the record name.
	Name string

	// DateOfBirth is the stored birthday at midnight UTC.
	DateOfBirth time.Time

	// NextOccurrence is the birthday in the current or next year.
	NextOccurrence time.Time

	// AgeNext is the age the person will turn at NextOccurrence.
	AgeNext int
}
