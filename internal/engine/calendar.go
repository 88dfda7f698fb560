package engine

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/emersion/go-ical"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/contacts"
)

// Generator turns an AddressBook into an iCalendar birthday feed.
type Generator struct {
	Clock contacts.Clock // Interface for time mocking.

	// FormatSummary allows callers to inject localized event titles.
	FormatSummary func(name string, age int) string
}

// NewGenerator returns a Generator using the real clock.
func NewGenerator() *Generator {
	return &Generator{Clock: contacts.RealClock{}}
}

// GenerateCalendar writes one event per year (previous, current, next) for
// every record with a birthday. It returns the entries in book order and
// how many birthdays fall today.
func (g *Generator) GenerateCalendar(book *contacts.AddressBook, w io.Writer) ([]BirthdayEntry, int, error) {
	cal := ical.NewCalendar()
	cal.Props.SetText(config.PropVersion, config.ICalVersion)
	cal.Props.SetText(config.PropProdid, config.ICalProdid)
	cal.Props.SetText(config.PropXWRCalName, config.ICalCalName)
	cal.Props.SetText(config.PropCalScale, config.ICalScale)
	cal.Props.SetText(config.PropMethod, config.ICalMethod)

	now := g.Clock.Now()
	dtStampProp := ical.NewProp(config.PropDTStamp)
	dtStampProp.SetDateTime(now.UTC())

	var entries []BirthdayEntry
	today := 0

	for _, r := range book.Records() {
		bday := r.Birthday()
		if bday.IsZero() {
			continue
		}
		birthDate := bday.Date()

		nextOcc, ageNext := calculateNextOccurrence(now, bday)
		entries = append(entries, BirthdayEntry{
			UID:            r.UID(),
			Name:           r.Name().Value(),
			DateOfBirth:    birthDate,
			NextOccurrence: nextOcc,
			AgeNext:        ageNext,
		})

		events, isToday := g.createEvents(r.Name().Value(), birthDate, now, r.UID())
		if isToday {
			today++
		}
		for _, e := range events {
			e.Props.Set(dtStampProp)
			cal.Children = append(cal.Children, e.Component)
		}
	}

	if len(cal.Children) == 0 {
		if _, err := io.WriteString(w, config.StubVCalendar); err != nil {
			return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
		}
		g.logSuccess(0, 0)
		return entries, 0, nil
	}

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return nil, 0, fmt.Errorf("%s: %w", config.ErrICalEncode, err)
	}

	g.logSuccess(len(cal.Children), today)
	return entries, today, nil
}

func (g *Generator) logSuccess(events, today int) {
	slog.Debug(config.MsgGenSuccess,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyEvents, events),
			slog.Int(config.LogKeyCount, today),
		),
	)
}

// calculateNextOccurrence returns the next birthday date relative to now and
// the age reached on it. The date matches what Record.DaysToBirthday counts to.
func calculateNextOccurrence(now time.Time, bday contacts.Birthday) (time.Time, int) {
	next := bday.NextOccurrence(now)
	return next, next.Year() - bday.Date().Year()
}

// createEvents generates all-day events for the previous, current and next
// year, skipping years before the person was born.
func (g *Generator) createEvents(name string, birthDate time.Time, now time.Time, uidBase string) ([]*ical.Event, bool) {
	currentYear := now.Year()
	targetYears := []int{currentYear - 1, currentYear, currentYear + 1}
	loc := now.Location()
	todayYear, todayMonth, todayDay := now.Date()

	var events []*ical.Event
	isToday := false

	for _, y := range targetYears {
		if y < birthDate.Year() {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(config.PropUID, fmt.Sprintf(config.FormatUID, uidBase, y, config.ICalDomain))

		summary := fmt.Sprintf(config.FormatSummary, name)
		if g.FormatSummary != nil {
			summary = g.FormatSummary(name, y-birthDate.Year())
		}
		event.Props.SetText(config.PropSummary, summary)

		eventDate := time.Date(y, birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, loc)
		if y == todayYear && eventDate.Month() == todayMonth && eventDate.Day() == todayDay {
			isToday = true
		}

		dtStartProp := ical.NewProp(config.PropDTStart)
		dtStartProp.SetDate(eventDate)
		event.Props.Set(dtStartProp)

		events = append(events, event)
	}
	return events, isToday
}
