package main

import (
	"errors"
	"fmt"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/contacts"
	"github.com/tartampluch/go-contactbook/internal/engine"
)

var errRecordNotFound = errors.New(config.ErrRecordNotFound)

// reportedError marks a failure the command already explained to the user.
// runMain only sets the exit code for it.
type reportedError struct{ err error }

func (e reportedError) Error() string { return e.err.Error() }

func (e reportedError) Unwrap() error { return e.err }

// ListCmd prints every record page by page.
type ListCmd struct {
	PageSize int `help:"${help_page_size}" short:"n" default:"${default_page}"`
}

func (c *ListCmd) Run(app *appContext) error {
	book, err := app.loadBook()
	if err != nil {
		return err
	}
	printPages(app, book.IterateBy(c.PageSize))
	return nil
}

// ShowCmd prints one record and the days left to its birthday.
type ShowCmd struct {
	Name string `arg:"" help:"${help_name}"`
}

func (c *ShowCmd) Run(app *appContext) error {
	book, err := app.loadBook()
	if err != nil {
		return err
	}

	rec, ok := book.Find(c.Name)
	if !ok {
		fmt.Fprintln(app.out, app.tr.Msg(config.TKeyNotFound, map[string]any{"Name": c.Name}))
		return reportedError{fmt.Errorf("%w: %q", errRecordNotFound, c.Name)}
	}

	fmt.Fprintln(app.out, rec)
	printDaysLeft(app, rec)
	return nil
}

// UpcomingCmd lists birthdays within the next Days days.
type UpcomingCmd struct {
	Days int `help:"${help_days}" short:"d" default:"${default_upcoming}"`
}

func (c *UpcomingCmd) Run(app *appContext) error {
	book, err := app.loadBook()
	if err != nil {
		return err
	}

	upcoming := book.Upcoming(c.Days)
	if len(upcoming) == 0 {
		fmt.Fprintln(app.out, app.tr.Msg(config.TKeyNoUpcoming, map[string]any{"Days": c.Days}))
		return nil
	}
	for _, u := range upcoming {
		fmt.Fprintln(app.out, app.tr.Plural(config.TKeyDaysLeft, u.Days, map[string]any{
			"Name": u.Record.Name().Value(),
			"Days": u.Days,
		}))
	}
	return nil
}

// VCardCmd exports the book as vCard 4.0 on stdout.
type VCardCmd struct{}

func (c *VCardCmd) Run(app *appContext) error {
	book, err := app.loadBook()
	if err != nil {
		return err
	}
	return engine.EncodeVCards(book, app.out)
}

// CalendarCmd exports birthdays as iCalendar on stdout.
type CalendarCmd struct{}

func (c *CalendarCmd) Run(app *appContext) error {
	book, err := app.loadBook()
	if err != nil {
		return err
	}
	gen := &engine.Generator{Clock: app.clock}
	_, _, err = gen.GenerateCalendar(book, app.out)
	return err
}

func printPages(app *appContext, it *contacts.Iterator) {
	empty := true
	for page := range it.Pages() {
		empty = false
		fmt.Fprintln(app.out, app.tr.Msg(config.TKeyPageHeader, map[string]any{"Number": page.Number}))
		fmt.Fprintln(app.out, page)
	}
	if empty {
		fmt.Fprintln(app.out, app.tr.Msg(config.TKeyEmptyBook, nil))
	}
}

func printDaysLeft(app *appContext, rec *contacts.Record) {
	name := rec.Name().Value()
	days, ok := rec.DaysToBirthday()
	if !ok {
		fmt.Fprintln(app.out, app.tr.Msg(config.TKeyNoBirthday, map[string]any{"Name": name}))
		return
	}
	fmt.Fprintln(app.out, app.tr.Plural(config.TKeyDaysLeft, days, map[string]any{"Name": name, "Days": days}))
}
