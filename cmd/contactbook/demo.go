package main

import (
	"fmt"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/contacts"
)

// DemoCmd replays a scripted session against a fresh book.
type DemoCmd struct {
	PageSize int `help:"${help_page_size}" short:"n" default:"4"`
}

type demoContact struct {
	name   string
	phones []string
}

var demoContacts = []demoContact{
	{"Jane", []string{"9876543210"}},
	{"Janzzze", []string{"9876543210"}},
	{"Olena", []string{"(050) 111-22-33"}},
	{"Petro", []string{"+0672223344"}},
	{"Iryna", []string{"0933334455", "0933334455"}},
	{"Mykola", nil},
}

func (c *DemoCmd) Run(app *appContext) error {
	book := contacts.NewAddressBook()

	john, err := contacts.NewRecord("John", contacts.WithClock(app.clock))
	if err != nil {
		return err
	}
	for _, p := range []string{"1234567890", "5555555555"} {
		if err := john.AddPhone(p); err != nil {
			return err
		}
	}
	if err := john.SetBirthday("16.11.1987"); err != nil {
		return err
	}
	printDaysLeft(app, john)

	if err := book.AddRecord(john); err != nil {
		return err
	}
	for _, dc := range demoContacts {
		rec, err := contacts.NewRecord(dc.name, contacts.WithClock(app.clock))
		if err != nil {
			return err
		}
		for _, p := range dc.phones {
			if err := rec.AddPhone(p); err != nil {
				return err
			}
		}
		if err := book.AddRecord(rec); err != nil {
			return err
		}
	}

	// Invalid input is rejected, not stored.
	if _, err := contacts.NewRecord("J123ane"); err != nil {
		fmt.Fprintln(app.out, err)
	}

	for _, rec := range book.Records() {
		fmt.Fprintln(app.out, rec)
	}

	found, _ := book.Find("John")
	if err := found.EditPhone("1234567890", "1112223333"); err != nil {
		return err
	}
	fmt.Fprintln(app.out, app.tr.Msg(config.TKeyDemoEdited, nil))
	fmt.Fprintln(app.out, found)

	if phone, ok := found.FindPhone("5555555555"); ok {
		fmt.Fprintln(app.out, app.tr.Msg(config.TKeyFoundPhone, map[string]any{
			"Name":  found.Name(),
			"Phone": phone,
		}))
	}

	printPages(app, book.IterateBy(c.PageSize))

	book.Delete("Jane")
	fmt.Fprintln(app.out, app.tr.Msg(config.TKeyDemoDeleted, map[string]any{"Name": "Jane"}))
	return nil
}
