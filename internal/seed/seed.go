// Package seed loads an AddressBook from a YAML description.
package seed

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/contacts"
	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a seed file.
type File struct {
	Contacts []Contact `yaml:"contacts"`
}

// Contact describes one record.
type Contact struct {
	Name     string   `yaml:"name"`
	Birthday string   `yaml:"birthday"`
	Phones   []string `yaml:"phones"`
}

// Load reads and builds the seed file at path.
func Load(path string, opts ...contacts.RecordOption) (*contacts.AddressBook, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrSeedRead, err)
	}

	book, err := Decode(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}

	slog.Debug(config.MsgSeedLoaded,
		config.LogKeyComponent, config.CompSeed,
		config.LogKeyFile, path,
		config.LogKeyCount, book.Len())
	return book, nil
}

// Decode parses a seed document and validates every contact through the
// Record constructors. The first invalid contact aborts the load.
func Decode(r io.Reader, opts ...contacts.RecordOption) (*contacts.AddressBook, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", config.ErrSeedParse, err)
	}

	book := contacts.NewAddressBook()
	for i, c := range f.Contacts {
		rec, err := c.build(opts...)
		if err == nil {
			err = book.AddRecord(rec)
		}
		if err != nil {
			return nil, fmt.Errorf("%s #%d: %w", config.ErrSeedContact, i+1, err)
		}
	}
	return book, nil
}

func (c Contact) build(opts ...contacts.RecordOption) (*contacts.Record, error) {
	all := append([]contacts.RecordOption{contacts.WithBirthday(c.Birthday)}, opts...)
	rec, err := contacts.NewRecord(c.Name, all...)
	if err != nil {
		return nil, err
	}
	for _, p := range c.Phones {
		if err := rec.AddPhone(p); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
