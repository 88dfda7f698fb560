package contacts

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/tartampluch/go-contactbook/internal/config"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// AddressBook is a collection of Records keyed by name. Iteration follows
// insertion order.
//
// An AddressBook is not safe for concurrent use; callers sharing one must
// serialize access themselves.
type AddressBook struct {
	records map[string]*Record
	order   []string
	lang    language.Tag
}

// BookOption configures an AddressBook.
type BookOption func(*AddressBook)

// WithLanguage sets the collation language used to order names in Upcoming.
func WithLanguage(tag language.Tag) BookOption {
	return func(b *AddressBook) {
		b.lang = tag
	}
}

// NewAddressBook returns an empty book.
func NewAddressBook(opts ...BookOption) *AddressBook {
	b := &AddressBook{
		records: make(map[string]*Record),
		lang:    language.English,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// AddRecord inserts r under its name. It fails with ErrDuplicateName if the
// name is already taken.
func (b *AddressBook) AddRecord(r *Record) error {
	key := r.Name().Value()
	if _, exists := b.records[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateName, key)
	}

	b.records[key] = r
	b.order = append(b.order, key)

	slog.Debug(config.MsgRecordAdded,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyName, key,
		config.LogKeyCount, len(b.order))
	return nil
}

// Find returns the record stored under name.
func (b *AddressBook) Find(name string) (*Record, bool) {
	r, ok := b.records[name]
	return r, ok
}

// Delete removes the record stored under name. Deleting an unknown name is a
// no-op.
func (b *AddressBook) Delete(name string) {
	if _, ok := b.records[name]; !ok {
		return
	}

	delete(b.records, name)
	if i := slices.Index(b.order, name); i >= 0 {
		b.order = slices.Delete(b.order, i, i+1)
	}

	slog.Debug(config.MsgRecordDeleted,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyName, name,
		config.LogKeyCount, len(b.order))
}

func (b *AddressBook) Len() int { return len(b.order) }

// Names returns the record names in insertion order.
func (b *AddressBook) Names() []string {
	return slices.Clone(b.order)
}

// Records returns the records in insertion order.
func (b *AddressBook) Records() []*Record {
	out := make([]*Record, len(b.order))
	for i, name := range b.order {
		out[i] = b.records[name]
	}
	return out
}

// UpcomingBirthday pairs a record with the days left until its birthday.
type UpcomingBirthday struct {
	Record *Record
	Days   int
}

// Upcoming lists records whose next birthday is at most within days away,
// soonest first and then by name.
func (b *AddressBook) Upcoming(within int) []UpcomingBirthday {
	var out []UpcomingBirthday
	for _, r := range b.Records() {
		days, ok := r.DaysToBirthday()
		if !ok || days > within {
			continue
		}
		out = append(out, UpcomingBirthday{Record: r, Days: days})
	}

	col := collate.New(b.lang)
	slices.SortStableFunc(out, func(x, y UpcomingBirthday) int {
		if x.Days != y.Days {
			return x.Days - y.Days
		}
		return col.CompareString(x.Record.Name().Value(), y.Record.Name().Value())
	})
	return out
}

// Iterate starts a paged iteration with config.DefaultPageSize records per
// page.
func (b *AddressBook) Iterate() *Iterator {
	return b.IterateBy(config.DefaultPageSize)
}

// IterateBy starts a paged iteration with size records per page. The
// iterator works on a snapshot of the current records; records added or
// deleted afterwards are not seen by it.
func (b *AddressBook) IterateBy(size int) *Iterator {
	it := &Iterator{records: b.Records()}
	it.SetPageSize(size)
	return it
}
