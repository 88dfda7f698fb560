package contacts

import (
	"iter"
	"log/slog"
	"math"
	"slices"
	"strings"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Page is one step of a paged iteration.
type Page struct {
	Number  int // 1-based
	Records []*Record
}

// String renders each record on its own line.
func (p Page) String() string {
	lines := make([]string, len(p.Records))
	for i, r := range p.Records {
		lines[i] = r.String()
	}
	return strings.Join(lines, config.PageSeparator)
}

// Iterator walks a snapshot of an AddressBook page by page. Several
// iterators over the same book are independent of each other.
type Iterator struct {
	records []*Record
	cursor  int
	size    int
	served  int
}

// Cursor is the index of the next unread record.
func (it *Iterator) Cursor() int { return it.cursor }

func (it *Iterator) PageSize() int { return it.size }

// SetPageSize changes the number of records per page for subsequent steps.
// Non-positive sizes fall back to config.DefaultPageSize.
func (it *Iterator) SetPageSize(size int) {
	if size <= 0 {
		size = config.DefaultPageSize
	}
	it.size = size
}

// Reset moves the cursor back to the first record.
func (it *Iterator) Reset() {
	it.cursor = 0
	it.served = 0
}

// Next returns the next page. The cursor always advances by the page size,
// even when the last page is short. ok is false once the cursor is past the
// last record. The returned page owns its Records slice.
func (it *Iterator) Next() (page Page, ok bool) {
	if it.cursor > len(it.records)-1 {
		return Page{}, false
	}

	remaining := len(it.records) - it.cursor
	end := it.cursor + min(it.size, remaining)
	it.served++
	page = Page{Number: it.served, Records: slices.Clone(it.records[it.cursor:end])}

	if it.size > math.MaxInt-it.cursor {
		it.cursor = math.MaxInt
	} else {
		it.cursor += it.size
	}

	slog.Debug(config.MsgPageServed,
		config.LogKeyComponent, config.CompBook,
		config.LogKeyCursor, it.cursor,
		config.LogKeyPageSize, it.size,
		config.LogKeyCount, len(page.Records))
	return page, true
}

// Pages adapts the remaining steps to a range-over-func sequence.
func (it *Iterator) Pages() iter.Seq[Page] {
	return func(yield func(Page) bool) {
		for {
			page, ok := it.Next()
			if !ok || !yield(page) {
				return
			}
		}
	}
}
