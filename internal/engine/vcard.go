package engine

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/emersion/go-vcard"
	"github.com/tartampluch/go-contactbook/internal/config"
	"github.com/tartampluch/go-contactbook/internal/contacts"
)

const (
	uidPrefix = "urn:uuid:"
	telPrefix = "tel:"
)

// EncodeVCards writes every record of book as a vCard 4.0, in book order.
func EncodeVCards(book *contacts.AddressBook, w io.Writer) error {
	enc := vcard.NewEncoder(w)
	for _, r := range book.Records() {
		if err := enc.Encode(recordToCard(r)); err != nil {
			return fmt.Errorf("%s: %w", config.ErrVCardEncode, err)
		}
	}
	return nil
}

func recordToCard(r *contacts.Record) vcard.Card {
	card := make(vcard.Card)
	name := r.Name().Value()

	card.SetValue(vcard.FieldFormattedName, name)
	card.SetName(&vcard.Name{GivenName: name})
	card.SetValue(vcard.FieldUID, uidPrefix+r.UID())

	for _, p := range r.Phones() {
		card.Add(vcard.FieldTelephone, &vcard.Field{
			Value:  p.Value(),
			Params: vcard.Params{vcard.ParamType: {config.VCardTypeCell}},
		})
	}

	if bday := r.Birthday(); !bday.IsZero() {
		card.SetValue(vcard.FieldBirthday, bday.Date().Format(config.DateFormatVCard))
	}

	vcard.ToV4(card)
	return card
}

// ImportStats summarizes a DecodeVCards run.
type ImportStats struct {
	Processed int
	Imported  int
	Skipped   int
}

// DecodeVCards reads cards from r and adds them to book. Cards that are
// malformed or fail field validation are skipped. Names already present in
// the book are skipped too and reported through the returned error, which
// wraps contacts.ErrDuplicateName once per duplicate.
func DecodeVCards(r io.Reader, book *contacts.AddressBook, opts ...contacts.RecordOption) (ImportStats, error) {
	dec := vcard.NewDecoder(r)
	var stats ImportStats
	var dupes []error

	for {
		card, err := dec.Decode()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("%s: %w", config.ErrVCardDecode, err)
		}
		stats.Processed++

		rec, err := cardToRecord(card, opts...)
		if err != nil {
			stats.Skipped++
			slog.Warn(config.MsgSkippedCard,
				config.LogKeyComponent, config.CompEngine,
				config.LogKeyError, err)
			continue
		}

		if err := book.AddRecord(rec); err != nil {
			stats.Skipped++
			dupes = append(dupes, err)
			continue
		}
		stats.Imported++
	}

	slog.Debug(config.MsgImportDone,
		config.LogKeyComponent, config.CompEngine,
		slog.Group(config.LogKeyStats,
			slog.Int(config.LogKeyTotal, stats.Processed),
			slog.Int(config.LogKeyImported, stats.Imported),
			slog.Int(config.LogKeySkipped, stats.Skipped),
		),
	)
	return stats, errors.Join(dupes...)
}

// cardToRecord validates a card through the Record constructors.
// Name Strategy: FN (Formatted) > N (Given name).
func cardToRecord(card vcard.Card, opts ...contacts.RecordOption) (*contacts.Record, error) {
	name := card.Value(vcard.FieldFormattedName)
	if name == "" {
		if n := card.Name(); n != nil {
			name = n.GivenName
		}
	}

	if bday := card.Value(vcard.FieldBirthday); bday != "" {
		opts = append(slices.Clip(opts), contacts.WithBirthday(bday))
	}

	rec, err := contacts.NewRecord(name, opts...)
	if err != nil {
		return nil, err
	}

	for _, tel := range card.Values(vcard.FieldTelephone) {
		if err := rec.AddPhone(strings.TrimPrefix(tel, telPrefix)); err != nil {
			return nil, err
		}
	}
	return rec, nil
}
