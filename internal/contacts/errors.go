package contacts

import (
	"errors"

	"github.com/tartampluch/go-contactbook/internal/config"
)

// Sentinel errors returned by field constructors and Record/AddressBook
// operations. Returned errors wrap them with the offending input, so callers
// should compare with errors.Is.
var (
	ErrInvalidName        = errors.New(config.ErrInvalidName)
	ErrInvalidPhone       = errors.New(config.ErrInvalidPhone)
	ErrInvalidDate        = errors.New(config.ErrInvalidDate)
	ErrDuplicateName      = errors.New(config.ErrDuplicateName)
	ErrPhoneNotFound      = errors.New(config.ErrPhoneNotFound)
	ErrPhoneRemovalFailed = errors.New(config.ErrPhoneRemovalFailed)
)
