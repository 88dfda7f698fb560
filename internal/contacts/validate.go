package contacts

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/tartampluch/go-contactbook/internal/config"
)

var validate = validator.New()

// checkRule runs a single validator tag against value and maps any failure
// onto sentinel.
func checkRule(value, rule string, sentinel error) error {
	if err := validate.Var(value, rule); err != nil {
		return fmt.Errorf("%w: %q", sentinel, value)
	}
	return nil
}

func validateName(raw string) error {
	return checkRule(raw, config.RuleName, ErrInvalidName)
}

func validatePhone(sanitized string) error {
	return checkRule(sanitized, config.RulePhone, ErrInvalidPhone)
}
