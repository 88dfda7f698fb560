package sanitizer

import (
	"strings"

	"github.com/tartampluch/go-contactbook/internal/config"
)

var phoneReplacer = newPhoneReplacer()

func newPhoneReplacer() *strings.Replacer {
	pairs := make([]string, 0, len(config.PhoneStripChars)*2)
	for _, c := range config.PhoneStripChars {
		pairs = append(pairs, c, "")
	}
	return strings.NewReplacer(pairs...)
}

// Phone trims surrounding whitespace, drops a single leading "+" and removes
// every parenthesis, hyphen and space.
func Phone(raw string) string {
	phone := strings.TrimSpace(raw)
	phone = strings.TrimPrefix(phone, config.PhonePrefixPlus)
	return phoneReplacer.Replace(phone)
}
