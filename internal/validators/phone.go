package validators

import (
	"regexp"
	"strings"
)

var nonDigits = regexp.MustCompile(`\D`)

// IsPhone accepts a blank value or 10 to 15 digits once separators are
// stripped. Blank means "no phone on file".
func IsPhone(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return true
	}
	digits := nonDigits.ReplaceAllString(phone, "")
	return len(digits) >= 10 && len(digits) <= 15
}
