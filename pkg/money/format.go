// Package money formats VND amounts the way the storefront displays them.
package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Suffix is appended to every formatted amount.
const Suffix = "đ"

var printer = message.NewPrinter(language.Vietnamese)

// FormatVND renders 15000000 as "15.000.000đ".
func FormatVND(amount int64) string {
	return printer.Sprintf("%d", amount) + Suffix
}
