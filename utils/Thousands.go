package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Thousands formats n with English digit grouping, e.g. 1,709,258,584.
func Thousands(n uint64) string {
	return printer.Sprintf("%d", n)
}
