// Package format renders numbers for on-screen labels.
package format

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Int formats v with comma thousands separators, e.g. 1,234,567.
func Int(v int) string {
	return printer.Sprintf("%d", v)
}

// Percent formats a proportion as a whole percentage, e.g. 0.256 -> "26%".
func Percent(p float64) string {
	return fmt.Sprintf("%.0f%%", 100*p)
}
