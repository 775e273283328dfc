package util

import (
	"fmt"
	"strconv"
	"strings"
)

// CurrencySymbol is appended to every formatted amount
const CurrencySymbol = "₽"

// FormatPrice formats whole currency units grouped by thousands, e.g. "12 900 ₽"
func FormatPrice(amount int) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}

	digits := strconv.Itoa(amount)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return fmt.Sprintf("%s%s %s", sign, strings.Join(groups, " "), CurrencySymbol)
}

// Truncate shortens s to at most width runes, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	runes := []rune(s)
	if width <= 0 || len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
