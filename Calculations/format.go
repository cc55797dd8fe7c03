package Calculations

import (
	"fmt"
	"strings"
	"time"
)

// DateLayoutBR is the display layout used everywhere outward-facing.
const DateLayoutBR = "02/01/2006"

// ParseDateBR parses a dd/mm/yyyy date.
func ParseDateBR(value string) (time.Time, error) {
	return time.Parse(DateLayoutBR, value)
}

// FormatDateBR renders a date as dd/mm/yyyy.
func FormatDateBR(t time.Time) string {
	return t.Format(DateLayoutBR)
}

// FormatBRL renders an amount as Brazilian Real, e.g. "R$ 1.234,56".
func FormatBRL(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	cents := fmt.Sprintf("%.2f", amount)
	parts := strings.SplitN(cents, ".", 2)

	integer := parts[0]
	var grouped []string
	for len(integer) > 3 {
		grouped = append([]string{integer[len(integer)-3:]}, grouped...)
		integer = integer[:len(integer)-3]
	}
	grouped = append([]string{integer}, grouped...)

	formatted := "R$ " + strings.Join(grouped, ".") + "," + parts[1]
	if negative {
		formatted = "-" + formatted
	}
	return formatted
}
