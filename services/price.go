package services

import (
	"fmt"
	"strings"
)

// PriceFromParts assembles a decimal price string from the two separate
// prompts the add-item flow collects: cents first, then dollars. "50" and
// "4" become "4.50". The two-prompt order is a literal input contract
// inherited from the paper order forms, not a general currency parser.
func PriceFromParts(cents, dollars string) (string, error) {
	if !allDigits(dollars) || dollars == "" {
		return "", fmt.Errorf("dollars must be digits")
	}
	if !allDigits(cents) || cents == "" || len(cents) > 2 {
		return "", fmt.Errorf("cents must be one or two digits")
	}
	if len(cents) == 1 {
		cents = "0" + cents
	}
	dollars = strings.TrimLeft(dollars, "0")
	if dollars == "" {
		dollars = "0"
	}
	return dollars + "." + cents, nil
}

// PriceToCents parses a stored decimal price string into whole cents.
// Accepts "4", "4.5" and "4.50".
func PriceToCents(price string) (int64, error) {
	dollars := price
	cents := "00"
	if i := strings.IndexByte(price, '.'); i >= 0 {
		dollars, cents = price[:i], price[i+1:]
	}
	if dollars == "" {
		dollars = "0"
	}
	if !allDigits(dollars) || !allDigits(cents) || cents == "" || len(cents) > 2 {
		return 0, fmt.Errorf("malformed price %q", price)
	}
	if len(cents) == 1 {
		cents += "0"
	}
	var total int64
	for _, r := range dollars {
		total = total*10 + int64(r-'0')
	}
	total *= 100
	for _, r := range cents {
		total = total*10 + int64(r-'0')
	}
	return total, nil
}

// FormatCents renders a cent total back into a decimal price string.
func FormatCents(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
