package services

import "fmt"

// NormalizePhone validates a raw phone entry and returns the display form
// stored in the database: "8885551234" becomes "+1(888)555-1234". Exactly
// ten digits are required; anything else is rejected before normalization.
func NormalizePhone(raw string) (string, error) {
	if len(raw) != 10 {
		return "", fmt.Errorf("phone number must be exactly 10 digits")
	}
	for _, r := range raw {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("phone number must contain only digits")
		}
	}
	return fmt.Sprintf("+1(%s)%s-%s", raw[0:3], raw[3:6], raw[6:10]), nil
}
