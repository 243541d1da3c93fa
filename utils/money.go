package utils

import "strconv"

// ParseMoney coerces a display price such as "1 150 ₴" or "€65" to an
// integer by dropping every non-digit byte. A value with no digits parses
// to 0. The truncation of decimals and signs is intentional: stored totals
// are display strings and reports must match what the site always computed.
func ParseMoney(s string) int {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		return 0
	}
	return n
}
