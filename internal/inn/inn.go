// Package inn normalizes Russian tax identifiers (INN) found in imported
// price lists. Normalized values are the grouping key for reconciliation,
// so Normalize must stay deterministic and side-effect free.
package inn

// Normalize strips every non-digit character from raw and reports whether
// the result is a well-formed INN (exactly 10 or 12 digits).
//
// The digit string is kept even when it is malformed so imperfect data can
// still be grouped and tracked; a raw value with no digits at all yields a
// nil normalized value. Both cases are flagged invalid.
func Normalize(raw string) (norm *string, invalid bool) {
	digits := make([]byte, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			digits = append(digits, raw[i])
		}
	}

	if len(digits) == 0 {
		return nil, true
	}

	value := string(digits)
	if len(digits) == 10 || len(digits) == 12 {
		return &value, false
	}
	return &value, true
}

// Valid reports whether raw normalizes to a well-formed 10 or 12 digit INN.
func Valid(raw string) bool {
	_, invalid := Normalize(raw)
	return !invalid
}
