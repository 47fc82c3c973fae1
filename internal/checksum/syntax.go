package checksum

// Syntax only rules. These countries have no checksum in the published rule
// set, so only length and character classes are checked and everything of the
// right shape passes. Rules registered from this file report SyntaxOnly.

// IsValidCZ checks a Czech body: 8 to 10 digits.
func IsValidCZ(body string) bool {
	return len(body) >= 8 && len(body) <= 10 && allNum(body, 0, len(body))
}

// IsValidEL checks a Greek body: 9 digits. Registered for both EL and GR.
func IsValidEL(body string) bool {
	return len(body) == 9 && allNum(body, 0, 9)
}

// IsValidES checks a Spanish body: 9 characters where the first and the last
// may be letters, but not both, and the 7 in between are digits.
func IsValidES(body string) bool {
	if len(body) != 9 || !isLetterOrNum(body[0]) || !allNum(body, 1, 8) || !isLetterOrNum(body[8]) {
		return false
	}
	return !(isLetter(body[0]) && isLetter(body[8]))
}

// IsValidFR checks a French body: 2 letters or digits followed by 9 digits.
func IsValidFR(body string) bool {
	return len(body) == 11 && isLetterOrNum(body[0]) && isLetterOrNum(body[1]) && allNum(body, 2, 11)
}

// IsValidHR checks a Croatian body: 11 digits.
func IsValidHR(body string) bool {
	return len(body) == 11 && allNum(body, 0, 11)
}

// IsValidLV checks a Latvian body: 11 digits.
func IsValidLV(body string) bool {
	return len(body) == 11 && allNum(body, 0, 11)
}

// IsValidMT checks a Maltese body: 8 digits.
func IsValidMT(body string) bool {
	return len(body) == 8 && allNum(body, 0, 8)
}

// IsValidRO checks a Romanian body: 2 to 10 digits.
func IsValidRO(body string) bool {
	return len(body) >= 2 && len(body) <= 10 && allNum(body, 0, len(body))
}
