package checksum

// Countries with several body formats. Each format checks its own shape;
// the first accepting format wins.

// mod11WithRetry computes a modulo 11 check digit. A remainder of 10 is
// retried with the secondary weights, and a second 10 maps to 0.
func mod11WithRetry(body string, primary, secondary []int) int {
	if r := weightedSum(body, 0, primary...) % 11; r != 10 {
		return r
	}
	if r := weightedSum(body, 0, secondary...) % 11; r != 10 {
		return r
	}
	return 0
}

var bgFormats = []format{
	{name: "legal_entity", match: isValidBGLegalEntity},
	{name: "physical_person", match: isValidBGPhysicalPerson},
	{name: "foreigner", match: isValidBGForeigner},
	{name: "other", match: isValidBGOther},
}

// IsValidBG checks a Bulgarian body: 9 digits for legal entities or 10 digits
// for physical persons, foreigners and all other taxpayers.
func IsValidBG(body string) bool {
	_, ok := firstFormat(body, bgFormats)
	return ok
}

func isValidBGLegalEntity(body string) bool {
	if len(body) != 9 || !allNum(body, 0, 9) {
		return false
	}
	check := mod11WithRetry(body, []int{1, 2, 3, 4, 5, 6, 7, 8}, []int{3, 4, 5, 6, 7, 8, 9, 10})
	return check == toInt(body[8])
}

// isValidBGPhysicalPerson checks an EGN. Digits 3-4 hold the birth month,
// offset by 20 or 40 for other centuries, digits 5-6 the day. Months outside
// 1-12 are not checked.
func isValidBGPhysicalPerson(body string) bool {
	if len(body) != 10 || !allNum(body, 0, 10) {
		return false
	}
	month := number(body, 2, 4) % 20
	day := number(body, 4, 6)
	switch month {
	case 2:
		if day < 1 || day > 29 {
			return false
		}
	case 4, 6, 9, 11:
		if day < 1 || day > 30 {
			return false
		}
	case 1, 3, 5, 7, 8, 10, 12:
		if day < 1 || day > 31 {
			return false
		}
	}
	check := weightedSum(body, 0, 2, 4, 8, 5, 10, 9, 7, 3, 6) % 11
	if check == 10 {
		check = 0
	}
	return check == toInt(body[9])
}

func isValidBGForeigner(body string) bool {
	if len(body) != 10 || !allNum(body, 0, 10) {
		return false
	}
	return weightedSum(body, 0, 21, 19, 17, 13, 11, 9, 7, 3, 1)%10 == toInt(body[9])
}

func isValidBGOther(body string) bool {
	if len(body) != 10 || !allNum(body, 0, 10) {
		return false
	}
	r := 11 - weightedSum(body, 0, 4, 3, 2, 7, 6, 5, 4, 3, 2)%11
	if r == 10 {
		return false
	}
	if r == 11 {
		r = 0
	}
	return r == toInt(body[9])
}

var ltFormats = []format{
	{name: "legal_person", match: isValidLTLegalPerson},
	{name: "temporary_taxpayer", match: isValidLTTemporary},
}

// IsValidLT checks a Lithuanian body: 9 digits for legal persons or 12 digits
// for temporarily registered taxpayers. The second to last digit is always 1.
func IsValidLT(body string) bool {
	_, ok := firstFormat(body, ltFormats)
	return ok
}

func isValidLTLegalPerson(body string) bool {
	if len(body) != 9 || !allNum(body, 0, 7) || body[7] != '1' || !isNum(body[8]) {
		return false
	}
	check := mod11WithRetry(body, []int{1, 2, 3, 4, 5, 6, 7, 8}, []int{3, 4, 5, 6, 7, 8, 9, 1})
	return check == toInt(body[8])
}

func isValidLTTemporary(body string) bool {
	if len(body) != 12 || !allNum(body, 0, 10) || body[10] != '1' || !isNum(body[11]) {
		return false
	}
	check := mod11WithRetry(body,
		[]int{1, 2, 3, 4, 5, 6, 7, 8, 9, 1, 2},
		[]int{3, 4, 5, 6, 7, 8, 9, 1, 2, 3, 4})
	return check == toInt(body[11])
}

var gbFormats = []format{
	{name: "government_department", match: isValidGBGovernment},
	{name: "health_authority", match: isValidGBHealth},
	{name: "standard", match: isValidGBStandard},
}

// IsValidGB checks a United Kingdom body: GD000-GD499 for government
// departments, HA500-HA999 for health authorities, otherwise 9 or 12 digits
// with a modulo 97 check accepted in both the old and the 9755 scheme.
func IsValidGB(body string) bool {
	_, ok := firstFormat(body, gbFormats)
	return ok
}

func isValidGBGovernment(body string) bool {
	if len(body) != 5 || body[0] != 'G' || body[1] != 'D' || !allNum(body, 2, 5) {
		return false
	}
	n := number(body, 2, 5)
	return n >= 0 && n <= 499
}

func isValidGBHealth(body string) bool {
	if len(body) != 5 || body[0] != 'H' || body[1] != 'A' || !allNum(body, 2, 5) {
		return false
	}
	n := number(body, 2, 5)
	return n >= 500 && n <= 999
}

func isValidGBStandard(body string) bool {
	if (len(body) != 9 && len(body) != 12) || !allNum(body, 0, len(body)) {
		return false
	}
	switch v := number(body, 0, 7); {
	case v >= 100_000 && v <= 999_999,
		v >= 9_490_001 && v <= 9_700_000,
		v >= 9_990_001 && v <= 9_999_999:
		return false
	}
	if len(body) == 12 && number(body, 9, 12) <= 0 {
		return false
	}
	if number(body, 0, 9) <= 0 {
		return false
	}
	sum := weightedSum(body, 0, 8, 7, 6, 5, 4, 3, 2) + int(number(body, 7, 9))
	return sum%97 == 0 || (sum+55)%97 == 0
}
