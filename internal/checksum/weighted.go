package checksum

// Countries whose check digit is a weighted digit sum reduced modulo 10 or 11.

// IsValidAT checks an Austrian body: 'U' followed by 8 digits.
func IsValidAT(body string) bool {
	if len(body) != 9 || body[0] != 'U' || !allNum(body, 1, 9) {
		return false
	}
	r := doubled(body[2]) + doubled(body[4]) + doubled(body[6])
	check := (10 - (r+toInt(body[1])+toInt(body[3])+toInt(body[5])+toInt(body[7])+4)%10) % 10
	return toInt(body[8]) == check
}

// IsValidDK checks a Danish body: 8 digits, no leading zero, weighted sum divisible by 11.
func IsValidDK(body string) bool {
	if len(body) != 8 || !isNum1to9(body[0]) || !allNum(body, 1, 8) {
		return false
	}
	return weightedSum(body, 0, 2, 7, 6, 5, 4, 3, 2, 1)%11 == 0
}

// IsValidEE checks an Estonian body: 9 digits, check digit tops the sum up to a multiple of 10.
func IsValidEE(body string) bool {
	if len(body) != 9 || !allNum(body, 0, 9) {
		return false
	}
	sum := weightedSum(body, 0, 3, 7, 1, 3, 7, 1, 3, 7)
	ceiling := (sum + 9) / 10 * 10
	return ceiling-sum == toInt(body[8])
}

// IsValidFI checks a Finnish body: 8 digits, modulo 11 with remainder 10 rejected.
func IsValidFI(body string) bool {
	if len(body) != 8 || !allNum(body, 0, 8) {
		return false
	}
	r := 11 - weightedSum(body, 0, 7, 9, 10, 5, 8, 4, 2)%11
	if r == 10 {
		return false
	}
	if r == 11 {
		r = 0
	}
	return r == toInt(body[7])
}

// IsValidHU checks a Hungarian body: 8 digits, modulo 10.
func IsValidHU(body string) bool {
	if len(body) != 8 || !allNum(body, 0, 8) {
		return false
	}
	rest := weightedSum(body, 0, 9, 7, 3, 1, 9, 7, 3) % 10
	check := 0
	if rest != 0 {
		check = 10 - rest
	}
	return check == toInt(body[7])
}

// IsValidIT checks an Italian body: 11 digits with a Luhn style check digit.
// Digits 8-10 are the office code: 001-100, 120, 121, 888 or 999.
func IsValidIT(body string) bool {
	if len(body) != 11 || !allNum(body, 0, 11) {
		return false
	}
	office := number(body, 7, 10)
	if !((office > 0 && office < 101) || office == 120 || office == 121 || office == 999 || office == 888) {
		return false
	}
	s1 := toInt(body[0]) + toInt(body[2]) + toInt(body[4]) + toInt(body[6]) + toInt(body[8])
	s2 := doubled(body[1]) + doubled(body[3]) + doubled(body[5]) + doubled(body[7]) + doubled(body[9])
	check := (10 - (s1+s2)%10) % 10
	return check == toInt(body[10])
}

// IsValidPL checks a Polish body: 10 digits, modulo 11 with remainder 10 rejected.
func IsValidPL(body string) bool {
	if len(body) != 10 || !allNum(body, 0, 10) {
		return false
	}
	check := weightedSum(body, 0, 6, 5, 7, 2, 3, 4, 5, 6, 7) % 11
	if check == 10 {
		return false
	}
	return check == toInt(body[9])
}

// IsValidPT checks a Portuguese body: 9 digits, no leading zero, modulo 11
// with remainders 10 and 11 mapped to 0.
func IsValidPT(body string) bool {
	if len(body) != 9 || !isNum1to9(body[0]) || !allNum(body, 1, 9) {
		return false
	}
	r := 11 - weightedSum(body, 0, 9, 8, 7, 6, 5, 4, 3, 2)%11
	if r == 10 || r == 11 {
		r = 0
	}
	return r == toInt(body[8])
}

// IsValidSE checks a Swedish body: 10 digit organisation number with a Luhn
// check digit, followed by a 01-94 suffix.
func IsValidSE(body string) bool {
	if len(body) != 12 || !allNum(body, 0, 12) {
		return false
	}
	suffix := number(body, 10, 12)
	if suffix < 1 || suffix > 94 {
		return false
	}
	r := doubled(body[0]) + doubled(body[2]) + doubled(body[4]) + doubled(body[6]) + doubled(body[8])
	check := (10 - (r+toInt(body[1])+toInt(body[3])+toInt(body[5])+toInt(body[7]))%10) % 10
	return check == toInt(body[9])
}

// IsValidSI checks a Slovenian body: 8 digits, no leading zero, modulo 11
// with remainder 0 rejected and remainder 1 mapped to 0.
func IsValidSI(body string) bool {
	if len(body) != 8 || !allNum(body, 0, 8) {
		return false
	}
	if v := number(body, 0, 7); v < 1_000_000 || v > 9_999_999 {
		return false
	}
	r := 11 - weightedSum(body, 0, 8, 7, 6, 5, 4, 3, 2)%11
	if r == 11 {
		return false
	}
	if r == 10 {
		r = 0
	}
	return r == toInt(body[7])
}
