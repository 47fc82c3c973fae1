package checksum

// Countries with a letter as check character.

var cyOdd = [10]int{1, 0, 5, 7, 9, 13, 15, 17, 19, 21}

func isCYFirst(c byte) bool {
	switch c {
	case '0', '1', '3', '4', '5', '9':
		return true
	}
	return false
}

// IsValidCY checks a Cypriot body: 8 digits and a check letter.
// The first digit is one of 0, 1, 3, 4, 5, 9 and the body may not start with 12.
func IsValidCY(body string) bool {
	if len(body) != 9 || !isCYFirst(body[0]) || !allNum(body, 1, 8) || !isLetterOrNum(body[8]) {
		return false
	}
	if number(body, 0, 2) == 12 {
		return false
	}
	sum := cyOdd[toInt(body[0])] + toInt(body[1]) +
		cyOdd[toInt(body[2])] + toInt(body[3]) +
		cyOdd[toInt(body[4])] + toInt(body[5]) +
		cyOdd[toInt(body[6])] + toInt(body[7])
	return byte('A'+sum%26) == body[8]
}

var ieFormats = []format{
	{name: "old_style", match: isValidIEOldStyle},
	{name: "new_style_8", match: isValidIENewStyle8},
	{name: "new_style_9", match: isValidIENewStyle9},
}

// IsValidIE checks an Irish body in one of three formats, tried in order:
// old style (digit, letter or '+' or '*', 5 digits, check letter),
// new style with 7 digits and a check letter, and new style with an
// additional trailing letter A-I folded into the sum.
func IsValidIE(body string) bool {
	_, ok := firstFormat(body, ieFormats)
	return ok
}

func isIESecond(c byte) bool {
	return (c >= 'A' && c <= 'Z') || c == '+' || c == '*'
}

func isIECheck(c byte) bool {
	return c >= 'A' && c <= 'W'
}

func isIENinth(c byte) bool {
	return c >= 'A' && c <= 'I'
}

// ieCheckChar maps a remainder mod 23 to A-V, with 0 mapped to W.
func ieCheckChar(r int) byte {
	if r == 0 {
		return 'W'
	}
	return byte('A' + r - 1)
}

func isValidIEOldStyle(body string) bool {
	if len(body) != 8 || !isNum(body[0]) || !isIESecond(body[1]) || !allNum(body, 2, 7) || !isIECheck(body[7]) {
		return false
	}
	r := (weightedSum(body, 2, 7, 6, 5, 4, 3) + toInt(body[0])*2) % 23
	return body[7] == ieCheckChar(r)
}

func isValidIENewStyle8(body string) bool {
	if len(body) != 8 || !allNum(body, 0, 7) || !isIECheck(body[7]) {
		return false
	}
	r := weightedSum(body, 0, 8, 7, 6, 5, 4, 3, 2) % 23
	return body[7] == ieCheckChar(r)
}

func isValidIENewStyle9(body string) bool {
	if len(body) != 9 || !allNum(body, 0, 7) || !isIECheck(body[7]) || !isIENinth(body[8]) {
		return false
	}
	extra := int(body[8]-'A') + 1
	r := (weightedSum(body, 0, 8, 7, 6, 5, 4, 3, 2) + extra*9) % 23
	return body[7] == ieCheckChar(r)
}
