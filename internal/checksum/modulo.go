package checksum

// Countries whose check reduces a multi digit number, or an iterated product chain.

// IsValidBE checks a Belgian body: 10 digits starting with 0, the last two
// digits equal 97 - (first eight digits mod 97).
func IsValidBE(body string) bool {
	if len(body) != 10 || body[0] != '0' || !isNum1to9(body[1]) || !allNum(body, 2, 10) {
		return false
	}
	check := 97 - number(body, 0, 8)%97
	return number(body, 8, 10) == check
}

// IsValidDE checks a German body: 9 digits, no leading zero, ISO 7064 MOD 11,10.
func IsValidDE(body string) bool {
	if len(body) != 9 || !isNum1to9(body[0]) || !allNum(body, 1, 9) {
		return false
	}
	p := 10
	for i := 0; i < 8; i++ {
		m := (toInt(body[i]) + p) % 10
		if m == 0 {
			m = 10
		}
		p = (2 * m) % 11
	}
	check := 11 - p
	if check == 10 {
		check = 0
	}
	return check == toInt(body[8])
}

// IsValidLU checks a Luxembourg body: 8 digits, the last two equal the first six mod 89.
func IsValidLU(body string) bool {
	if len(body) != 8 || !allNum(body, 0, 8) {
		return false
	}
	return number(body, 0, 6)%89 == number(body, 6, 8)
}

// IsValidNL checks a Dutch body: 9 digits, a literal 'B' and a two digit
// branch number other than 00.
func IsValidNL(body string) bool {
	if len(body) != 12 || !allNum(body, 0, 9) || body[9] != 'B' || !allNum(body, 10, 12) {
		return false
	}
	check := weightedSum(body, 0, 9, 8, 7, 6, 5, 4, 3, 2) % 11
	if check == 10 {
		return false
	}
	if number(body, 10, 12) <= 0 {
		return false
	}
	return check == toInt(body[8])
}

// IsValidSK checks a Slovak body: 10 digits divisible by 11. The first digit
// is not zero and the third is one of 2, 3, 4, 7, 8, 9.
func IsValidSK(body string) bool {
	if len(body) != 10 || !isNum1to9(body[0]) || !isNum(body[1]) || !isSKThird(body[2]) || !allNum(body, 3, 10) {
		return false
	}
	return number(body, 0, 10)%11 == 0
}

func isSKThird(c byte) bool {
	switch c {
	case '2', '3', '4', '7', '8', '9':
		return true
	}
	return false
}
