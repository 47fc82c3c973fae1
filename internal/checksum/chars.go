package checksum

// Character classes are ASCII only. Bodies are inspected byte by byte, so any
// multi-byte rune simply fails the class test of its position.

func isNum(c byte) bool {
	return c >= '0' && c <= '9'
}

func isNum1to9(c byte) bool {
	return c >= '1' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isLetterOrNum(c byte) bool {
	return isLetter(c) || isNum(c)
}

// allNum reports whether s[from:to] consists of digits only.
func allNum(s string, from, to int) bool {
	for i := from; i < to; i++ {
		if !isNum(s[i]) {
			return false
		}
	}
	return true
}

func toInt(c byte) int {
	return int(c - '0')
}

// number reads s[from:to] as a decimal number. Callers check the digit class first.
// int64 holds the ten digit SK body that overflows 32 bits.
func number(s string, from, to int) int64 {
	var n int64
	for i := from; i < to; i++ {
		n = n*10 + int64(s[i]-'0')
	}
	return n
}

// weightedSum returns sum(weights[i] * digit(s[from+i])).
func weightedSum(s string, from int, weights ...int) int {
	sum := 0
	for i, w := range weights {
		sum += w * toInt(s[from+i])
	}
	return sum
}

// doubled reduces a digit d to d/5 + (2d mod 10), the digit sum of 2d.
func doubled(c byte) int {
	n := toInt(c)
	return n/5 + (n*2)%10
}
