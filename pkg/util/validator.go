package util

import (
	"regexp"
	"strings"
)

var (
	emailPattern   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	zipcodePattern = regexp.MustCompile(`^[0-9]{8}$`)
)

// IsEmailValid verifies the email has a local@domain.tld shape
// IsEmailValid 验证邮箱是否符合 local@domain.tld 格式
// Purely syntactic: no whitespace, exactly one "@", at least one "." after it
// 仅做语法校验：不含空白字符，只有一个 "@"，其后至少有一个 "."
func IsEmailValid(email string) bool {
	return emailPattern.MatchString(email)
}

// IsValidZipcode reports whether zipcode is exactly 8 decimal digits
// IsValidZipcode 判断 CEP 是否恰好为 8 位数字
func IsValidZipcode(zipcode string) bool {
	return zipcodePattern.MatchString(zipcode)
}

// FormatZipcode strips every character that is not a decimal digit
// FormatZipcode 去除所有非数字字符
func FormatZipcode(zipcode string) string {
	var b strings.Builder
	b.Grow(len(zipcode))
	for i := 0; i < len(zipcode); i++ {
		if c := zipcode[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}
