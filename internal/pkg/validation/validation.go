package validation

import (
	"regexp"
	"unicode"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Fullname: letters, spaces, hyphens, apostrophes only.
var fullnameRe = regexp.MustCompile(`^[A-Za-z\s\-']+$`)

// ContractNumberRe matches allocated contract numbers, e.g. CTR-000123.
var ContractNumberRe = regexp.MustCompile(`^[A-Z]+-\d{6}$`)

func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func IsValidFullname(fullname string) bool {
	return fullname != "" && fullnameRe.MatchString(fullname)
}

// IsValidTaxNumber accepts national tax/ID numbers: 7 to 12 characters,
// digits with an optional trailing check letter (e.g. 12345678K).
func IsValidTaxNumber(s string) bool {
	if len(s) < 7 || len(s) > 12 {
		return false
	}
	for i, r := range s {
		if unicode.IsDigit(r) {
			continue
		}
		if i == len(s)-1 && unicode.IsLetter(r) {
			continue
		}
		return false
	}
	return true
}

func IsValidContractNumber(s string) bool {
	return ContractNumberRe.MatchString(s)
}
