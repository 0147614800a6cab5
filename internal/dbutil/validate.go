package dbutil

import (
	"regexp"
	"strings"
)

var (
	emailRe    = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe    = regexp.MustCompile(`^(\+?[1-9][0-9]{9,14}|0[0-9]{9,10})$`)
	nicknameRe = regexp.MustCompile(`^[가-힣a-zA-Z0-9_]{2,20}$`)
)

// IsValidEmail reports whether email looks like an address. The check is the
// loose local@domain.tld shape, not a full RFC 5322 parse.
func IsValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

// IsValidPhoneNumber reports whether phone is an acceptable phone number.
// Blank is valid: the field is optional. Spaces and hyphens are stripped
// before matching.
func IsValidPhoneNumber(phone string) bool {
	if strings.TrimSpace(phone) == "" {
		return true
	}
	clean := strings.NewReplacer(" ", "", "-", "").Replace(phone)
	return phoneRe.MatchString(clean)
}

// IsValidNickname reports whether nickname is 2-20 characters drawn from
// Hangul syllables, ASCII alphanumerics, and underscore.
func IsValidNickname(nickname string) bool {
	return nicknameRe.MatchString(nickname)
}

// passwordSymbols is the closed set of symbols accepted in passwords.
const passwordSymbols = "@$!%*?&"

// IsValidPassword reports whether password is at least 8 characters and
// contains at least one lowercase letter, one uppercase letter, one digit,
// and one symbol from the allowed set. Characters outside
// [A-Za-z0-9@$!%*?&] make the password invalid.
func IsValidPassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return false
		}
	}
	return lower && upper && digit && symbol
}
