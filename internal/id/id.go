// Package id defines the account identifier rules shared by the
// validation pipeline and the snapshot tooling.
package id

// ValidAccountID reports whether s is a well-formed account
// identifier: non-empty, ASCII letters, digits, '-', '.' and '@' only.
func ValidAccountID(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !validAccountIDByte(s[i]) {
			return false
		}
	}
	return true
}

func validAccountIDByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '.' || c == '@':
		return true
	}
	return false
}
