// Package email normalises and checks contact addresses on profiles.
package email

import (
	"net/mail"
	"strings"
)

// Normalize trims whitespace and lowercases the domain part.
func Normalize(addr string) string {
	addr = strings.TrimSpace(addr)
	at := strings.LastIndexByte(addr, '@')
	if at <= 0 {
		return addr
	}
	return addr[:at] + "@" + strings.ToLower(addr[at+1:])
}

// IsValid accepts a bare address with a dotted domain. Display-name forms
// such as "Jane <jane@example.com>" are rejected.
func IsValid(addr string) bool {
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr || parsed.Name != "" {
		return false
	}
	domain := addr[strings.LastIndexByte(addr, '@')+1:]
	return strings.Contains(domain, ".") && !strings.HasSuffix(domain, ".")
}
