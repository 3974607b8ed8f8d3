package validators

import (
	"net"
	"net/mail"
	"strings"
)

// IsEmailFormatValid is the cheap syntactic check used on customer
// and employee records.
func IsEmailFormatValid(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// IsEmailDomainValid resolves the domain. Only used on user
// registration; it hits DNS and is too slow for list/create hot paths.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
