package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid checks the domain actually resolves (MX, or at
// least an address record). Shape-level validation is the binding
// layer's job; this catches typo'd domains at registration.
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
