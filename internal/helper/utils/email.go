package utils

import (
	"errors"
	"strings"
)

func ExtractEmailDomain(email string) (string, error) {
	parts := strings.Split(strings.TrimSpace(email), "@")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", errors.New("invalid email format")
	}
	return strings.ToLower(parts[1]), nil
}

// EmailMatchesDomain reports whether the address belongs to domain or one of
// its subdomains.
func EmailMatchesDomain(email, domain string) bool {
	emailDomain, err := ExtractEmailDomain(email)
	if err != nil {
		return false
	}
	domain = strings.ToLower(strings.TrimSpace(domain))
	if domain == "" {
		return false
	}
	return emailDomain == domain || strings.HasSuffix(emailDomain, "."+domain)
}
