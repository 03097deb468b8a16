package handlers

import (
	"net/url"
	"strings"
)

// IsVideoHostLink reports whether text is an http(s) URL whose host belongs to
// one of the recognized video hosts. Subdomains of a recognized host match.
func IsVideoHostLink(text string, hosts []string) bool {
	text = strings.TrimSpace(text)
	if text == "" || strings.ContainsAny(text, " \n\t") {
		return false
	}

	parsed, err := url.Parse(text)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}

	host := strings.ToLower(parsed.Hostname())
	if host == "" {
		return false
	}
	for _, allowed := range hosts {
		if host == allowed || strings.HasSuffix(host, "."+allowed) {
			return true
		}
	}
	return false
}
