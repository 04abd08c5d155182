package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// HandlePattern defines the valid handle format: alphanumeric, hyphens, underscores.
var HandlePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// ValidateHandle checks if a profile handle matches the allowed pattern.
func ValidateHandle(handle string) bool {
	if handle == "" || len(handle) > 64 {
		return false
	}
	return HandlePattern.MatchString(handle)
}

// NormalizeHandle lowercases a handle so lookups are case-insensitive.
func NormalizeHandle(handle string) string {
	return strings.ToLower(handle)
}

// ValidateURL checks if a URL is valid and uses an allowed scheme (http/https only).
// This prevents javascript:, data:, vbscript:, and other dangerous URL schemes.
func ValidateURL(urlStr string) (bool, string) {
	if urlStr == "" {
		return false, "URL is required"
	}

	// Parse the URL
	u, err := url.Parse(urlStr)
	if err != nil {
		return false, "Invalid URL format"
	}

	// Check scheme - only allow http and https
	scheme := strings.ToLower(u.Scheme)
	if scheme != "http" && scheme != "https" {
		return false, "URL must use http:// or https:// scheme"
	}

	// Ensure host is present
	if u.Host == "" {
		return false, "URL must have a valid host"
	}

	return true, ""
}

// SafeLink returns the link when it passes ValidateURL, or "" otherwise.
// Used before putting stored links into href attributes.
func SafeLink(link *string) string {
	if link == nil {
		return ""
	}
	if ok, _ := ValidateURL(*link); !ok {
		return ""
	}
	return *link
}
