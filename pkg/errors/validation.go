package errors

import (
	"strconv"
	"strings"
	"unicode"
)

// ValidateLookupName validates a person name used for graph lookups.
// It rejects input that could never match a display name.
//
// The validation rules are intentionally conservative:
//   - No empty names
//   - No control characters
//   - Maximum length of 256 characters
func ValidateLookupName(name string) error {
	if name == "" {
		return New(ErrCodeInvalidInput, "name cannot be empty")
	}

	if len(name) > 256 {
		return New(ErrCodeInvalidInput, "name too long (max 256 characters)")
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "name contains control characters")
		}
	}

	return nil
}

// ValidateMarker validates a name-prefix marker such as the home or
// DNA-match glyph. Markers are matched as raw name prefixes, so whitespace
// or control characters would make them unmatchable.
func ValidateMarker(marker string) error {
	if marker == "" {
		return New(ErrCodeInvalidMarker, "marker cannot be empty")
	}

	if len(marker) > 16 {
		return New(ErrCodeInvalidMarker, "marker too long (max 16 bytes)")
	}

	for _, r := range marker {
		if unicode.IsSpace(r) {
			return New(ErrCodeInvalidMarker, "marker cannot contain whitespace")
		}
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidMarker, "marker cannot contain control characters")
		}
	}

	return nil
}

// ValidateListenAddr validates a host:port listen address.
// The host part may be empty (all interfaces); the port must be numeric
// and within the valid range.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return New(ErrCodeInvalidInput, "listen address cannot be empty")
	}

	i := strings.LastIndex(addr, ":")
	if i < 0 {
		return New(ErrCodeInvalidInput, "listen address must be host:port, got %q", addr)
	}

	port := addr[i+1:]
	n, err := strconv.Atoi(port)
	if err != nil {
		return New(ErrCodeInvalidInput, "invalid port %q in listen address", port)
	}
	if n < 0 || n > 65535 {
		return New(ErrCodeInvalidInput, "port %d out of range", n)
	}

	return nil
}
