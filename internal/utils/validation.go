package utils

import (
	"errors"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	maxIDLength    = 100
	maxQueryLength = 200
)

var (
	// service identifiers: letters, digits, underscore, hyphen and dot
	validIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

// ValidateID validates a service identifier taken from a URL path.
func ValidateID(id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	if len(id) > maxIDLength {
		return errors.New("id too long (max 100 characters)")
	}

	if !validIDPattern.MatchString(id) {
		return errors.New("id contains invalid characters")
	}

	return nil
}

// ValidateQuery validates a free-text question. Empty questions are allowed;
// the engine answers them with guidance. Punctuation and markup are accepted.
func ValidateQuery(query string) error {
	if query == "" {
		return nil
	}

	if !utf8.ValidString(query) {
		return errors.New("query is not valid UTF-8")
	}

	if utf8.RuneCountInString(query) > maxQueryLength {
		return errors.New("query too long (max 200 characters)")
	}

	return nil
}

// SanitizeInput removes HTML tags and surrounding whitespace.
func SanitizeInput(input string) string {
	sanitized := htmlTagPattern.ReplaceAllString(input, "")
	return strings.TrimSpace(sanitized)
}

// ValidateAndSanitizeQuery validates and sanitizes a free-text question.
func ValidateAndSanitizeQuery(query string) (string, error) {
	if err := ValidateQuery(query); err != nil {
		return "", err
	}

	return SanitizeInput(query), nil
}

// AddFieldError records err under field, creating the map when needed.
func AddFieldError(fieldErrors map[string][]string, field string, err error) map[string][]string {
	if err == nil {
		return fieldErrors
	}
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}
	fieldErrors[field] = append(fieldErrors[field], err.Error())
	return fieldErrors
}
