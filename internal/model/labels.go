package model

import (
	"regexp"
	"strings"
	"unicode"
)

var splitWordsPattern = regexp.MustCompile(`[_\-.\s]+`)

// Label converts a schema or field name into a human-friendly alternate name.
// It splits on separators and camelCase boundaries, so "paymentMethod" and
// "payment_method" both become "Payment Method".
func Label(name string) string {
	if strings.TrimSpace(name) == "" {
		return ""
	}

	var words []string
	for _, chunk := range splitWordsPattern.Split(name, -1) {
		if chunk == "" {
			continue
		}
		for _, word := range splitCamel(chunk) {
			words = append(words, titleCase(word))
		}
	}
	return strings.Join(words, " ")
}

func splitCamel(input string) []string {
	runes := []rune(input)
	var (
		words []string
		start int
	)
	for i := 1; i < len(runes); i++ {
		if isBoundary(runes[i-1], runes[i]) {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

func isBoundary(prev, r rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(r):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(r):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(r):
		return true
	}
	return false
}

func titleCase(word string) string {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
