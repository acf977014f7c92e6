// Copyright (c) 2026 Herbario. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm normalizes human-entered place and taxon names so they
// can be compared regardless of accents, case or surrounding whitespace.
//
// # Usage
//
// Department and region names arrive from the database, from query strings
// and from spreadsheets typed in the field. "Pacífica", "pacifica" and
// "  PACÍFICA " must all land in the same bucket.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Clean trims the value, collapses inner whitespace and recomposes it to NFC.
// The result is suitable for display.
func Clean(s string) string {
	return norm.NFC.String(strings.Join(strings.Fields(s), " "))
}

// Key folds s into a comparison key.
//
// # Transformation Pipeline
//
//  1. Normalizes to NFD (decomposes accented chars: í → i + combining acute).
//  2. Removes combining marks (accents).
//  3. Collapses whitespace and converts to lowercase.
func Key(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	return strings.ToLower(strings.Join(strings.Fields(result), " "))
}

// Equal reports whether a and b fold to the same [Key].
func Equal(a, b string) bool {
	return Key(a) == Key(b)
}

// TrimPrefixFold removes prefix from s when s starts with it under [Key]
// comparison. The remainder keeps its original spelling.
func TrimPrefixFold(s, prefix string) string {
	cleaned := Clean(s)
	words := strings.Fields(cleaned)
	prefixWords := strings.Fields(prefix)

	if len(prefixWords) == 0 || len(words) <= len(prefixWords) {
		return cleaned
	}

	for i, word := range prefixWords {
		if !Equal(words[i], word) {
			return cleaned
		}
	}

	return strings.Join(words[len(prefixWords):], " ")
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
