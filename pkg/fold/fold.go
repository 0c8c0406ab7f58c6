// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package fold normalizes user-entered text for comparison.
//
// # Usage
//
// Emails are compared case-folded ("Cliente@LookEasy.com" == "cliente@lookeasy.com").
// Catalog search is case- and accent-insensitive ("oculos" finds "Óculos de Sol").
package fold

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Email trims and case-folds an email address.
func Email(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// Text removes accents and case-folds s.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Recomposes to NFC and applies Unicode case folding.
func Text(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}
	return cases.Fold().String(result)
}

// Contains reports whether needle occurs in haystack, ignoring case and accents.
func Contains(haystack, needle string) bool {
	return strings.Contains(Text(haystack), Text(needle))
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
