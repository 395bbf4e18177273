// Package stringutil provides rune-aware string helpers: palindrome and
// alphabetic checks, reversal, title-casing, whitespace removal, and
// character/word counting. All functions iterate Unicode code points rather
// than raw bytes, so multi-byte characters are never split.
package stringutil

import (
	"strings"
	"unicode"
)

// IsPalindrome reports whether s reads the same forwards and backwards.
// The comparison is as-is: case, whitespace, and punctuation all count.
// Callers wanting a normalized check can fold or strip the input first,
// e.g. IsPalindrome(strings.ToLower(RemoveWhitespace(s))).
func IsPalindrome(s string) bool {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		if runes[i] != runes[j] {
			return false
		}
	}
	return true
}

// CountChar returns the number of times target occurs in s.
func CountChar(s string, target rune) int {
	count := 0
	for _, r := range s {
		if r == target {
			count++
		}
	}
	return count
}

// Reverse returns a new string with the runes of s in reverse order.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// ToTitleCase uppercases the first letter of each word and lowercases the
// rest. Words are whitespace-delimited tokens; runs of whitespace collapse
// to a single space and leading/trailing whitespace is dropped.
func ToTitleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		for j := 1; j < len(runes); j++ {
			runes[j] = unicode.ToLower(runes[j])
		}
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// RemoveWhitespace returns s with every whitespace rune removed. Whitespace
// is anything unicode.IsSpace accepts: space, tab, newline, and the rest of
// the Unicode space class.
func RemoveWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WordCount returns the number of whitespace-delimited words in s.
// Empty and all-whitespace inputs contain zero words.
func WordCount(s string) int {
	return len(strings.Fields(s))
}

// IsAlphabetic reports whether every rune in s is a letter per
// unicode.IsLetter. The empty string is not alphabetic.
func IsAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
