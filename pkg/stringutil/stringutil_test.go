package stringutil

import "testing"

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"empty string", "", true},
		{"single rune", "x", true},
		{"simple palindrome", "racecar", true},
		{"not a palindrome", "hello", false},
		{"case sensitive", "Racecar", false},
		{"whitespace counts", "nurses run", false},
		{"symmetric with space", "ab ba", true},
		{"multi-byte palindrome", "たけやぶやけた", true},
		{"multi-byte non-palindrome", "日本語", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPalindrome(tt.s); got != tt.want {
				t.Errorf("IsPalindrome(%q) = %v; want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestCountChar(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		target rune
		want   int
	}{
		{"two occurrences", "hello", 'l', 2},
		{"no occurrences", "hello", 'z', 0},
		{"empty string", "", 'a', 0},
		{"four occurrences", "mississippi", 's', 4},
		{"multi-byte target", "日本日", '日', 2},
		{"counts spaces", "a b c", ' ', 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CountChar(tt.s, tt.target); got != tt.want {
				t.Errorf("CountChar(%q, %q) = %d; want %d", tt.s, tt.target, got, tt.want)
			}
		})
	}
}

func TestReverse(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{"empty string", "", ""},
		{"single rune", "a", "a"},
		{"ascii", "hello", "olleh"},
		{"accented", "héllo", "olléh"},
		{"multi-byte", "日本語", "語本日"},
		{"with spaces", "ab cd", "dc ba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reverse(tt.s); got != tt.want {
				t.Errorf("Reverse(%q) = %q; want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestToTitleCase(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{"lowercase words", "hello world", "Hello World"},
		{"uppercase words", "HELLO WORLD", "Hello World"},
		{"mixed case", "mIxEd cAsE iNPut", "Mixed Case Input"},
		{"single word", "go", "Go"},
		{"empty string", "", ""},
		{"whitespace collapses", "hello   world", "Hello World"},
		{"leading and trailing drop", "  padded input  ", "Padded Input"},
		{"tabs and newlines", "one\ttwo\nthree", "One Two Three"},
		{"accented first letter", "éclair au café", "Éclair Au Café"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToTitleCase(tt.s); got != tt.want {
				t.Errorf("ToTitleCase(%q) = %q; want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestRemoveWhitespace(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want string
	}{
		{"inner space", "hello world", "helloworld"},
		{"mixed whitespace", " a\tb\nc ", "abc"},
		{"no whitespace", "nospace", "nospace"},
		{"empty string", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"non-breaking space", "a b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RemoveWhitespace(tt.s); got != tt.want {
				t.Errorf("RemoveWhitespace(%q) = %q; want %q", tt.s, got, tt.want)
			}
		})
	}
}

func TestWordCount(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want int
	}{
		{"two words", "hello world", 2},
		{"empty string", "", 0},
		{"only whitespace", "   ", 0},
		{"single word", "one", 1},
		{"five words", "a b c d e", 5},
		{"tabs and newlines delimit", "tabs\tand\nnewlines", 3},
		{"extra spaces ignored", "  spaced   out  ", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WordCount(tt.s); got != tt.want {
				t.Errorf("WordCount(%q) = %d; want %d", tt.s, got, tt.want)
			}
		})
	}
}

func TestIsAlphabetic(t *testing.T) {
	tests := []struct {
		name string
		s    string
		want bool
	}{
		{"empty string", "", false},
		{"all letters", "hello", true},
		{"contains space", "hello world", false},
		{"contains digit", "hello3", false},
		{"accented letters", "héllo", true},
		{"multi-byte letters", "日本語", true},
		{"contains punctuation", "abc-def", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAlphabetic(tt.s); got != tt.want {
				t.Errorf("IsAlphabetic(%q) = %v; want %v", tt.s, got, tt.want)
			}
		})
	}
}

// TestReverseIsItsOwnInverse checks the round-trip law Reverse(Reverse(s)) == s.
func TestReverseIsItsOwnInverse(t *testing.T) {
	inputs := []string{
		"",
		"a",
		"ab",
		"hello world",
		"héllo",
		"日本語",
		"a\tb\nc",
		"line one\nline two",
	}

	for _, s := range inputs {
		if got := Reverse(Reverse(s)); got != s {
			t.Errorf("Reverse(Reverse(%q)) = %q; want the original", s, got)
		}
	}
}

// TestIsPalindromeMatchesReverse checks that the palindrome test is exactly
// equivalent to comparing a string against its own reversal.
func TestIsPalindromeMatchesReverse(t *testing.T) {
	inputs := []string{
		"",
		"x",
		"racecar",
		"Racecar",
		"hello",
		"ab ba",
		"nurses run",
		"日本語",
		"たけやぶやけた",
	}

	for _, s := range inputs {
		want := s == Reverse(s)
		if got := IsPalindrome(s); got != want {
			t.Errorf("IsPalindrome(%q) = %v; want %v to agree with Reverse", s, got, want)
		}
	}
}
