package stringutil_test

import (
	"fmt"

	"github.com/pnicewicz421/go-cli-utils/pkg/stringutil"
)

func ExampleIsPalindrome() {
	fmt.Println(stringutil.IsPalindrome("racecar"))
	fmt.Println(stringutil.IsPalindrome("hello"))
	// Output:
	// true
	// false
}

func ExampleReverse() {
	fmt.Println(stringutil.Reverse("hello"))
	// Output: olleh
}

func ExampleToTitleCase() {
	fmt.Println(stringutil.ToTitleCase("the quick brown fox"))
	// Output: The Quick Brown Fox
}

func ExampleWordCount() {
	fmt.Println(stringutil.WordCount("the quick brown fox"))
	// Output: 4
}

func ExampleRemoveWhitespace() {
	fmt.Println(stringutil.RemoveWhitespace("s p a c e d"))
	// Output: spaced
}
