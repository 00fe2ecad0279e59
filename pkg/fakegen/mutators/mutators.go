// Package mutators holds reusable fakegen.Mutator values. None of them draw
// randomness except Optional, which is marked as randomizing.
package mutators

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"pkg.jsn.cam/fakegen/pkg/fakegen"
)

// Upper upper-cases the generated string
func Upper() fakegen.Mutator[string, string] {
	return fakegen.Transform(strings.ToUpper)
}

// Lower lower-cases the generated string
func Lower() fakegen.Mutator[string, string] {
	return fakegen.Transform(strings.ToLower)
}

// Title upper-cases the first rune only
func Title() fakegen.Mutator[string, string] {
	return fakegen.Transform(func(s string) string {
		first, size := utf8.DecodeRuneInString(s)
		if size == 0 {
			return s
		}
		return string(unicode.ToUpper(first)) + s[size:]
	})
}

func TrimSpace() fakegen.Mutator[string, string] {
	return fakegen.Transform(strings.TrimSpace)
}

// Truncate keeps at most n runes.
func Truncate(n int) fakegen.Mutator[string, string] {
	return fakegen.Transform(func(s string) string {
		if n <= 0 {
			return ""
		}
		if utf8.RuneCountInString(s) <= n {
			return s
		}
		runes := []rune(s)
		return string(runes[:n])
	})
}

// Affix wraps the generated string with prefix and suffix.
func Affix(prefix, suffix string) fakegen.Mutator[string, string] {
	return fakegen.Transform(func(s string) string {
		return prefix + s + suffix
	})
}

// Itoa renders an int generator as decimal strings.
func Itoa() fakegen.Mutator[int, string] {
	return fakegen.Transform(strconv.Itoa)
}

// Optional is a randomizing mutator: it flips one coin before anything
// else and yields empty on false without invoking the wrapped generator.
func Optional[T any](empty T) fakegen.Mutator[T, T] {
	return func(g fakegen.Generator[T]) fakegen.Generator[T] {
		return func(r fakegen.Source) (T, error) {
			if !r.Bool() {
				return empty, nil
			}
			return g(r)
		}
	}
}
