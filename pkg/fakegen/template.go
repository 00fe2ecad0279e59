package fakegen

import "strings"

const (
	// DigitSentinel is replaced by Numerify
	DigitSentinel = '#'
	// LetterSentinel is replaced by Letterify
	LetterSentinel = '?'

	alphabet = "abcdefghijklmnopqrstuvwxyz"
)

// Numerify replaces every '#' in pattern with a uniform digit 0-9.
// Draws happen left to right, one per sentinel. Every other byte, valid
// UTF-8 or not, is copied unchanged.
func Numerify(pattern string, r Source) string {
	if strings.IndexByte(pattern, DigitSentinel) < 0 {
		return pattern
	}

	var sb strings.Builder
	sb.Grow(len(pattern))
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == DigitSentinel {
			sb.WriteByte(byte('0' + r.IntN(10)))
			continue
		}
		sb.WriteByte(pattern[i])
	}
	return sb.String()
}

// Letterify replaces every '?' in pattern with a letter from the English
// alphabet, upper or lower case.
func Letterify(pattern string, r Source, upper bool) string {
	if strings.IndexByte(pattern, LetterSentinel) < 0 {
		return pattern
	}

	var sb strings.Builder
	sb.Grow(len(pattern))
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == LetterSentinel {
			sb.WriteByte(byte(NextLetter(r, upper)))
			continue
		}
		sb.WriteByte(pattern[i])
	}
	return sb.String()
}

// LetterifyUpper is Letterify with upper-case letters
func LetterifyUpper(pattern string, r Source) string {
	return Letterify(pattern, r, true)
}

// Bothify numerifies and then letterifies (upper case) pattern.
func Bothify(pattern string, r Source) string {
	return LetterifyUpper(Numerify(pattern, r), r)
}

// NextLetter returns a single uniformly chosen letter.
func NextLetter(r Source, upper bool) rune {
	c := rune(alphabet[r.IntN(len(alphabet))])
	if upper {
		c -= 'a' - 'A'
	}
	return c
}
