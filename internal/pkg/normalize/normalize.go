// Package normalize produces canonical, comparison-safe representations of
// free-text product names and dimension strings. Catalog data and order line
// items are entered inconsistently (spacing, directional marks, multiplication
// glyphs, dimension order), so matching is always done on normalized keys.
package normalize

import (
	"strconv"
	"strings"
	"unicode"
)

// isBidiMark reports whether r is a Unicode bidirectional control character.
// Hebrew product names frequently carry these marks after copy-paste.
func isBidiMark(r rune) bool {
	return r == '‎' || r == '‏' || (r >= '‪' && r <= '‮')
}

func stripBidiMarks(s string) string {
	return strings.Map(func(r rune) rune {
		if isBidiMark(r) {
			return -1
		}
		return r
	}, s)
}

// Text trims, lowercases, and strips bidirectional control characters.
// An empty input yields an empty string. Deterministic, never fails.
func Text(s string) string {
	return stripBidiMarks(strings.ToLower(strings.TrimSpace(s)))
}

// Size normalizes a free-text dimension label into an orientation-independent
// key. Any of the glyphs × ✕ * X are accepted as separators. When at least
// two numeric tokens are present, the first three are parsed, sorted
// ascending, and joined with "x", so "50x120x40" and "120×40×50" both yield
// "40x50x120". With fewer than two numeric tokens the lowercased cleaned
// string is returned unchanged. Idempotent.
func Size(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '×' || r == '✕' || r == '*' || r == 'X':
			return 'x'
		case unicode.IsSpace(r) || isBidiMark(r):
			return -1
		default:
			return r
		}
	}, raw)

	nums := strings.FieldsFunc(cleaned, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	if len(nums) < 2 {
		return strings.ToLower(cleaned)
	}

	if len(nums) > 3 {
		nums = nums[:3]
	}

	values := make([]float64, len(nums))
	for i, n := range nums {
		v, err := strconv.ParseFloat(n, 64)
		if err != nil {
			v = 0
		}
		values[i] = v
	}
	for i := 1; i < len(values); i++ {
		for j := i; j > 0 && values[j] < values[j-1]; j-- {
			values[j], values[j-1] = values[j-1], values[j]
		}
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strings.Join(parts, "x")
}

// Key builds the equality key joining a product name and a size label.
// The key is opaque: it is compared, never parsed back.
func Key(productName, sizeLabel string) string {
	return Text(productName) + "__" + Size(sizeLabel)
}

// isNameRune reports whether r contributes to a simplified product name:
// Hebrew letters, Latin letters, or digits.
func isNameRune(r rune) bool {
	return (r >= 'א' && r <= 'ת') ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// Simplify strips every character outside Hebrew letters, Latin letters, and
// digits. Used for soft containment checks between product names.
func Simplify(s string) string {
	return strings.Map(func(r rune) rune {
		if isNameRune(r) {
			return r
		}
		return -1
	}, s)
}

// Tokens splits s into Hebrew/digit tokens, discarding everything else.
// Latin characters act as delimiters here: model codes rarely survive
// re-typing intact, so token overlap is judged on Hebrew words and numbers.
func Tokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !((r >= 'א' && r <= 'ת') || (r >= '0' && r <= '9'))
	})
}
