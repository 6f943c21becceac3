package naming

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Separator joins the segments of a namespace path.
const Separator = "::"

// ErrInvalidIdentifierFragment is returned when a fragment falls outside the
// lower-snake-case alphabet the resolver understands.
var ErrInvalidIdentifierFragment = errors.New("invalid identifier fragment")

// Join joins path segments into a fragment using Separator.
func Join(segments []string) string {
	return strings.Join(segments, Separator)
}

// Resolve converts a lower-snake-case, Separator-delimited fragment into its
// capitalized namespace path.
//
//	Resolve("first_set_of_refactorings::split_phase") // "FirstSetOfRefactorings::SplitPhase"
//
// Every segment must be one or more runs of [a-z0-9] joined by single
// underscores. Leading, trailing or doubled underscores and empty segments are
// rejected with ErrInvalidIdentifierFragment.
func Resolve(fragment string) (string, error) {
	if err := validate(fragment); err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(fragment))

	upper := true
	for i := 0; i < len(fragment); i++ {
		c := fragment[i]
		switch {
		case c == '_':
			upper = true
		case c == ':':
			b.WriteByte(c)
			upper = true
		case upper:
			b.WriteRune(unicode.ToUpper(rune(c)))
			upper = false
		default:
			b.WriteByte(c)
		}
	}

	return b.String(), nil
}

// Fragment is the inverse of Resolve: it turns a namespace path back into the
// lower-snake-case fragment it was resolved from.
func Fragment(namespace string) string {
	segments := strings.Split(namespace, Separator)
	for i, segment := range segments {
		var b strings.Builder
		for j, r := range segment {
			if unicode.IsUpper(r) {
				if j > 0 {
					b.WriteByte('_')
				}
				r = unicode.ToLower(r)
			}
			b.WriteRune(r)
		}
		segments[i] = b.String()
	}
	return Join(segments)
}

func validate(fragment string) error {
	if fragment == "" {
		return fmt.Errorf("%w: empty fragment", ErrInvalidIdentifierFragment)
	}

	for _, segment := range strings.Split(fragment, Separator) {
		if segment == "" {
			return fmt.Errorf("%w: empty segment in %q", ErrInvalidIdentifierFragment, fragment)
		}
		for _, word := range strings.Split(segment, "_") {
			if word == "" {
				return fmt.Errorf("%w: stray underscore in %q", ErrInvalidIdentifierFragment, segment)
			}
			for _, r := range word {
				if !isLowerAlnum(r) {
					return fmt.Errorf("%w: unexpected %q in %q", ErrInvalidIdentifierFragment, r, segment)
				}
			}
		}
	}

	return nil
}

func isLowerAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
