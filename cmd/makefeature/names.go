package main

import (
	"fmt"
	"strings"
	"unicode"
)

// Names holds the spellings of a feature name used across the generated files.
type Names struct {
	Studly      string // OrderNote
	Camel       string // orderNote
	Lower       string // ordernote
	Snake       string // order_note
	Plural      string // order_notes
	PluralCamel string // orderNotes
	Module      string
}

// NewNames splits raw on separators and case changes. Only ASCII letters and
// digits are allowed and the name must start with a letter.
func NewNames(raw, module string) (Names, error) {
	words := splitWords(raw)
	if len(words) == 0 {
		return Names{}, fmt.Errorf("feature name %q is empty", raw)
	}
	if first := words[0][0]; first < 'a' || first > 'z' {
		return Names{}, fmt.Errorf("feature name %q must start with a letter", raw)
	}

	studly := make([]string, len(words))
	for i, w := range words {
		studly[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	pluralWords := append(append([]string{}, words[:len(words)-1]...), plural(words[len(words)-1]))
	pluralStudly := make([]string, len(pluralWords))
	for i, w := range pluralWords {
		pluralStudly[i] = strings.ToUpper(w[:1]) + w[1:]
	}

	return Names{
		Studly:      strings.Join(studly, ""),
		Camel:       words[0] + strings.Join(studly[1:], ""),
		Lower:       strings.Join(words, ""),
		Snake:       strings.Join(words, "_"),
		Plural:      strings.Join(pluralWords, "_"),
		PluralCamel: pluralWords[0] + strings.Join(pluralStudly[1:], ""),
		Module:      module,
	}, nil
}

func splitWords(raw string) []string {
	var (
		words   []string
		current []rune
	)
	flush := func() {
		if len(current) > 0 {
			words = append(words, strings.ToLower(string(current)))
			current = current[:0]
		}
	}

	runes := []rune(strings.TrimSpace(raw))
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || r == ' ':
			flush()
		case r > unicode.MaxASCII || !(unicode.IsLetter(r) || unicode.IsDigit(r)):
			return nil
		case unicode.IsUpper(r) && i > 0 && (unicode.IsLower(runes[i-1]) ||
			(i+1 < len(runes) && unicode.IsLower(runes[i+1]) && unicode.IsUpper(runes[i-1]))):
			flush()
			current = append(current, r)
		default:
			current = append(current, r)
		}
	}
	flush()
	return words
}

func plural(word string) string {
	switch {
	case strings.HasSuffix(word, "y") && len(word) > 1 && !strings.ContainsRune("aeiou", rune(word[len(word)-2])):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(word, "s"), strings.HasSuffix(word, "x"), strings.HasSuffix(word, "z"),
		strings.HasSuffix(word, "ch"), strings.HasSuffix(word, "sh"):
		return word + "es"
	default:
		return word + "s"
	}
}
