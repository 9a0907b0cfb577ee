// Package locale defines the closed set of locales the article is published in.
package locale

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Locale is the short key of a supported locale.
type Locale string

const (
	English Locale = "en"
	Bengali Locale = "bn"
)

var (
	englishTag = language.MustParse("en-US")
	bengaliTag = language.MustParse("bn-BD")

	// matcher order doubles as preference order when the client expresses none.
	matcher = language.NewMatcher([]language.Tag{englishTag, bengaliTag})
)

// All returns the supported locales in canonical order.
func All() []Locale {
	return []Locale{English, Bengali}
}

// Tag returns the BCP-47 tag published with the locale tree.
func (l Locale) Tag() string {
	return l.LanguageTag().String()
}

// LanguageTag returns the x/text tag for the locale.
func (l Locale) LanguageTag() language.Tag {
	switch l {
	case Bengali:
		return bengaliTag
	default:
		return englishTag
	}
}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	return l == English || l == Bengali
}

func (l Locale) String() string {
	return string(l)
}

// Parse accepts a short key ("en", "bn") or a BCP-47 tag ("en-US", "bn-BD",
// "bn-IN"). Only the base language is significant.
func Parse(s string) (Locale, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return "", &UnknownLocaleError{Tag: s}
	}

	tag, err := language.Parse(raw)
	if err != nil {
		return "", &UnknownLocaleError{Tag: s}
	}

	base, confidence := tag.Base()
	if confidence != language.Exact {
		return "", &UnknownLocaleError{Tag: s}
	}

	switch base.String() {
	case "en":
		return English, nil
	case "bn":
		return Bengali, nil
	}
	return "", &UnknownLocaleError{Tag: s}
}

// Negotiate picks the best supported locale for an Accept-Language header.
// The fallback is returned when the header is empty, malformed, or matches
// nothing with at least low confidence.
func Negotiate(acceptLanguage string, fallback Locale) Locale {
	if strings.TrimSpace(acceptLanguage) == "" {
		return fallback
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return fallback
	}

	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}

	return All()[index]
}

// UnknownLocaleError reports a locale outside the supported set.
type UnknownLocaleError struct {
	Tag string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("unknown locale %q", e.Tag)
}

// Is lets errors.Is(err, ErrUnknownLocale) match any UnknownLocaleError.
func (e *UnknownLocaleError) Is(target error) bool {
	return target == ErrUnknownLocale
}

// ErrUnknownLocale is the sentinel matched by every UnknownLocaleError.
var ErrUnknownLocale = errors.New("unknown locale")
