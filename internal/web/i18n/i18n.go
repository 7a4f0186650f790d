// Package i18n negotiates the UI language and text direction of a request.
package i18n

import (
	"errors"
	"strings"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/text/language"
)

const (
	// CookieName holds the language chosen through the language switch.
	CookieName = "lang"

	// DirLTR is the left-to-right text direction.
	DirLTR = "ltr"

	// DirRTL is the right-to-left text direction.
	DirRTL = "rtl"
)

// ErrInvalidLanguage is returned for a language tag that does not parse.
var ErrInvalidLanguage = errors.New("invalid language tag")

// rtlScripts are the scripts written right to left.
var rtlScripts = map[string]struct{}{ //nolint:gochecknoglobals
	"Arab": {},
	"Hebr": {},
	"Thaa": {},
	"Syrc": {},
	"Nkoo": {},
	"Adlm": {},
	"Rohg": {},
}

// Negotiator picks one of the supported languages for a request.
type Negotiator struct {
	bases   []string
	matcher language.Matcher
}

// NewNegotiator creates a negotiator for langs, the first one being the default.
func NewNegotiator(langs []string) (*Negotiator, error) {
	if len(langs) == 0 {
		langs = []string{"en"}
	}

	n := &Negotiator{bases: make([]string, 0, len(langs))}
	tags := make([]language.Tag, 0, len(langs))

	for _, l := range langs {
		tag, err := language.Parse(l)
		if err != nil {
			return nil, pkgerrors.Wrapf(ErrInvalidLanguage, "%q: %v", l, err)
		}

		tags = append(tags, tag)
		n.bases = append(n.bases, Base(tag))
	}

	n.matcher = language.NewMatcher(tags)

	return n, nil
}

// Default returns the fallback language.
func (n *Negotiator) Default() string {
	return n.bases[0]
}

// Languages returns the supported base languages in configured order.
func (n *Negotiator) Languages() []string {
	return append([]string(nil), n.bases...)
}

// Supported returns the supported base language of lang, if any.
func (n *Negotiator) Supported(lang string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(lang))
	if err != nil {
		return "", false
	}

	base := Base(tag)
	for _, b := range n.bases {
		if b == base {
			return b, true
		}
	}

	return "", false
}

// Resolve returns the request language: a supported cookie value wins over
// the Accept-Language header, the default is used if neither matches.
func (n *Negotiator) Resolve(cookie, acceptLanguage string) string {
	if lang, ok := n.Supported(cookie); ok {
		return lang
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return n.Default()
	}

	_, idx, confidence := n.matcher.Match(tags...)
	if confidence == language.No {
		return n.Default()
	}

	return n.bases[idx]
}

// Base returns the lower-case base language of tag, e.g. "de" for de-AT.
func Base(tag language.Tag) string {
	base, _ := tag.Base()

	return base.String()
}

// Dir returns the text direction of lang's likely script.
func Dir(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return DirLTR
	}

	script, _ := tag.Script()
	if _, ok := rtlScripts[script.String()]; ok {
		return DirRTL
	}

	return DirLTR
}
