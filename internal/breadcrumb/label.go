package breadcrumb

import (
	"strings"

	"github.com/pkg/errors"
)

type labelPart struct {
	text  string // literal text or placeholder name
	param bool
}

// label is a parsed label template such as "Project {id}".
type label []labelPart

func parseLabel(tmpl string) (label, error) {
	if strings.TrimSpace(tmpl) == "" {
		return nil, errors.Wrap(ErrInvalidLabel, "label can not be empty")
	}

	var l label

	for rest := tmpl; rest != ""; {
		open := strings.IndexByte(rest, '{')
		closing := strings.IndexByte(rest, '}')

		switch {
		case open < 0 && closing < 0:
			l = append(l, labelPart{text: rest})
			rest = ""

			continue
		case open < 0 || (closing >= 0 && closing < open):
			return nil, errors.Wrapf(ErrInvalidLabel, "%q has an unmatched }", tmpl)
		case closing < 0:
			return nil, errors.Wrapf(ErrInvalidLabel, "%q has an unmatched {", tmpl)
		}

		name := rest[open+1 : closing]
		if name == "" || strings.ContainsRune(name, '{') {
			return nil, errors.Wrapf(ErrInvalidLabel, "%q has an empty or nested placeholder", tmpl)
		}

		if open > 0 {
			l = append(l, labelPart{text: rest[:open]})
		}

		l = append(l, labelPart{text: name, param: true})
		rest = rest[closing+1:]
	}

	return l, nil
}

// render substitutes every placeholder with the value returned by lookup.
func (l label) render(lookup func(name string) string) string {
	if len(l) == 1 && !l[0].param {
		return l[0].text
	}

	var b strings.Builder

	for _, part := range l {
		if part.param {
			b.WriteString(lookup(part.text))
			continue
		}

		b.WriteString(part.text)
	}

	return b.String()
}
