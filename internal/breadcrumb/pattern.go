package breadcrumb

import (
	"strings"

	"github.com/pkg/errors"
)

// RootPattern is the pattern of the landing view.
const RootPattern = "/"

type segment struct {
	value string // static text or parameter name
	param bool
}

type pattern struct {
	raw      string
	segments []segment
}

func parsePattern(raw string) (pattern, error) {
	if raw == "" || raw[0] != '/' {
		return pattern{}, errors.Wrapf(ErrInvalidPattern, "%q must start with /", raw)
	}

	p := pattern{raw: raw}
	if raw == RootPattern {
		return p, nil
	}

	seen := make(map[string]struct{})

	for _, part := range strings.Split(raw[1:], "/") {
		switch {
		case part == "":
			return pattern{}, errors.Wrapf(ErrInvalidPattern, "%q has an empty segment", raw)
		case strings.ContainsAny(part, "*+?"):
			return pattern{}, errors.Wrapf(ErrInvalidPattern, "%q: wildcard and optional segments are not supported", raw)
		case part[0] == ':':
			name := part[1:]
			if !validParamName(name) {
				return pattern{}, errors.Wrapf(ErrInvalidParam, "%q has a parameter without a valid name", raw)
			}

			if _, dup := seen[name]; dup {
				return pattern{}, errors.Wrapf(ErrInvalidParam, "%q declares :%s twice", raw, name)
			}

			seen[name] = struct{}{}
			p.segments = append(p.segments, segment{value: name, param: true})
		case strings.Contains(part, ":"):
			return pattern{}, errors.Wrapf(ErrInvalidParam, "%q: parameters must span a whole segment", raw)
		default:
			p.segments = append(p.segments, segment{value: part})
		}
	}

	return p, nil
}

// validParamName accepts the names fiber reads as a single parameter;
// '-' and '.' end a fiber parameter name.
func validParamName(name string) bool {
	if name == "" {
		return false
	}

	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		default:
			return false
		}
	}

	return true
}

// shape identifies the set of paths a pattern matches, ignoring parameter names.
func (p pattern) shape() string {
	if len(p.segments) == 0 {
		return RootPattern
	}

	var b strings.Builder

	for _, s := range p.segments {
		b.WriteByte('/')

		if s.param {
			b.WriteByte(':')
			continue
		}

		b.WriteString(s.value)
	}

	return b.String()
}

// match reports whether parts fits the pattern and returns the captured parameters.
func (p pattern) match(parts []string) (map[string]string, bool) {
	if len(parts) != len(p.segments) {
		return nil, false
	}

	var captured map[string]string

	for i, s := range p.segments {
		if !s.param {
			if parts[i] != s.value {
				return nil, false
			}

			continue
		}

		if captured == nil {
			captured = make(map[string]string, len(p.segments))
		}

		captured[s.value] = parts[i]
	}

	return captured, true
}

// moreSpecific orders patterns of equal depth: at the first position where
// one has a static segment and the other a parameter, the static one wins.
func moreSpecific(a, b pattern) bool {
	for i := range a.segments {
		if a.segments[i].param != b.segments[i].param {
			return !a.segments[i].param
		}
	}

	return false
}

// splitPath normalizes a request path into its non-empty segments.
// Query string and fragment are dropped.
func splitPath(path string) []string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}

	raw := strings.Split(path, "/")
	parts := make([]string, 0, len(raw))

	for _, part := range raw {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}
