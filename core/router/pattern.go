package router

import (
	"fmt"
	"net/url"
	"strings"
)

// segment is one slash-delimited element of a compiled pattern. Exactly one
// of literal and param is meaningful: param is non-empty for {name} segments.
type segment struct {
	literal string
	param   string
}

// pattern is a compiled route path. Compilation happens once at registration;
// match is read-only and safe for concurrent use.
type pattern struct {
	raw      string
	segments []segment
	nparams  int
}

// compile parses a declared route path into a pattern. Paths must start with
// a slash. Parameter segments take the form {name}; names must be unique
// within one path. Matching is case-sensitive and does not forgive trailing
// slashes, so "/users" and "/users/" are distinct declarations.
func compile(path string) (*pattern, error) {
	if path == "" || path[0] != '/' {
		return nil, fmt.Errorf("%w: %q must start with a slash", ErrInvalidPattern, path)
	}

	parts := splitPath(path)
	p := &pattern{raw: path, segments: make([]segment, 0, len(parts))}
	seen := make(map[string]struct{}, len(parts))

	for _, part := range parts {
		if strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}") {
			name := part[1 : len(part)-1]
			if name == "" {
				return nil, fmt.Errorf("%w: empty parameter name in %q", ErrInvalidPattern, path)
			}
			if strings.ContainsAny(name, "{}/") {
				return nil, fmt.Errorf("%w: malformed parameter %q in %q", ErrInvalidPattern, part, path)
			}
			if _, dup := seen[name]; dup {
				return nil, fmt.Errorf("%w: %q in %q", ErrDuplicateParam, name, path)
			}
			seen[name] = struct{}{}
			p.segments = append(p.segments, segment{param: name})
			p.nparams++
			continue
		}
		if strings.ContainsAny(part, "{}") {
			return nil, fmt.Errorf("%w: stray brace in segment %q of %q", ErrInvalidPattern, part, path)
		}
		p.segments = append(p.segments, segment{literal: part})
	}

	return p, nil
}

// match tests a request path against the pattern and returns captured
// parameters. The path is expected in escaped form; each segment is
// percent-decoded before comparison so encoded slashes cannot split a
// segment. Parameter segments require a non-empty decoded value.
func (p *pattern) match(path string) (map[string]string, bool) {
	if path == "" || path[0] != '/' {
		return nil, false
	}

	parts := splitPath(path)
	if len(parts) != len(p.segments) {
		return nil, false
	}

	var params map[string]string
	for i, seg := range p.segments {
		part := parts[i]
		if strings.IndexByte(part, '%') >= 0 {
			decoded, err := url.PathUnescape(part)
			if err != nil {
				return nil, false
			}
			part = decoded
		}
		if seg.param != "" {
			if part == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string, p.nparams)
			}
			params[seg.param] = part
			continue
		}
		if seg.literal != part {
			return nil, false
		}
	}

	return params, true
}

// splitPath breaks a rooted path into segments. The root path has no
// segments; a trailing slash yields a final empty segment, which keeps
// "/users" and "/users/" distinct.
func splitPath(path string) []string {
	if path == "/" {
		return nil
	}
	return strings.Split(path[1:], "/")
}
