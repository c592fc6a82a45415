package cloud

import (
	"net/url"
	"strings"
)

// DocumentsSegment is the product segment every stored project document
// lives under.
const DocumentsSegment = "tasks"

type queryParam struct {
	key   string
	value string
}

// URI builds a resource URI from a base, path segments and query parameters.
// Segments are path-escaped; query parameters keep the order they were added
// in so that the signed form of a URI is reproducible.
type URI struct {
	base     string
	segments []string
	query    []queryParam
}

// NewURI starts a URI at base.
func NewURI(base string) *URI {
	return &URI{base: strings.TrimRight(base, "/")}
}

// DocumentURI returns <base>/tasks/<documentName>/<segments...>.
func DocumentURI(base, documentName string, segments ...string) (*URI, error) {
	if err := RequireString("documentName", documentName); err != nil {
		return nil, err
	}
	return NewURI(base).Segment(DocumentsSegment, documentName).Segment(segments...), nil
}

// Segment appends path segments.
func (u *URI) Segment(segments ...string) *URI {
	u.segments = append(u.segments, segments...)
	return u
}

// Query appends a query parameter.
func (u *URI) Query(key, value string) *URI {
	u.query = append(u.query, queryParam{key: key, value: value})
	return u
}

// QueryIf appends a query parameter only when value is not empty.
func (u *URI) QueryIf(key, value string) *URI {
	if value == "" {
		return u
	}
	return u.Query(key, value)
}

func (u *URI) String() string {
	var b strings.Builder
	b.WriteString(u.base)
	for _, s := range u.segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	for i, q := range u.query {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(q.key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(q.value))
	}
	return b.String()
}
