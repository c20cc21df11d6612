package domain

import "strings"

// Canonical status tags. Matching is case-insensitive and whitespace-trimmed.
const (
	TagOpen       = "open"
	TagClosed     = "closed"
	TagComingSoon = "coming soon"
)

// StatusKind is the canonical variant of a single status tag.
type StatusKind int

const (
	StatusUnknown StatusKind = iota
	StatusOpen
	StatusClosed
	StatusComingSoon
)

func (k StatusKind) String() string {
	switch k {
	case StatusOpen:
		return "Open"
	case StatusClosed:
		return "Closed"
	case StatusComingSoon:
		return "Coming soon"
	default:
		return "Unknown"
	}
}

func kindOf(tag string) StatusKind {
	switch tag {
	case TagOpen:
		return StatusOpen
	case TagClosed:
		return StatusClosed
	case TagComingSoon:
		return StatusComingSoon
	default:
		return StatusUnknown
	}
}

// StatusSet is the normalized set of tags carried by a status field.
// A record may be open and closed at the same time.
type StatusSet struct {
	tags []string
}

// NewStatusSet normalizes the given raw values, dropping blanks and duplicates.
func NewStatusSet(values ...string) StatusSet {
	var s StatusSet
	for _, v := range values {
		tag := normalizeTag(v)
		if tag == "" || s.Has(tag) {
			continue
		}
		s.tags = append(s.tags, tag)
	}
	return s
}

func normalizeTag(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}

// Has reports whether the set contains tag.
func (s StatusSet) Has(tag string) bool {
	want := normalizeTag(tag)
	if want == "" {
		return false
	}
	for _, t := range s.tags {
		if t == want {
			return true
		}
	}
	return false
}

func (s StatusSet) Open() bool       { return s.Has(TagOpen) }
func (s StatusSet) Closed() bool     { return s.Has(TagClosed) }
func (s StatusSet) ComingSoon() bool { return s.Has(TagComingSoon) }

// Tags returns the normalized tags in source order.
func (s StatusSet) Tags() []string {
	return append([]string(nil), s.tags...)
}

// Kinds maps every tag to its canonical variant.
func (s StatusSet) Kinds() []StatusKind {
	kinds := make([]StatusKind, 0, len(s.tags))
	for _, t := range s.tags {
		kinds = append(kinds, kindOf(t))
	}
	return kinds
}

func (s StatusSet) MarshalText() ([]byte, error) {
	return []byte(strings.Join(s.tags, ",")), nil
}
