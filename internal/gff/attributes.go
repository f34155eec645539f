package gff

import (
	"strings"

	"golang.org/x/text/cases"
)

// Attribute is one semicolon-separated entry of the attribute column. Entries
// without an '=' keep their whole text in Key and report HasValue false.
type Attribute struct {
	Key      string
	Value    string
	HasValue bool
}

// Attr builds a key=value attribute.
func Attr(key, value string) Attribute {
	return Attribute{Key: key, Value: value, HasValue: true}
}

func (a Attribute) String() string {
	if !a.HasValue {
		return a.Key
	}
	return a.Key + "=" + a.Value
}

// Attributes is the ordered content of the attribute column. Parsing and
// serializing an attribute column reproduces it byte for byte, including
// empty entries produced by leading, doubled or trailing semicolons.
type Attributes []Attribute

// ParseAttributes splits an attribute column on semicolons and each entry on
// its first '='.
func ParseAttributes(text string) Attributes {
	parts := strings.Split(text, ";")
	attrs := make(Attributes, 0, len(parts))
	for _, part := range parts {
		key, value, ok := strings.Cut(part, "=")
		attrs = append(attrs, Attribute{Key: key, Value: value, HasValue: ok})
	}
	return attrs
}

func (a Attributes) String() string {
	parts := make([]string, len(a))
	for i, attr := range a {
		parts[i] = attr.String()
	}
	return strings.Join(parts, ";")
}

// Clone returns an independent copy.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// Index returns the position of the first key=value entry whose key equals
// key exactly, or -1.
func (a Attributes) Index(key string) int {
	for i, attr := range a {
		if attr.HasValue && attr.Key == key {
			return i
		}
	}
	return -1
}

// IndexFold is Index with Unicode case-insensitive key matching.
func (a Attributes) IndexFold(key string) int {
	fold := cases.Fold()
	want := fold.String(key)
	for i, attr := range a {
		if attr.HasValue && fold.String(attr.Key) == want {
			return i
		}
	}
	return -1
}

// Get returns the value stored under key.
func (a Attributes) Get(key string) (string, bool) {
	if i := a.Index(key); i >= 0 {
		return a[i].Value, true
	}
	return "", false
}

// Prepend returns a new list with attr in front of a.
func (a Attributes) Prepend(attr Attribute) Attributes {
	out := make(Attributes, 0, len(a)+1)
	out = append(out, attr)
	return append(out, a...)
}

// InsertAfter returns a new list with attr placed directly after position i.
func (a Attributes) InsertAfter(i int, attr Attribute) Attributes {
	out := make(Attributes, 0, len(a)+1)
	out = append(out, a[:i+1]...)
	out = append(out, attr)
	return append(out, a[i+1:]...)
}
