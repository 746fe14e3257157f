// Package dom provides the minimal XML element tree the animation
// parsers walk: local-name lookups, parent links, and attribute access
// that ignores namespace prefixes (href matches xlink:href).
package dom

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Attr is one element attribute with its namespace-local name.
type Attr struct {
	Name  string // local part, prefix stripped
	Space string // namespace prefix or URL as written
	Value string
}

// Element is one node of the parsed document.
type Element struct {
	Name     string // local tag name
	Attrs    []Attr
	Children []*Element
	Parent   *Element
	Text     string // concatenated character data
}

// Parse reads an XML document into an element tree.
func Parse(r io.Reader) (*Element, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charset.NewReaderLabel

	var root *Element
	var current *Element
	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing document xml: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: t.Name.Local, Parent: current}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{
					Name:  a.Name.Local,
					Space: a.Name.Space,
					Value: a.Value,
				})
			}
			if current != nil {
				current.Children = append(current.Children, el)
			} else if root == nil {
				root = el
			}
			current = el
		case xml.EndElement:
			if current != nil {
				current = current.Parent
			}
		case xml.CharData:
			if current != nil {
				current.Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, fmt.Errorf("document contains no elements")
	}
	return root, nil
}

// ParseString parses an XML document held in a string.
func ParseString(s string) (*Element, error) {
	return Parse(strings.NewReader(s))
}

// Attr returns the value of the named attribute, matching on the local
// name so href also finds xlink:href. Empty string when absent.
func (e *Element) Attr(name string) string {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// HasAttr reports whether the named attribute is present.
func (e *Element) HasAttr(name string) bool {
	for _, a := range e.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}

// ID returns the element's id attribute.
func (e *Element) ID() string { return e.Attr("id") }

// FindAll returns every descendant (depth-first, document order) whose
// tag matches one of names, comparing case-insensitively.
func (e *Element) FindAll(names ...string) []*Element {
	var out []*Element
	e.walk(func(el *Element) {
		for _, n := range names {
			if strings.EqualFold(el.Name, n) {
				out = append(out, el)
				return
			}
		}
	})
	return out
}

// Child returns the first direct child with the given tag name.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if strings.EqualFold(c.Name, name) {
			return c
		}
	}
	return nil
}

func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.Children {
		c.walk(fn)
	}
}

// Walk visits e and every descendant in document order.
func (e *Element) Walk(fn func(*Element)) { e.walk(fn) }
