// Package xmlmerge provides parsing, serialization, and predicate-based
// merging of XML configuration documents such as MSBuild project files.
//
// Documents are ordered element trees. The merge operation replaces the
// first element matched by a caller-supplied predicate with the matching
// elements from a patch fragment and removes every later match, so that
// exactly one authoritative declaration survives without reordering
// unrelated content.
package xmlmerge

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNoRoot indicates the document contains no root element.
var ErrNoRoot = errors.New("document has no root element")

// Element is a node in an ordered XML tree. Sibling order is preserved
// across parse and serialize unless explicitly mutated by a merge.
type Element struct {
	Name     xml.Name
	Attrs    []xml.Attr
	Text     string
	Children []*Element
}

// Child returns the first direct child with the given local name, or nil.
func (e *Element) Child(local string) *Element {
	for _, c := range e.Children {
		if c.Name.Local == local {
			return c
		}
	}
	return nil
}

// Elements returns all direct children with the given local name.
func (e *Element) Elements(local string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name.Local == local {
			out = append(out, c)
		}
	}
	return out
}

// Document is a parsed XML document.
type Document struct {
	Root *Element
}

// Parse reads a complete XML document from r. A document without a root
// element is a parse error, not an empty document.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)

	var root *Element
	var stack []*Element

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Name:  t.Name,
				Attrs: append([]xml.Attr(nil), t.Attr...),
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("parse document: multiple root elements")
				}
				root = el
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			el := stack[len(stack)-1]
			el.Text = strings.TrimSpace(el.Text)
			stack = stack[:len(stack)-1]

		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}

	if root == nil {
		return nil, fmt.Errorf("parse document: %w", ErrNoRoot)
	}
	return &Document{Root: root}, nil
}

// ParseString parses a complete XML document from a string.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// ParseFragment parses a non-root-complete snippet of elements. The
// snippet is wrapped in a synthetic <Root><Group>...</Group></Root>
// envelope before parsing so that a partial fragment becomes parseable
// and its top-level elements form a single implicit group.
func ParseFragment(fragment string) (*Document, error) {
	doc, err := ParseString("<Root><Group>" + fragment + "</Group></Root>")
	if err != nil {
		return nil, fmt.Errorf("parse fragment: %w", err)
	}
	return doc, nil
}

// Write serializes the document to w with two-space indentation.
// Element and attribute structure is preserved; whitespace fidelity of
// the original text is not.
func (d *Document) Write(w io.Writer) error {
	if d == nil || d.Root == nil {
		return ErrNoRoot
	}
	return writeElement(w, d.Root, 0)
}

// String serializes the document to a string.
func (d *Document) String() string {
	var sb strings.Builder
	_ = d.Write(&sb)
	return sb.String()
}

var (
	textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	attrEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", `"`, "&quot;")
)

func writeElement(w io.Writer, e *Element, depth int) error {
	indent := strings.Repeat("  ", depth)
	if _, err := fmt.Fprintf(w, "%s<%s", indent, e.Name.Local); err != nil {
		return err
	}
	for _, a := range e.Attrs {
		name := a.Name.Local
		if a.Name.Space == "xmlns" {
			name = "xmlns:" + a.Name.Local
		}
		if _, err := fmt.Fprintf(w, " %s=\"%s\"", name, attrEscaper.Replace(a.Value)); err != nil {
			return err
		}
	}

	switch {
	case len(e.Children) == 0 && e.Text == "":
		_, err := io.WriteString(w, " />\n")
		return err

	case len(e.Children) == 0:
		_, err := fmt.Fprintf(w, ">%s</%s>\n", textEscaper.Replace(e.Text), e.Name.Local)
		return err

	default:
		if _, err := io.WriteString(w, ">\n"); err != nil {
			return err
		}
		for _, c := range e.Children {
			if err := writeElement(w, c, depth+1); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, "%s</%s>\n", indent, e.Name.Local)
		return err
	}
}
