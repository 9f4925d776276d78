package xmlresp

import (
	"bytes"
	"encoding/xml"
	"io"

	"lpass/internal/domain"
)

// Element is one node of a parsed reply: a name, its attributes, and its
// child elements in document order.
type Element struct {
	Name     string
	Attrs    []xml.Attr
	Children []*Element
}

// Child returns the first child element with the given local name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Attr returns the value of the named attribute and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Tree is a fully parsed server reply.
type Tree struct {
	root *Element
}

// Parse builds a Tree from raw response bytes. Any syntax error, an
// element close that does not match its open, or an element left open at
// end of input yields a *domain.ProtocolError.
func Parse(data []byte) (*Tree, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	root := &Element{}
	stack := []*Element{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &domain.ProtocolError{Reason: "malformed response: " + err.Error()}
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{
				Name:  t.Name.Local,
				Attrs: append([]xml.Attr(nil), t.Attr...),
			}
			stack = append(stack, el)
		case xml.EndElement:
			// The decoder already rejects mismatched closes; this guards
			// the stack invariant all the same.
			top := stack[len(stack)-1]
			if top == root || top.Name != t.Name.Local {
				return nil, &domain.ProtocolError{
					Reason: "malformed response: unbalanced element " + t.Name.Local,
				}
			}
			stack = stack[:len(stack)-1]
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, top)
		}
	}

	if len(stack) != 1 {
		return nil, &domain.ProtocolError{
			Reason: "malformed response: element left open: " + stack[len(stack)-1].Name,
		}
	}

	return &Tree{root: root}, nil
}

// Element walks the tree by name, taking the first matching child at each
// level. It returns nil if any step has no match.
func (t *Tree) Element(path ...string) *Element {
	cur := t.root
	for _, name := range path {
		cur = cur.Child(name)
		if cur == nil {
			return nil
		}
	}
	return cur
}
