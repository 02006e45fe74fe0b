package markup

import (
	"bufio"
	"html"
	"io"
	"strings"
)

const indentUnit = "  "

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "hr": {}, "img": {},
	"input": {}, "link": {}, "meta": {}, "source": {}, "wbr": {},
}

// IsVoid reports whether tag is an HTML void element.
func IsVoid(tag string) bool {
	_, ok := voidElements[strings.ToLower(tag)]
	return ok
}

// Render serialises the tree as indented HTML. Text and attribute values are
// escaped; elements whose children are all text stay on one line.
func Render(w io.Writer, n *Node) error {
	bw := bufio.NewWriter(w)
	r := &serializer{w: bw}
	r.node(n, 0)
	if r.err != nil {
		return r.err
	}
	return bw.Flush()
}

// String renders the tree, returning an empty string for nil nodes.
func (n *Node) String() string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	_ = Render(&b, n)
	return b.String()
}

type serializer struct {
	w   *bufio.Writer
	err error
}

func (s *serializer) write(parts ...string) {
	if s.err != nil {
		return
	}
	for _, part := range parts {
		if _, err := s.w.WriteString(part); err != nil {
			s.err = err
			return
		}
	}
}

func (s *serializer) node(n *Node, depth int) {
	if n == nil || s.err != nil {
		return
	}
	switch n.Kind {
	case KindText:
		s.write(indent(depth), html.EscapeString(n.Text), "\n")
	case KindFragment:
		for _, child := range n.Children {
			s.node(child, depth)
		}
	default:
		s.element(n, depth)
	}
}

func (s *serializer) element(n *Node, depth int) {
	s.write(indent(depth))
	s.openTag(n)
	if IsVoid(n.Tag) {
		s.write("\n")
		return
	}
	if inline(n) {
		for _, child := range n.Children {
			s.write(html.EscapeString(child.Text))
		}
		s.write("</", n.Tag, ">\n")
		return
	}
	s.write("\n")
	for _, child := range n.Children {
		s.node(child, depth+1)
	}
	s.write(indent(depth), "</", n.Tag, ">\n")
}

func (s *serializer) openTag(n *Node) {
	s.write("<", n.Tag)
	for _, attr := range n.Attrs {
		if attr.Key == "" {
			continue
		}
		if attr.Boolean {
			s.write(" ", attr.Key)
			continue
		}
		s.write(" ", attr.Key, `="`, html.EscapeString(attr.Value), `"`)
	}
	s.write(">")
}

func inline(n *Node) bool {
	for _, child := range n.Children {
		if child.Kind != KindText {
			return false
		}
	}
	return true
}

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}
