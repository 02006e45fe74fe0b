package markup

import (
	"slices"
	"strings"
)

// Kind distinguishes the node variants of a markup tree.
type Kind int

const (
	KindElement Kind = iota
	KindText
	KindFragment
)

// Attr is one element attribute. Boolean attributes (required, multiple)
// render without a value.
type Attr struct {
	Key     string
	Value   string
	Boolean bool
}

// Node is a markup tree node. Element nodes carry a tag, ordered attributes
// and children; text nodes carry unescaped text; fragments group children
// without a wrapping element.
type Node struct {
	Kind     Kind
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// El creates an element node with optional children.
func El(tag string, children ...*Node) *Node {
	return &Node{Kind: KindElement, Tag: tag, Children: compact(children)}
}

// Text creates a text node.
func Text(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}

// Fragment groups nodes without a wrapping element.
func Fragment(children ...*Node) *Node {
	return &Node{Kind: KindFragment, Children: compact(children)}
}

// Set assigns an attribute value, replacing an existing key.
func (n *Node) Set(key, value string) *Node {
	return n.setAttr(Attr{Key: key, Value: value})
}

// Flag sets a boolean attribute.
func (n *Node) Flag(key string) *Node {
	return n.setAttr(Attr{Key: key, Boolean: true})
}

// FlagIf sets a boolean attribute when cond holds.
func (n *Node) FlagIf(cond bool, key string) *Node {
	if !cond {
		return n
	}
	return n.Flag(key)
}

// Class appends class names to the class attribute.
func (n *Node) Class(names ...string) *Node {
	classes := n.Classes()
	for _, name := range names {
		for _, token := range strings.Fields(name) {
			if !slices.Contains(classes, token) {
				classes = append(classes, token)
			}
		}
	}
	if len(classes) == 0 {
		return n
	}
	return n.Set("class", strings.Join(classes, " "))
}

// Append adds children, skipping nil entries.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, compact(children)...)
	return n
}

func (n *Node) setAttr(attr Attr) *Node {
	for i := range n.Attrs {
		if n.Attrs[i].Key == attr.Key {
			n.Attrs[i] = attr
			return n
		}
	}
	n.Attrs = append(n.Attrs, attr)
	return n
}

// Attr returns the value of key and whether it is present.
func (n *Node) Attr(key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, attr := range n.Attrs {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Has reports whether the attribute is present, boolean or valued.
func (n *Node) Has(key string) bool {
	_, ok := n.Attr(key)
	return ok
}

// Classes returns the class tokens in declaration order.
func (n *Node) Classes() []string {
	value, _ := n.Attr("class")
	return strings.Fields(value)
}

// HasClass reports whether name is one of the node's classes.
func (n *Node) HasClass(name string) bool {
	return slices.Contains(n.Classes(), name)
}

// TextContent concatenates the text of every descendant text node.
func (n *Node) TextContent() string {
	if n == nil {
		return ""
	}
	if n.Kind == KindText {
		return n.Text
	}
	var b strings.Builder
	for _, child := range n.Children {
		b.WriteString(child.TextContent())
	}
	return b.String()
}

// Find returns every node in the subtree, the receiver included, matching fn
// in document order.
func (n *Node) Find(fn func(*Node) bool) []*Node {
	var out []*Node
	n.Walk(func(node *Node) {
		if fn(node) {
			out = append(out, node)
		}
	})
	return out
}

// Walk visits the subtree depth-first in document order.
func (n *Node) Walk(fn func(*Node)) {
	if n == nil {
		return
	}
	fn(n)
	for _, child := range n.Children {
		child.Walk(fn)
	}
}

// ByTag matches element nodes with the given tag.
func ByTag(tag string) func(*Node) bool {
	return func(n *Node) bool {
		return n.Kind == KindElement && n.Tag == tag
	}
}

// ByClass matches element nodes carrying the given class.
func ByClass(name string) func(*Node) bool {
	return func(n *Node) bool {
		return n.Kind == KindElement && n.HasClass(name)
	}
}

func compact(nodes []*Node) []*Node {
	if len(nodes) == 0 {
		return nil
	}
	out := make([]*Node, 0, len(nodes))
	for _, node := range nodes {
		if node != nil {
			out = append(out, node)
		}
	}
	return out
}
