package tree

import (
	"sort"
)

// NodeKind tells a single section from an array of sections.
type NodeKind uint8

const (
	// KindSection is a name bound to exactly one section.
	KindSection NodeKind = iota
	// KindArray is a name bound to an ordered list of sections.
	KindArray
)

// String returns the kind name.
func (k NodeKind) String() string {
	if k == KindArray {
		return "array"
	}

	return "section"
}

// Node is what a section name is bound to: *Section or *Array.
type Node interface {
	Kind() NodeKind
}

// Array is an ordered list of sibling sections sharing one name.
type Array struct {
	Sections []*Section
}

// Kind implements Node.
func (*Array) Kind() NodeKind { return KindArray }

// Len returns the number of sections in the array.
func (a *Array) Len() int { return len(a.Sections) }

// children is the name -> Node map shared by File and Section.
type children struct {
	nodes map[string]Node
}

func newChildren() children {
	return children{nodes: make(map[string]Node)}
}

// HasSection reports whether name is bound to a section or an array.
func (c *children) HasSection(name string) bool {
	_, ok := c.nodes[name]

	return ok
}

// Node returns whatever name is bound to.
func (c *children) Node(name string) (Node, bool) {
	node, ok := c.nodes[name]

	return node, ok
}

// GetSection returns the single section bound to name.
func (c *children) GetSection(name string) (*Section, error) {
	node, ok := c.nodes[name]
	if !ok {
		return nil, notFound(name)
	}

	section, ok := node.(*Section)
	if !ok {
		return nil, wrongKind(name, ErrUnexpectedArray)
	}

	return section, nil
}

// GetSectionList returns the sections of the array bound to name.
func (c *children) GetSectionList(name string) ([]*Section, error) {
	node, ok := c.nodes[name]
	if !ok {
		return nil, notFound(name)
	}

	array, ok := node.(*Array)
	if !ok {
		return nil, wrongKind(name, ErrUnexpectedSection)
	}

	return array.Sections, nil
}

// Names returns the bound section names in sorted order.
func (c *children) Names() []string {
	return sortedKeys(c.nodes)
}

// File is the root of a parsed document. It holds sections but never entries.
type File struct {
	children
}

// NewFile creates an empty File.
func NewFile() *File {
	return &File{children: newChildren()}
}

// Contains reports whether name is bound at the top level.
func (f *File) Contains(name string) bool {
	return f.HasSection(name)
}

// Section is a named node holding child sections and string entries.
type Section struct {
	children

	name    string
	parent  *Section
	entries map[string]string
}

// NewSection creates a detached section. parent is a navigational link only;
// nil means the section sits directly under a File.
func NewSection(name string, parent *Section) *Section {
	return &Section{
		children: newChildren(),
		name:     name,
		parent:   parent,
		entries:  make(map[string]string),
	}
}

// Kind implements Node.
func (*Section) Kind() NodeKind { return KindSection }

// Name returns the section's own name (the last path segment).
func (s *Section) Name() string { return s.name }

// Parent returns the enclosing section, or nil under a File.
func (s *Section) Parent() *Section { return s.parent }

// Top returns the outermost ancestor that sits directly under the File.
func (s *Section) Top() *Section {
	top := s
	for top.parent != nil {
		top = top.parent
	}

	return top
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
