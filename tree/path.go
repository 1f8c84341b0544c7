package tree

import (
	"fmt"
	"strings"
)

// AddSection resolves a dotted section path, creating missing sections on
// the way, and returns the section it names.
//
// A path starting with "." is resolved against the top-level ancestor of
// current and requires current to be set. Otherwise it is resolved against
// ref, or against the File when ref is nil. Every segment but the last must
// be (or becomes) a single section. With isArray the last segment gets a new
// section appended to its array; without it the existing single section is
// returned or a new one is bound.
func (f *File) AddSection(path string, current, ref *Section, isArray bool) (*Section, error) {
	if strings.HasPrefix(path, ".") {
		if current == nil {
			return nil, ErrDotOutsideSection
		}

		ref = current.Top()
		path = path[1:]
	}

	base := &f.children
	if ref != nil {
		base = &ref.children
	}

	return addSection(base, ref, path, isArray)
}

// addSection walks one path segment under base, whose owning section is owner
// (nil for the File).
func addSection(base *children, owner *Section, path string, isArray bool) (*Section, error) {
	head, tail, nested := strings.Cut(path, ".")
	if head == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptySectionName, path)
	}

	if nested {
		section, err := singleSection(base, owner, head, ErrPathThroughArray)
		if err != nil {
			return nil, err
		}

		return addSection(&section.children, section, tail, isArray)
	}

	if !isArray {
		return singleSection(base, owner, head, ErrIsAnArray)
	}

	node, ok := base.nodes[head]
	if !ok {
		section := NewSection(head, owner)
		base.nodes[head] = &Array{Sections: []*Section{section}}

		return section, nil
	}

	array, ok := node.(*Array)
	if !ok {
		return nil, fmt.Errorf("section %q: %w", head, ErrNotAnArray)
	}

	section := NewSection(head, owner)
	array.Sections = append(array.Sections, section)

	return section, nil
}

// singleSection returns the single section bound to name under base,
// creating it when the name is free. conflict is returned when the name is
// bound to an array.
func singleSection(base *children, owner *Section, name string, conflict error) (*Section, error) {
	node, ok := base.nodes[name]
	if !ok {
		section := NewSection(name, owner)
		base.nodes[name] = section

		return section, nil
	}

	section, ok := node.(*Section)
	if !ok {
		return nil, fmt.Errorf("section %q: %w", name, conflict)
	}

	return section, nil
}
