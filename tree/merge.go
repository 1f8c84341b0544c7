package tree

import (
	"fmt"
	"strings"
)

// Merge moves the sections of src into f. See (*Section).Merge for the rules.
// src must not be used afterwards: its sections are moved, not copied.
func (f *File) Merge(src *File) error {
	err := checkMerge(&f.children, &src.children, nil)
	if err != nil {
		return err
	}

	mergeChildren(&f.children, nil, &src.children)

	return nil
}

// Merge folds src into s. Entries of src overwrite entries of s. Child
// names missing from s are moved over as they are; single sections present
// on both sides are merged recursively and arrays are concatenated in order.
// A name bound with different kinds on the two sides fails with
// ErrMergeConflict, in which case s is left untouched.
func (s *Section) Merge(src *Section) error {
	err := checkMerge(&s.children, &src.children, []string{s.name})
	if err != nil {
		return err
	}

	mergeSection(s, src)

	return nil
}

// checkMerge walks both trees and reports the first kind conflict, without
// mutating anything.
func checkMerge(dst, src *children, path []string) error {
	for _, name := range src.Names() {
		dstNode, ok := dst.nodes[name]
		if !ok {
			continue
		}

		childPath := append(path[:len(path):len(path)], name)

		srcNode := src.nodes[name]
		if dstNode.Kind() != srcNode.Kind() {
			return fmt.Errorf("section %q (%s into %s): %w",
				strings.Join(childPath, "."), srcNode.Kind(), dstNode.Kind(), ErrMergeConflict)
		}

		dstSection, ok := dstNode.(*Section)
		if !ok {
			continue
		}

		err := checkMerge(&dstSection.children, &srcNode.(*Section).children, childPath)
		if err != nil {
			return err
		}
	}

	return nil
}

func mergeSection(dst, src *Section) {
	for key, value := range src.entries {
		dst.entries[key] = value
	}

	mergeChildren(&dst.children, dst, &src.children)
}

// mergeChildren assumes checkMerge succeeded.
func mergeChildren(dst *children, owner *Section, src *children) {
	for name, srcNode := range src.nodes {
		switch srcNode := srcNode.(type) {
		case *Section:
			dstSection, ok := dst.nodes[name].(*Section)
			if ok {
				mergeSection(dstSection, srcNode)

				continue
			}

			srcNode.parent = owner
			dst.nodes[name] = srcNode
		case *Array:
			for _, section := range srcNode.Sections {
				section.parent = owner
			}

			dstArray, ok := dst.nodes[name].(*Array)
			if ok {
				dstArray.Sections = append(dstArray.Sections, srcNode.Sections...)

				continue
			}

			dst.nodes[name] = srcNode
		}
	}
}
