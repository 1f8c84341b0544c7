package tree

import (
	"errors"
	"fmt"

	"github.com/0xalexb/srcfg/srcerr"
)

// Lookup errors.
var (
	// ErrSectionNotFound is returned when no section or array is bound to a name.
	ErrSectionNotFound = errors.New("section not found")
	// ErrUnexpectedArray is returned by GetSection when the name is bound to an array.
	ErrUnexpectedArray = srcerr.New(srcerr.KindConflict, errors.New("unexpected section list"))
	// ErrUnexpectedSection is returned by GetSectionList when the name is bound to a single section.
	ErrUnexpectedSection = srcerr.New(srcerr.KindConflict, errors.New("unexpected section (expected a list)"))
	// ErrConversion is returned when an entry cannot be read as the requested type.
	ErrConversion = srcerr.New(srcerr.KindConversion, errors.New("conversion failed"))
)

// Path resolution errors.
var (
	// ErrDotOutsideSection is returned for a dot-prefixed path with no current section.
	ErrDotOutsideSection = srcerr.New(srcerr.KindStructural,
		errors.New("cannot use dot-section names outside a section"))
	// ErrEmptySectionName is returned for a path with an empty segment.
	ErrEmptySectionName = srcerr.New(srcerr.KindSyntax, errors.New("unable to parse section name"))
	// ErrNotAnArray is returned when an array header names a single section.
	ErrNotAnArray = srcerr.New(srcerr.KindConflict, errors.New("section is not an array"))
	// ErrIsAnArray is returned when a section header names an array.
	ErrIsAnArray = srcerr.New(srcerr.KindConflict, errors.New("section is an array"))
	// ErrPathThroughArray is returned when a dotted path crosses an array.
	ErrPathThroughArray = srcerr.New(srcerr.KindConflict, errors.New("cannot use section path through arrays"))
)

// ErrMergeConflict is returned when an import binds a name with the other kind.
var ErrMergeConflict = srcerr.New(srcerr.KindConflict, errors.New("cannot merge section with list"))

func notFound(name string) error {
	return fmt.Errorf("%w: %s", ErrSectionNotFound, name)
}

func wrongKind(name string, err error) error {
	return fmt.Errorf("section %q: %w", name, err)
}
