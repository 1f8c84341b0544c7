package srcfg

import (
	"errors"
	"fmt"

	"github.com/0xalexb/srcfg/srcerr"
)

// Line errors.
var (
	// ErrSyntax is returned for a line that is neither a comment, directive, header nor assignment.
	ErrSyntax = srcerr.New(srcerr.KindSyntax, errors.New("unable to parse"))
	// ErrMalformedHeader is returned for a line starting with "[" that is not a valid header.
	ErrMalformedHeader = srcerr.New(srcerr.KindSyntax, errors.New("malformed section header"))
	// ErrUnknownDirective is returned for an @directive other than @import and @insert.
	ErrUnknownDirective = srcerr.New(srcerr.KindSyntax, errors.New("unknown directive"))
	// ErrMissingTarget is returned for @import without a target.
	ErrMissingTarget = srcerr.New(srcerr.KindSyntax, errors.New("missing import target"))
	// ErrKeyOutsideSection is returned for an assignment before any section header.
	ErrKeyOutsideSection = srcerr.New(srcerr.KindStructural, errors.New("cannot have key/value outside a section"))
	// ErrMissingKey is returned for a continuation line with no key to continue.
	ErrMissingKey = srcerr.New(srcerr.KindStructural, errors.New("please specify a key"))
	// ErrInsertOutsideSection is returned for @insert before any section header.
	ErrInsertOutsideSection = srcerr.New(srcerr.KindStructural,
		errors.New("can only use @insert directive inside a section"))
	// ErrUnsupportedDirective is returned for @insert, which is reserved but not implemented.
	ErrUnsupportedDirective = srcerr.New(srcerr.KindUnsupported, errors.New("directive is not supported"))
)

// Import errors.
var (
	// ErrImport marks an @import line whose file produced errors; they are attached as Nested.
	ErrImport = srcerr.New(srcerr.KindImport, errors.New("got errors when importing file"))
	// ErrCyclicImport is returned when a file imports itself, directly or not.
	ErrCyclicImport = srcerr.New(srcerr.KindCyclicImport, errors.New("cyclic import"))
	// ErrImportDepth is returned when imports nest deeper than the configured limit.
	ErrImportDepth = srcerr.New(srcerr.KindCyclicImport, errors.New("import nesting too deep"))
)

// ParseError describes one rejected line. Line is 1-based; it is 0 for
// failures that concern a whole file, such as a missing one.
type ParseError struct {
	Line    int
	Text    string
	Message string
	Err     error
	Nested  ParseErrors
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Message
	}

	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Unwrap exposes the cause and the nested errors to errors.Is and errors.As.
func (e *ParseError) Unwrap() []error {
	unwrapped := make([]error, 0, len(e.Nested)+1)
	if e.Err != nil {
		unwrapped = append(unwrapped, e.Err)
	}

	for _, nested := range e.Nested {
		unwrapped = append(unwrapped, nested)
	}

	return unwrapped
}

// Kind returns the classification of the cause.
func (e *ParseError) Kind() srcerr.Kind {
	return srcerr.KindOf(e.Err)
}

// ParseErrors is the list of errors collected while parsing one document.
type ParseErrors []*ParseError

// Err returns nil for an empty list and a joined error otherwise.
func (e ParseErrors) Err() error {
	if len(e) == 0 {
		return nil
	}

	errs := make([]error, 0, len(e))
	for _, parseErr := range e {
		errs = append(errs, parseErr)
	}

	return errors.Join(errs...)
}

// Flatten lists every error, nested ones right after the import line that
// carries them.
func (e ParseErrors) Flatten() ParseErrors {
	var flat ParseErrors

	for _, parseErr := range e {
		flat = append(flat, parseErr)
		flat = append(flat, parseErr.Nested.Flatten()...)
	}

	return flat
}

func fileError(err error) ParseErrors {
	return ParseErrors{{Message: err.Error(), Err: err}}
}
