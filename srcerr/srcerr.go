package srcerr

import (
	"errors"
	"fmt"
)

// Kind identifies the class of a srcfg error.
type Kind string

const (
	// KindSyntax marks a line that matches no production of the grammar.
	KindSyntax Kind = "syntax"
	// KindStructural marks a directive, header or key used outside its required context.
	KindStructural Kind = "structural"
	// KindConflict marks a name bound both as a single section and as an array of sections.
	KindConflict Kind = "kind_conflict"
	// KindEnvVarMissing marks an interpolation of an unset environment variable.
	KindEnvVarMissing Kind = "env_var_missing"
	// KindFileNotFound marks an import target that could not be located.
	KindFileNotFound Kind = "file_not_found"
	// KindUnsupported marks a recognized but unimplemented directive.
	KindUnsupported Kind = "unsupported"
	// KindImport marks an import whose file produced errors of its own.
	KindImport Kind = "import"
	// KindMerge marks a failed import merge.
	KindMerge Kind = "merge"
	// KindCyclicImport marks an import chain that loops or nests too deeply.
	KindCyclicImport Kind = "cyclic_import"
	// KindIO marks a failure reading a file.
	KindIO Kind = "io"
	// KindConversion marks a stored value that cannot be read as the requested type.
	KindConversion Kind = "conversion"
)

// Error attaches a Kind to an underlying error.
type Error struct {
	Kind Kind
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}

	if e.Err == nil {
		return string(e.Kind)
	}

	return e.Err.Error()
}

// Unwrap gives errors.Is and errors.As access to the underlying error.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.Err
}

// New creates an error of the given kind. A nil err is replaced by one
// carrying the kind name.
func New(kind Kind, err error) error {
	if err == nil {
		err = errors.New(string(kind))
	}

	return &Error{Kind: kind, Err: err}
}

// Newf is New with a formatted message.
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf returns the kind of the outermost classified error in err's chain,
// or the empty Kind if there is none.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}

	return ""
}

// Is reports whether err is classified as kind.
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
