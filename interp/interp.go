package interp

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/0xalexb/srcfg/srcerr"
)

// CommentPrefix starts a comment, both as a whole line and after an interpolated value.
const CommentPrefix = ";;"

// Mode selects how a raw value is interpreted.
type Mode uint8

const (
	// Interpolated strips trailing comments and substitutes ${NAME} placeholders.
	Interpolated Mode = iota
	// Raw keeps the value byte for byte.
	Raw
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case Interpolated:
		return "interpolated"
	case Raw:
		return "raw"
	default:
		return fmt.Sprintf("mode(%d)", uint8(m))
	}
}

// ErrEnvVarMissing is returned when a placeholder names an unset variable.
var ErrEnvVarMissing = srcerr.New(srcerr.KindEnvVarMissing, errors.New("environment variable not set"))

// MissingEnvError reports the variable a placeholder referred to.
type MissingEnvError struct {
	Name string
}

// Error implements the error interface.
func (e *MissingEnvError) Error() string {
	return fmt.Sprintf("unable to find env var %s", e.Name)
}

// Unwrap makes errors.Is(err, ErrEnvVarMissing) hold.
func (e *MissingEnvError) Unwrap() error {
	return ErrEnvVarMissing
}

var placeholderRe = regexp.MustCompile(`\$\{([^}]+)\}`)

// Interpreter applies a Mode to raw values using an Env for substitution.
type Interpreter struct {
	env Env
}

// New creates an Interpreter. A nil env means the live process environment.
func New(env Env) *Interpreter {
	if env == nil {
		env = OSEnv{}
	}

	return &Interpreter{env: env}
}

// Interpret returns the entry value for raw in the given mode.
func (i *Interpreter) Interpret(raw string, mode Mode) (string, error) {
	if mode == Raw {
		return raw, nil
	}

	value := StripComment(raw)

	var missing error

	result := placeholderRe.ReplaceAllStringFunc(value, func(placeholder string) string {
		if missing != nil {
			return placeholder
		}

		name := placeholder[2 : len(placeholder)-1]

		replacement, ok := i.env.Lookup(name)
		if !ok {
			missing = &MissingEnvError{Name: name}

			return placeholder
		}

		return replacement
	})
	if missing != nil {
		return "", missing
	}

	return result, nil
}

// StripComment truncates value at the first comment marker and trims what
// remains. Values without a marker are returned unchanged.
func StripComment(value string) string {
	idx := strings.Index(value, CommentPrefix)
	if idx < 0 {
		return value
	}

	return strings.TrimSpace(value[:idx])
}
