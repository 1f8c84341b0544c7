package srcfg

import (
	"errors"
	"fmt"
	"log/slog"

	"go.uber.org/fx"

	"github.com/0xalexb/srcfg/tree"
)

// ErrEmptyName is returned when the module name is empty.
var ErrEmptyName = errors.New("module name must not be empty")

// ErrEmptyPath is returned when the module is given no file to load.
var ErrEmptyPath = errors.New("config path must not be empty")

// NewModule creates an Fx module that parses the file at path when the
// container is built and provides it as a *tree.File named name.
// Any parse error fails construction. When the container holds a
// *slog.Logger it is used unless opts set another one.
//
//nolint:ireturn // fx.Option is the standard return type for Fx modules
func NewModule(name, path string, opts ...Option) fx.Option {
	if name == "" {
		return fx.Error(ErrEmptyName)
	}

	if path == "" {
		return fx.Error(ErrEmptyPath)
	}

	load := func(logger *slog.Logger) (*tree.File, error) {
		all := opts
		if logger != nil {
			all = append([]Option{WithLogger(logger)}, opts...)
		}

		parser, err := NewParser(all...)
		if err != nil {
			return nil, fmt.Errorf("module %s: %w", name, err)
		}

		file, errs := parser.ParseFile(path, "")

		err = errs.Err()
		if err != nil {
			return nil, fmt.Errorf("module %s: loading %s: %w", name, path, err)
		}

		return file, nil
	}

	return fx.Module(name, fx.Provide(
		fx.Annotate(
			load,
			fx.ParamTags(`optional:"true"`),
			fx.ResultTags(fmt.Sprintf(`name:"%s"`, name)),
		),
	))
}
