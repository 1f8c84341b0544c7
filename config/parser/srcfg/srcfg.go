package srcfg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/srcfg"
	"github.com/0xalexb/srcfg/config"
	"github.com/0xalexb/srcfg/tree"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the document.
var ErrPathNotFound = errors.New("path not found")

// Parser implements config.Parser for srcfg documents.
type Parser struct {
	opts []srcfg.Option
}

// NewParser creates a new srcfg parser. The options configure the
// underlying srcfg.Parser built for every Parse call.
func NewParser(opts ...srcfg.Option) *Parser {
	return &Parser{opts: opts}
}

// Parse parses src and decodes the section at path into target.
// Any line error in the document fails the whole parse.
func (p *Parser) Parse(src config.Source, target any, path string) error {
	if len(src.Data) == 0 {
		return ErrEmptyData
	}

	parser, err := srcfg.NewParser(p.opts...)
	if err != nil {
		return fmt.Errorf("creating parser: %w", err)
	}

	file, errs := parser.ParseText(string(src.Data), src.Dir)

	err = errs.Err()
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	if path == "" {
		return decode(file.Decode(target))
	}

	section, err := navigate(file, path)
	if err != nil {
		return err
	}

	return decode(section.Decode(target))
}

func decode(err error) error {
	if err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	return nil
}

// navigate follows a dotted path of single sections.
func navigate(file *tree.File, path string) (*tree.Section, error) {
	parts := strings.Split(path, ".")

	section, err := file.GetSection(parts[0])
	if err != nil {
		return nil, pathError(path, err)
	}

	for _, part := range parts[1:] {
		section, err = section.GetSection(part)
		if err != nil {
			return nil, pathError(path, err)
		}
	}

	return section, nil
}

func pathError(path string, err error) error {
	if errors.Is(err, tree.ErrSectionNotFound) {
		return fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}

	return fmt.Errorf("reading path %q: %w", path, err)
}
