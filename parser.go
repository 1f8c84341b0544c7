package srcfg

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	filefetcher "github.com/0xalexb/srcfg/config/fetcher/file"
	"github.com/0xalexb/srcfg/interp"
	"github.com/0xalexb/srcfg/logging"
	"github.com/0xalexb/srcfg/srcerr"
	"github.com/0xalexb/srcfg/tree"
)

// Parser turns srcfg text into a tree.File. A Parser holds no per-document
// state and may be reused.
type Parser struct {
	logger   *slog.Logger
	interp   *interp.Interpreter
	resolver Resolver
	settings Settings
}

// NewParser creates a Parser. Settings not given as options are read from
// SRCFG_* environment variables and then from DefaultSettings.
func NewParser(opts ...Option) (*Parser, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	settings, err := resolveSettings(options.Settings, options.Environ)
	if err != nil {
		return nil, err
	}

	logger := options.Logger
	if logger == nil {
		logger = logging.NewLogger(logging.LoggerConfig{
			Level:  settings.LogLevel,
			Format: settings.LogFormat,
		}, os.Stderr)
	}

	resolver := options.Resolver
	if resolver == nil {
		resolver = filefetcher.NewResolver()
	}

	return &Parser{
		logger:   logger,
		interp:   interp.New(options.Env),
		resolver: resolver,
		settings: settings,
	}, nil
}

// Settings returns the effective settings.
func (p *Parser) Settings() Settings {
	return p.settings
}

// ParseText parses contents. Imports are resolved against baseDir, or the
// working directory when baseDir is empty.
func (p *Parser) ParseText(contents, baseDir string) (*tree.File, ParseErrors) {
	return p.parseText(contents, baseDir, nil)
}

// ParseFile parses the file named by pathOrName. A bare name is searched for
// in cwd and its ancestors; a path is taken relative to cwd. The File is nil
// when the file cannot be found or read.
func (p *Parser) ParseFile(pathOrName, cwd string) (*tree.File, ParseErrors) {
	path, err := p.resolver.Resolve(pathOrName, cwd)
	if err != nil {
		return nil, fileError(err)
	}

	return p.loadFile(path, importChain{path})
}

func (p *Parser) loadFile(path string, chain importChain) (*tree.File, ParseErrors) {
	fetcher, err := filefetcher.NewFetcher(path)()
	if err != nil {
		return nil, fileError(err)
	}

	return p.parseText(fetcher.Text(), fetcher.Dir(), chain)
}

func (p *Parser) parseText(contents, baseDir string, chain importChain) (*tree.File, ParseErrors) {
	doc := &document{
		parser:  p,
		file:    tree.NewFile(),
		baseDir: baseDir,
		chain:   chain,
	}

	for i, text := range strings.Split(contents, "\n") {
		doc.handle(i+1, strings.TrimSuffix(text, "\r"))
	}

	return doc.file, doc.errors
}

// ParseText parses contents with a Parser configured from the environment.
func ParseText(contents, baseDir string) (*tree.File, ParseErrors) {
	parser, err := NewParser()
	if err != nil {
		return tree.NewFile(), fileError(err)
	}

	return parser.ParseText(contents, baseDir)
}

// ParseFile parses a file with a Parser configured from the environment.
func ParseFile(pathOrName, cwd string) (*tree.File, ParseErrors) {
	parser, err := NewParser()
	if err != nil {
		return nil, fileError(err)
	}

	return parser.ParseFile(pathOrName, cwd)
}

// importChain lists the absolute paths of the files being parsed, outermost first.
type importChain []string

func (c importChain) contains(path string) bool {
	return slices.Contains(c, path)
}

func (c importChain) with(path string) importChain {
	return append(c[:len(c):len(c)], path)
}

// document is the state of one ParseText call.
type document struct {
	parser  *Parser
	file    *tree.File
	baseDir string
	chain   importChain
	errors  ParseErrors

	lineNo     int
	text       string
	current    *tree.Section
	currentKey string
}

func (d *document) handle(lineNo int, text string) {
	d.lineNo = lineNo
	d.text = text

	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.HasPrefix(trimmed, interp.CommentPrefix) {
		return
	}

	var err error

	switch {
	case strings.HasPrefix(trimmed, "@"):
		err = d.directive(trimmed)
	case strings.HasPrefix(trimmed, "["):
		d.currentKey = ""
		err = d.header(trimmed)
	default:
		err = d.assignment(text)
	}

	if err != nil {
		d.fail(err, nil)
	}
}

func (d *document) fail(err error, nested ParseErrors) {
	d.parser.logger.Debug("line rejected",
		slog.Int("line", d.lineNo),
		slog.String("kind", string(srcerr.KindOf(err))),
		slog.String("error", err.Error()),
		slog.Int("nested", len(nested)))

	d.errors = append(d.errors, &ParseError{
		Line:    d.lineNo,
		Text:    d.text,
		Message: err.Error(),
		Err:     err,
		Nested:  nested,
	})
}

func (d *document) directive(trimmed string) error {
	name, arg := splitDirective(trimmed)

	switch name {
	case "import":
		d.currentKey = ""

		if arg == "" {
			return ErrMissingTarget
		}

		return d.importFile(arg)
	case "insert":
		d.currentKey = ""

		if d.current == nil {
			return ErrInsertOutsideSection
		}

		return fmt.Errorf("@insert %s: %w", arg, ErrUnsupportedDirective)
	default:
		return fmt.Errorf("%w: @%s", ErrUnknownDirective, name)
	}
}

func (d *document) importFile(target string) error {
	path, err := d.parser.resolver.Resolve(target, d.baseDir)
	if err != nil {
		return fmt.Errorf("importing %s: %w", target, err)
	}

	if d.chain.contains(path) {
		return fmt.Errorf("%w: %s", ErrCyclicImport, path)
	}

	if len(d.chain) >= d.parser.settings.MaxImportDepth {
		return fmt.Errorf("%w: %s (limit %d)", ErrImportDepth, path, d.parser.settings.MaxImportDepth)
	}

	d.parser.logger.Debug("importing file", slog.String("target", target), slog.String("path", path))

	imported, errs := d.parser.loadFile(path, d.chain.with(path))
	if len(errs) > 0 {
		d.fail(ErrImport, errs)
	}

	if imported == nil {
		return nil
	}

	err = d.file.Merge(imported)
	if err != nil {
		return fmt.Errorf("merging %s: %w", target, err)
	}

	return nil
}

func (d *document) header(trimmed string) error {
	name, isArray, ok := parseHeader(trimmed)
	if !ok {
		return ErrMalformedHeader
	}

	attrs := []any{slog.String("path", name), slog.Bool("array", isArray)}
	if d.current != nil {
		attrs = append(attrs, slog.String("current", d.current.Name()))
	}

	d.parser.logger.Debug("looking up section", attrs...)

	section, err := d.file.AddSection(name, d.current, nil, isArray)
	if err != nil {
		return err
	}

	d.current = section

	return nil
}

func (d *document) assignment(text string) error {
	key, op, raw, ok := parseAssignment(text)
	if !ok {
		return ErrSyntax
	}

	if d.current == nil {
		return ErrKeyOutsideSection
	}

	mode := interp.Interpolated
	if op == opRaw {
		mode = interp.Raw
	} else {
		raw = strings.TrimSpace(raw)
	}

	value, err := d.parser.interp.Interpret(raw, mode)
	if err != nil {
		return err
	}

	if key != "" {
		d.currentKey = key
		d.current.Set(key, value)

		return nil
	}

	if d.currentKey == "" {
		return ErrMissingKey
	}

	if !d.current.Append(d.currentKey, value) {
		d.current.Set(d.currentKey, value)
	}

	return nil
}
