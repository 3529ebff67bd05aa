package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/importer"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"go/version"
	"log/slog"
	"path"
	"runtime"
	"slices"
	"strings"

	m "goxform.dev/pkg/goxform/internal/model"
)

// ErrLibraryNotFound is the cause attached to diagnostics for missing library files.
var ErrLibraryNotFound = errors.New("library file not found")

// LocalGoCompiler is the Compiler backed by go/parser, go/types and go/format.
type LocalGoCompiler struct {
	libLocation string
}

// NewLocalGoCompiler constructs a LocalGoCompiler that takes its library
// snapshot from the active toolchain.
func NewLocalGoCompiler() *LocalGoCompiler {
	return &LocalGoCompiler{libLocation: LocalLibraryLocation()}
}

// DefaultLibLocation implements Compiler.
func (c *LocalGoCompiler) DefaultLibLocation() string {
	return c.libLocation
}

// CreateProgram implements Compiler. Problems are recorded as diagnostics;
// construction itself never fails.
func (c *LocalGoCompiler) CreateProgram(rootNames []string, options m.Options, host CompilerHost) Program {
	fset := token.NewFileSet()

	// The gc importer locates export data with "go list -export", so a
	// standard-library fallback needs the go command and reads the real
	// build cache. Nothing runs until such an import is requested.

	p := &goProgram{
		options:  options.Clone(),
		host:     host,
		fset:     fset,
		roots:    slices.Clone(rootNames),
		files:    make(map[string]*SourceFile),
		packages: make(map[string]*types.Package),
		loading:  make(map[string]bool),
		std:      importer.ForCompiler(fset, runtime.Compiler, nil),
	}

	p.verifyOptions()
	p.loadLibraries()

	for _, root := range p.roots {
		p.loadRoot(root)
	}

	p.loadAmbientTypes()

	slog.Debug("created program", "roots", p.roots, "files", len(p.order), "diagnostics", len(p.diagnostics))

	return p
}

type goProgram struct {
	options m.Options
	host    CompilerHost
	fset    *token.FileSet
	roots   []string

	files    map[string]*SourceFile
	order    []string
	packages map[string]*types.Package
	loading  map[string]bool
	std      types.Importer

	diagnostics []Diagnostic
}

func (p *goProgram) Options() m.Options {
	return p.options
}

func (p *goProgram) FileSet() *token.FileSet {
	return p.fset
}

func (p *goProgram) SourceFile(filePath string) (*SourceFile, bool) {
	sf, ok := p.files[filePath]
	return sf, ok
}

func (p *goProgram) SourceFiles() []*SourceFile {
	files := make([]*SourceFile, 0, len(p.order))
	for _, name := range p.order {
		files = append(files, p.files[name])
	}

	return files
}

func (p *goProgram) Diagnostics() []Diagnostic {
	return slices.Clone(p.diagnostics)
}

func (p *goProgram) Emit(root string, before []TransformFactory) EmitResult {
	if p.options.NoEmitOnError() && len(p.diagnostics) > 0 {
		slog.Debug("emit skipped", "root", root, "diagnostics", len(p.diagnostics))
		return EmitResult{Skipped: true, Diagnostics: p.Diagnostics()}
	}

	sf, ok := p.files[root]
	if !ok || sf.AST == nil {
		return skippedEmit(root, fmt.Sprintf("cannot emit %s: file is not part of the program", root), nil)
	}

	rewriters := make([]Rewriter, 0, len(before))

	for _, factory := range before {
		if factory == nil {
			continue
		}

		if rewriter := factory(p); rewriter != nil {
			rewriters = append(rewriters, rewriter)
		}
	}

	file := sf.AST
	for i, rewrite := range rewriters {
		file = rewrite(file)
		if file == nil {
			return skippedEmit(root, fmt.Sprintf("transform %d returned no file", i), nil)
		}
	}

	var buf bytes.Buffer
	if err := format.Node(&buf, p.fset, file); err != nil {
		return skippedEmit(root, fmt.Sprintf("cannot print %s: %v", root, err), err)
	}

	out, ok := m.ArtifactPath(root, p.options)
	if !ok {
		return skippedEmit(root, fmt.Sprintf("cannot determine output path for %s", root), nil)
	}

	if err := p.host.WriteFile(out, buf.Bytes()); err != nil {
		return skippedEmit(root, fmt.Sprintf("cannot write %s: %v", out, err), err)
	}

	slog.Debug("emitted", "root", root, "artifact", out, "transforms", len(rewriters))

	return EmitResult{EmittedFiles: []string{out}}
}

func skippedEmit(file, message string, cause error) EmitResult {
	return EmitResult{
		Skipped: true,
		Diagnostics: []Diagnostic{{
			Category: CategoryEmit,
			File:     file,
			Message:  message,
			Err:      cause,
		}},
	}
}

func (p *goProgram) verifyOptions() {
	if module := p.options.Module(); module != "" && module != m.ModuleLatest {
		p.optionError("unsupported module %q", module)
	}

	switch p.options.ModuleResolution() {
	case m.ResolutionNode, m.ResolutionClassic:
	default:
		p.optionError("unsupported module resolution %q", p.options.String(m.OptModuleResolution))
	}

	switch p.options.TestFiles() {
	case "", m.TestFilesPreserve, m.TestFilesCompile:
	default:
		p.optionError("unsupported test file mode %q", p.options.TestFiles())
	}

	if v := p.options.GoVersion(); v != "" && !version.IsValid(goVersion(v)) {
		p.optionError("invalid go version %q", v)
	}
}

func (p *goProgram) optionError(msg string, args ...any) {
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Category: CategoryOptions,
		Message:  fmt.Sprintf(msg, args...),
	})
}

func (p *goProgram) loadLibraries() {
	for _, lib := range p.options.Lib() {
		if !path.IsAbs(lib) {
			lib = path.Join(p.host.DefaultLibLocation(), lib)
		}

		if !p.host.FileExists(lib) {
			p.diagnostics = append(p.diagnostics, Diagnostic{
				Category: CategoryGlobal,
				File:     lib,
				Message:  fmt.Sprintf("cannot find library file %q", lib),
				Err:      ErrLibraryNotFound,
			})

			continue
		}

		sf, _ := p.parse(lib, !p.options.SkipLibCheck())
		if sf != nil {
			sf.IsLib = true
		}
	}
}

func (p *goProgram) loadRoot(root string) {
	p.loading[root] = true
	defer delete(p.loading, root)

	sf, clean := p.parse(root, true)
	if sf == nil || !clean {
		return
	}

	p.packages[root] = p.check(sf)
}

func (p *goProgram) loadAmbientTypes() {
	names := p.options.Types()
	if len(names) == 0 || len(p.roots) == 0 {
		return
	}

	from := p.roots[0]

	for i, resolved := range p.host.ResolveModuleNames(names, from) {
		if resolved.Err != nil {
			p.diagnostics = append(p.diagnostics, Diagnostic{
				Category: CategoryGlobal,
				Message:  fmt.Sprintf("cannot find type package %q", names[i]),
				Err:      resolved.Err,
			})

			continue
		}

		_, _ = p.loadImport(resolved.ResolvedFileName, from)
	}
}

// parse reads and parses filePath through the host. The boolean result is
// false when the file had syntax errors; they are only recorded when report
// is set.
func (p *goProgram) parse(filePath string, report bool) (*SourceFile, bool) {
	if !p.host.FileExists(filePath) {
		p.diagnostics = append(p.diagnostics, Diagnostic{
			Category: CategoryGlobal,
			File:     filePath,
			Message:  fmt.Sprintf("cannot find file %q", filePath),
			Err:      ErrNotFound,
		})

		return nil, false
	}

	src, err := p.host.ReadFile(filePath)
	if err != nil {
		p.diagnostics = append(p.diagnostics, Diagnostic{
			Category: CategoryGlobal,
			File:     filePath,
			Message:  fmt.Sprintf("cannot read file %q: %v", filePath, err),
			Err:      err,
		})

		return nil, false
	}

	file, err := parser.ParseFile(p.fset, filePath, src, parser.ParseComments)
	if file != nil {
		p.addFile(&SourceFile{Path: filePath, AST: file})
	}

	if err == nil {
		return p.files[filePath], true
	}

	if report {
		p.addParseErrors(filePath, err)
	}

	sf, ok := p.files[filePath]
	if !ok {
		return nil, false
	}

	return sf, false
}

func (p *goProgram) addFile(sf *SourceFile) {
	if _, ok := p.files[sf.Path]; !ok {
		p.order = append(p.order, sf.Path)
	}

	p.files[sf.Path] = sf
}

func (p *goProgram) addParseErrors(filePath string, err error) {
	var list scanner.ErrorList
	if !errors.As(err, &list) {
		p.diagnostics = append(p.diagnostics, Diagnostic{
			Category: CategorySyntactic,
			File:     filePath,
			Message:  err.Error(),
			Err:      err,
		})

		return
	}

	for _, e := range list {
		p.diagnostics = append(p.diagnostics, Diagnostic{
			Category: CategorySyntactic,
			File:     filePath,
			Line:     e.Pos.Line,
			Column:   e.Pos.Column,
			Message:  e.Msg,
		})
	}
}

// check type-checks sf as a package of its own.
func (p *goProgram) check(sf *SourceFile) *types.Package {
	info := &types.Info{
		Types:      make(map[ast.Expr]types.TypeAndValue),
		Defs:       make(map[*ast.Ident]types.Object),
		Uses:       make(map[*ast.Ident]types.Object),
		Implicits:  make(map[ast.Node]types.Object),
		Selections: make(map[*ast.SelectorExpr]*types.Selection),
		Scopes:     make(map[ast.Node]*types.Scope),
	}

	// An invalid version was already reported by verifyOptions.
	gv := goVersion(p.options.GoVersion())
	if gv != "" && !version.IsValid(gv) {
		gv = ""
	}

	conf := types.Config{
		GoVersion: gv,
		Importer:  &hostImporter{program: p, from: sf.Path},
		Error:     p.reportTypeError,
	}

	// Errors are collected through conf.Error.
	pkg, _ := conf.Check(packagePath(sf.Path), p.fset, []*ast.File{sf.AST}, info)

	sf.Package = pkg
	sf.Info = info

	return pkg
}

func (p *goProgram) reportTypeError(err error) {
	var typeErr types.Error
	if !errors.As(err, &typeErr) {
		p.diagnostics = append(p.diagnostics, Diagnostic{Category: CategorySemantic, Message: err.Error(), Err: err})
		return
	}

	if typeErr.Soft && p.options.AllowSoftErrors() && isUnusedError(typeErr.Msg) {
		return
	}

	// The importer already reported why the import failed.
	if strings.HasPrefix(typeErr.Msg, "could not import") {
		return
	}

	pos := p.fset.Position(typeErr.Pos)
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Category: CategorySemantic,
		File:     pos.Filename,
		Line:     pos.Line,
		Column:   pos.Column,
		Message:  typeErr.Msg,
	})
}

// isUnusedError reports whether msg is one of the unused variable, label or
// import errors allow_soft_errors relaxes. Other soft errors, such as
// language features newer than go_version, are always reported.
func isUnusedError(msg string) bool {
	return strings.Contains(msg, "declared and not used") || strings.Contains(msg, "imported and not used")
}

func packagePath(filePath string) string {
	return strings.TrimSuffix(filePath, m.SourceExt(filePath))
}

func goVersion(v string) string {
	if v == "" || strings.HasPrefix(v, "go") {
		return v
	}

	return "go" + v
}
