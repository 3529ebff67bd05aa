// Package xform is the public entry point for writing and testing Go AST
// transforms against in-memory sources.
//
//	out, err := xform.New().
//		AddSource(xform.File{Path: "/greet.go", Contents: greetSrc}).
//		AddTransformer(myTransform).
//		TransformSource(mainSrc)
package xform

import (
	"github.com/spf13/afero"

	"goxform.dev/pkg/goxform/internal/adapter"
	"goxform.dev/pkg/goxform/internal/domain"
	"goxform.dev/pkg/goxform/internal/domain/transforms"
	m "goxform.dev/pkg/goxform/internal/model"
)

type (
	// File is a source file placed in the virtual store.
	File = m.File
	// MockModule is a synthetic package importable by its name.
	MockModule = m.MockModule
	// Options are compiler option overrides merged over the defaults.
	Options = m.Options
	// Program is the compilation context handed to transform factories.
	Program = adapter.Program
	// SourceFile is one parsed and type-checked file of a Program.
	SourceFile = adapter.SourceFile
	// Rewriter rewrites one syntax tree.
	Rewriter = adapter.Rewriter
	// TransformFactory builds a Rewriter from the live Program.
	TransformFactory = adapter.TransformFactory
	// Diagnostic is one compiler message.
	Diagnostic = adapter.Diagnostic
	// Transformer is the immutable fluent builder.
	Transformer = domain.Transformer
	// ModuleNotFoundError reports an unresolvable import.
	ModuleNotFoundError = domain.ModuleNotFoundError
	// EmissionError carries the diagnostics of a failed emit.
	EmissionError = domain.EmissionError
)

// Errors returned by the harness.
var (
	ErrModuleNotFound = domain.ErrModuleNotFound
	ErrEmission       = domain.ErrEmission
	ErrMissingSource  = domain.ErrMissingSource
	ErrArtifactPath   = domain.ErrArtifactPath
	ErrNoRootFile     = domain.ErrNoRootFile
	ErrNotFound       = adapter.ErrNotFound
	ErrTranspile      = adapter.ErrTranspile
)

// FileOptions are the inputs of TransformFile besides the root itself.
type FileOptions struct {
	Sources    []File
	Mocks      []MockModule
	Options    Options
	Transforms []TransformFactory

	// Fs is an optional pre-populated filesystem copied into the store
	// before file and the other inputs are written.
	Fs afero.Fs
}

// New returns an empty Transformer backed by the Go source compiler.
func New() *Transformer {
	return domain.NewTransformer(domain.NewLocalPipeline())
}

// TransformFile compiles file with the given context and returns its emitted
// text.
func TransformFile(file File, opts FileOptions) (string, error) {
	return domain.NewLocalPipeline().Run(domain.RunArgs{
		Root:       file,
		Sources:    opts.Sources,
		Mocks:      opts.Mocks,
		Options:    opts.Options,
		Transforms: opts.Transforms,
		Base:       opts.Fs,
	})
}

// TransformString applies factories to a standalone source, with options
// merged over the defaults. Imports are not followed, so it only suits
// transforms that need nothing beyond src.
func TransformString(src string, options Options, factories ...TransformFactory) (string, error) {
	return adapter.NewLocalGoCompiler().TranspileSource(src, options, factories)
}

// DefaultOptions returns a copy of the base compiler configuration.
func DefaultOptions() Options {
	return m.DefaultOptions()
}

// Builtin returns the built-in transform described by spec (name or
// name:arg).
func Builtin(spec string) (TransformFactory, error) {
	return transforms.Lookup(spec)
}
