// Package domain contains the transform harness: module resolution, the
// compilation context builder, the pipeline driver and the fluent builder.
package domain

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"goxform.dev/pkg/goxform/internal/adapter"
	m "goxform.dev/pkg/goxform/internal/model"
)

// RunArgs are the inputs of one pipeline run.
type RunArgs struct {
	Root       m.File
	Sources    []m.File
	Mocks      []m.MockModule
	Options    m.Options
	Transforms []adapter.TransformFactory
	Base       afero.Fs
}

// Pipeline runs one compile-and-emit pass and returns the emitted text of
// the root file.
type Pipeline interface {
	Run(args RunArgs) (string, error)
}

type pipeline struct {
	builder  ContextBuilder
	compiler adapter.Compiler
}

// NewPipeline constructs a Pipeline that compiles with compiler and seeds
// every context with the library snapshot found in library.
func NewPipeline(compiler adapter.Compiler, library afero.Fs) Pipeline {
	return &pipeline{
		builder:  NewContextBuilder(compiler, library),
		compiler: compiler,
	}
}

// NewLocalPipeline returns a Pipeline backed by the Go source compiler and
// the active toolchain's library snapshot.
func NewLocalPipeline() Pipeline {
	return NewPipeline(adapter.NewLocalGoCompiler(), adapter.NewLocalLibrarySource())
}

func (p *pipeline) Run(args RunArgs) (string, error) {
	host, err := p.builder.Build(BuildArgs{
		Root:    args.Root,
		Sources: args.Sources,
		Mocks:   args.Mocks,
		Options: args.Options,
		Base:    args.Base,
	})
	if err != nil {
		slog.Error("failed to build compilation context", "root", args.Root.Path, "error", err)
		return "", err
	}

	program := p.compiler.CreateProgram([]string{args.Root.Path}, host.Options(), host)

	result := program.Emit(args.Root.Path, args.Transforms)
	if result.Skipped || len(result.Diagnostics) > 0 {
		err := &EmissionError{Diagnostics: result.Diagnostics}
		slog.Debug("emission failed", "root", args.Root.Path, "skipped", result.Skipped, "diagnostics", len(result.Diagnostics))

		return "", err
	}

	sf, ok := program.SourceFile(args.Root.Path)
	if !ok || sf == nil {
		return "", &MissingSourceError{Path: args.Root.Path}
	}

	artifact, ok := m.ArtifactPath(sf.Path, program.Options())
	if !ok {
		return "", &ArtifactPathError{Path: sf.Path}
	}

	out, err := host.Store().ReadFile(artifact)
	if err != nil {
		return "", fmt.Errorf("artifact for %s was not written: %w", args.Root.Path, err)
	}

	slog.Debug("pipeline run complete", "root", args.Root.Path, "artifact", artifact, "transforms", len(args.Transforms))

	return string(out), nil
}
