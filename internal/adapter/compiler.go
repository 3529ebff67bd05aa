package adapter

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"strings"

	m "goxform.dev/pkg/goxform/internal/model"
)

// Rewriter rewrites one syntax tree. It may modify file in place or return a
// replacement; returning nil aborts emission.
type Rewriter func(file *ast.File) *ast.File

// TransformFactory receives the live program and returns the rewriter to run
// during emission. The harness never inspects factories.
type TransformFactory func(program Program) Rewriter

// ResolvedModule is the outcome of resolving one import reference.
type ResolvedModule struct {
	Name             string
	ResolvedFileName string
	Err              error
}

// CompilerHost is the environment a program reads sources from, resolves
// imports against and writes artifacts to.
type CompilerHost interface {
	// FileExists reports whether path names a file.
	FileExists(path string) bool

	// ReadFile returns the contents at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile persists emitted output, creating ancestors as needed.
	WriteFile(path string, data []byte) error

	// ResolveModuleNames resolves each name as imported from containingFile.
	// The result has one entry per name, in order.
	ResolveModuleNames(names []string, containingFile string) []ResolvedModule

	// DefaultLibLocation is the directory library files are served from.
	DefaultLibLocation() string
}

// Compiler constructs programs bound to a host.
type Compiler interface {
	// DefaultLibLocation is where the compiler's library snapshot lives on the
	// real filesystem.
	DefaultLibLocation() string

	// CreateProgram parses and checks rootNames and everything they import.
	CreateProgram(rootNames []string, options m.Options, host CompilerHost) Program
}

// Program is a compiled set of sources: the compilation context handed to
// transform factories.
type Program interface {
	Options() m.Options
	FileSet() *token.FileSet

	// SourceFile returns the in-context representation of path.
	SourceFile(path string) (*SourceFile, bool)

	// SourceFiles lists every loaded file: library files, roots and imports.
	SourceFiles() []*SourceFile

	// Diagnostics returns the diagnostics gathered before emission.
	Diagnostics() []Diagnostic

	// Emit rewrites root with the factories applied as one ordered chain and
	// writes the printed result through the host.
	Emit(root string, before []TransformFactory) EmitResult
}

// SourceFile is one parsed (and, unless it is a library file, type-checked)
// file of a program.
type SourceFile struct {
	Path    string
	AST     *ast.File
	Package *types.Package
	Info    *types.Info
	IsLib   bool
}

// EmitResult reports what Emit did.
type EmitResult struct {
	Skipped      bool
	Diagnostics  []Diagnostic
	EmittedFiles []string
}

// DiagnosticCategory classifies where a diagnostic came from.
type DiagnosticCategory string

// Diagnostic categories.
const (
	CategoryOptions   DiagnosticCategory = "options"
	CategoryGlobal    DiagnosticCategory = "global"
	CategorySyntactic DiagnosticCategory = "syntactic"
	CategorySemantic  DiagnosticCategory = "semantic"
	CategoryEmit      DiagnosticCategory = "emit"
)

// Diagnostic is a single compiler message. Err carries the underlying cause
// when there is one (for example a module resolution failure).
type Diagnostic struct {
	Category DiagnosticCategory
	File     string
	Line     int
	Column   int
	Message  string
	Err      error
}

// String renders the diagnostic as file:line:col: message.
func (d Diagnostic) String() string {
	var b strings.Builder

	if d.File != "" {
		b.WriteString(d.File)

		if d.Line > 0 {
			fmt.Fprintf(&b, ":%d:%d", d.Line, d.Column)
		}

		b.WriteString(": ")
	}

	b.WriteString(d.Message)

	return b.String()
}
