package adapter

import (
	"errors"
	"fmt"

	m "goxform.dev/pkg/goxform/internal/model"
)

// ErrTranspile is returned by TranspileSource when the source could not be
// rewritten and printed.
var ErrTranspile = errors.New("transpile failed")

const transpileRoot = m.DefaultFilePath

// TranspileSource parses src on its own, applies the chain and prints the
// result. options are merged over the defaults; unless they set
// no_emit_on_error, only syntax errors and emit failures stop it. No library
// files are loaded and every import is left unresolved, so transforms that
// need to follow imports belong in a full pipeline run.
func (c *LocalGoCompiler) TranspileSource(src string, options m.Options, before []TransformFactory) (string, error) {
	store := NewMemStore()
	if err := store.WriteFile(transpileRoot, []byte(src)); err != nil {
		return "", err
	}

	merged := m.MergeOptions(m.DefaultOptions(), m.Options{m.OptNoEmitOnError: false})
	merged = m.MergeOptions(merged, options)
	merged[m.OptLib] = []string{}

	program := c.CreateProgram([]string{transpileRoot}, merged, transpileHost{store})

	for _, d := range program.Diagnostics() {
		if d.Category == CategorySyntactic {
			return "", fmt.Errorf("%w: %s", ErrTranspile, d)
		}
	}

	result := program.Emit(transpileRoot, before)
	if result.Skipped || len(result.EmittedFiles) == 0 {
		return "", fmt.Errorf("%w: %s", ErrTranspile, joinDiagnostics(result.Diagnostics))
	}

	out, err := store.ReadFile(result.EmittedFiles[0])
	if err != nil {
		return "", err
	}

	return string(out), nil
}

// transpileHost serves a single in-memory file and resolves nothing.
type transpileHost struct {
	store *MemStore
}

func (h transpileHost) FileExists(p string) bool              { return h.store.IsFile(p) }
func (h transpileHost) ReadFile(p string) ([]byte, error)     { return h.store.ReadFile(p) }
func (h transpileHost) WriteFile(p string, data []byte) error { return h.store.WriteFile(p, data) }
func (h transpileHost) DefaultLibLocation() string            { return m.LibraryDir }

func (h transpileHost) ResolveModuleNames(names []string, containingFile string) []ResolvedModule {
	results := make([]ResolvedModule, len(names))
	for i, name := range names {
		results[i] = ResolvedModule{
			Name: name,
			Err:  fmt.Errorf("cannot resolve %q from %s: imports are not followed when transpiling", name, containingFile),
		}
	}

	return results
}

func joinDiagnostics(diags []Diagnostic) string {
	if len(diags) == 0 {
		return "emit skipped"
	}

	msg := diags[0].String()
	for _, d := range diags[1:] {
		msg += "; " + d.String()
	}

	return msg
}
