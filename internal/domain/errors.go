package domain

import (
	"errors"
	"fmt"
	"strings"

	"goxform.dev/pkg/goxform/internal/adapter"
)

var (
	// ErrModuleNotFound matches every *ModuleNotFoundError.
	ErrModuleNotFound = errors.New("module not found")
	// ErrEmission matches every *EmissionError.
	ErrEmission = errors.New("emission failed")
	// ErrMissingSource matches every *MissingSourceError.
	ErrMissingSource = errors.New("missing source")
	// ErrArtifactPath matches every *ArtifactPathError.
	ErrArtifactPath = errors.New("cannot derive artifact path")
	// ErrNoRootFile is returned by a Transformer with no root file set.
	ErrNoRootFile = errors.New("no root file set")
)

// ModuleNotFoundError reports an import reference no strategy could resolve.
type ModuleNotFoundError struct {
	Name           string
	ContainingFile string
}

func (e *ModuleNotFoundError) Error() string {
	return fmt.Sprintf("cannot find module %q from %q", e.Name, e.ContainingFile)
}

// Is matches ErrModuleNotFound.
func (e *ModuleNotFoundError) Is(target error) bool {
	return target == ErrModuleNotFound
}

// EmissionError carries the diagnostics that stopped or accompanied an emit.
type EmissionError struct {
	Diagnostics []adapter.Diagnostic
}

func (e *EmissionError) Error() string {
	if len(e.Diagnostics) == 0 {
		return "emit skipped"
	}

	lines := make([]string, len(e.Diagnostics))
	for i, d := range e.Diagnostics {
		lines[i] = d.String()
	}

	return strings.Join(lines, "\n")
}

// Is matches ErrEmission.
func (e *EmissionError) Is(target error) bool {
	return target == ErrEmission
}

// Unwrap exposes the causes attached to the diagnostics.
func (e *EmissionError) Unwrap() []error {
	var causes []error

	for _, d := range e.Diagnostics {
		if d.Err != nil {
			causes = append(causes, d.Err)
		}
	}

	return causes
}

// MissingSourceError reports a root absent from the compilation context
// after a successful emit.
type MissingSourceError struct {
	Path string
}

func (e *MissingSourceError) Error() string {
	return fmt.Sprintf("source file %q is not part of the program", e.Path)
}

// Is matches ErrMissingSource.
func (e *MissingSourceError) Is(target error) bool {
	return target == ErrMissingSource
}

// ArtifactPathError reports a root whose output path cannot be derived.
type ArtifactPathError struct {
	Path string
}

func (e *ArtifactPathError) Error() string {
	return fmt.Sprintf("cannot derive output path for %q", e.Path)
}

// Is matches ErrArtifactPath.
func (e *ArtifactPathError) Is(target error) bool {
	return target == ErrArtifactPath
}
