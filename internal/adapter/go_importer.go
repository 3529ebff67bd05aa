package adapter

import (
	"fmt"
	"go/types"
	"log/slog"
	"strconv"
	"strings"
)

// hostImporter resolves the imports of one file through the compiler host.
// Paths the host cannot resolve but that look like standard-library paths
// are served from compiled export data.
type hostImporter struct {
	program *goProgram
	from    string
}

func (i *hostImporter) Import(importPath string) (*types.Package, error) {
	return i.ImportFrom(importPath, "", 0)
}

func (i *hostImporter) ImportFrom(importPath, _ string, _ types.ImportMode) (*types.Package, error) {
	if importPath == "unsafe" {
		return types.Unsafe, nil
	}

	resolved := ResolvedModule{Name: importPath, Err: fmt.Errorf("no resolution for %q", importPath)}
	if results := i.program.host.ResolveModuleNames([]string{importPath}, i.from); len(results) > 0 {
		resolved = results[0]
	}

	if resolved.Err == nil {
		return i.program.loadImport(resolved.ResolvedFileName, i.from)
	}

	if isStdlibPath(importPath) {
		pkg, err := i.program.std.Import(importPath)
		if err == nil {
			slog.Debug("imported from export data", "path", importPath, "from", i.from)
			return pkg, nil
		}

		slog.Debug("export data lookup failed", "path", importPath, "error", err)
	}

	i.program.addImportDiagnostic(i.from, importPath, resolved.Err)

	return nil, resolved.Err
}

// loadImport parses and type-checks the resolved file once per program.
func (p *goProgram) loadImport(resolved, from string) (*types.Package, error) {
	if pkg, ok := p.packages[resolved]; ok {
		return pkg, nil
	}

	if p.loading[resolved] {
		err := fmt.Errorf("import cycle: %s imports %s", from, resolved)
		p.addImportDiagnostic(from, resolved, err)

		return nil, err
	}

	p.loading[resolved] = true
	defer delete(p.loading, resolved)

	sf, clean := p.parse(resolved, true)
	if sf == nil || !clean {
		return nil, fmt.Errorf("cannot load %s", resolved)
	}

	pkg := p.check(sf)
	p.packages[resolved] = pkg

	return pkg, nil
}

// addImportDiagnostic records a failed import at the position of the import
// spec in from, when from has one naming importPath.
func (p *goProgram) addImportDiagnostic(from, importPath string, cause error) {
	diag := Diagnostic{
		Category: CategorySemantic,
		File:     from,
		Message:  cause.Error(),
		Err:      cause,
	}

	if sf, ok := p.files[from]; ok && sf.AST != nil {
		for _, spec := range sf.AST.Imports {
			if value, err := strconv.Unquote(spec.Path.Value); err == nil && value == importPath {
				pos := p.fset.Position(spec.Pos())
				diag.Line, diag.Column = pos.Line, pos.Column

				break
			}
		}
	}

	p.diagnostics = append(p.diagnostics, diag)
}

// isStdlibPath reports whether importPath has the shape of a standard-library
// path: not relative, not absolute, and no dot in its first element.
func isStdlibPath(importPath string) bool {
	if importPath == "" || strings.HasPrefix(importPath, ".") || strings.HasPrefix(importPath, "/") {
		return false
	}

	first, _, _ := strings.Cut(importPath, "/")

	return !strings.Contains(first, ".")
}
