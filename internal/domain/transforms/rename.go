package transforms

import (
	"go/ast"
	"go/types"
	"path"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"

	"goxform.dev/pkg/goxform/internal/adapter"
)

// Rename renames every identifier spelled from to to. The package clause is
// not renamed.
func Rename(from, to string) adapter.TransformFactory {
	return func(adapter.Program) adapter.Rewriter {
		return func(file *ast.File) *ast.File {
			astutil.Apply(file, func(c *astutil.Cursor) bool {
				if c.Node() == file.Name {
					return false
				}

				if ident, ok := c.Node().(*ast.Ident); ok && ident.Name == from {
					ident.Name = to
				}

				return true
			}, nil)

			return file
		}
	}
}

// RewriteImport replaces the import path from with to. When the two paths
// end in different names, the import is given an explicit name so existing
// references keep compiling.
func RewriteImport(from, to string) adapter.TransformFactory {
	return func(program adapter.Program) adapter.Rewriter {
		return func(file *ast.File) *ast.File {
			info := fileInfo(program, file)

			for _, spec := range file.Imports {
				if p, err := strconv.Unquote(spec.Path.Value); err != nil || p != from || spec.Name != nil {
					continue
				}

				if name := importedName(info, spec, from); name != path.Base(to) {
					spec.Name = ast.NewIdent(name)
				}
			}

			astutil.RewriteImport(program.FileSet(), file, from, to)

			return file
		}
	}
}

func importedName(info *types.Info, spec *ast.ImportSpec, importPath string) string {
	if info != nil {
		if pkgName, ok := info.Implicits[spec].(*types.PkgName); ok {
			return pkgName.Imported().Name()
		}
	}

	return path.Base(importPath)
}
