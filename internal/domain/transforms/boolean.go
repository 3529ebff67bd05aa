package transforms

import (
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"

	"goxform.dev/pkg/goxform/internal/adapter"
)

const (
	trueStr  = "true"
	falseStr = "false"
)

// Boolean flips uses of the predeclared true and false. With type
// information, identifiers that shadow them are left untouched.
func Boolean(program adapter.Program) adapter.Rewriter {
	return func(file *ast.File) *ast.File {
		info := fileInfo(program, file)

		astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
			ident, ok := c.Node().(*ast.Ident)
			if !ok || !isBooleanLiteral(ident.Name) || !isPredeclared(info, ident) {
				return true
			}

			ident.Name = flipBoolean(ident.Name)

			return true
		})

		return file
	}
}

func isPredeclared(info *types.Info, ident *ast.Ident) bool {
	if info == nil {
		return true
	}

	obj, ok := info.Uses[ident]
	if !ok {
		return false
	}

	return obj == types.Universe.Lookup(ident.Name)
}

func isBooleanLiteral(name string) bool {
	return name == trueStr || name == falseStr
}

func flipBoolean(original string) string {
	if original == trueStr {
		return falseStr
	}

	return trueStr
}
