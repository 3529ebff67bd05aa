package transforms

import (
	"go/ast"
	"go/token"

	"golang.org/x/tools/go/ast/astutil"

	"goxform.dev/pkg/goxform/internal/adapter"
)

// Branch inverts the conditions of if statements and for loops. A condition
// that is already a negation is unwrapped instead of negated twice.
func Branch(adapter.Program) adapter.Rewriter {
	return func(file *ast.File) *ast.File {
		astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
			switch stmt := c.Node().(type) {
			case *ast.IfStmt:
				stmt.Cond = invert(stmt.Cond)
			case *ast.ForStmt:
				if stmt.Cond != nil {
					stmt.Cond = invert(stmt.Cond)
				}
			}

			return true
		})

		return file
	}
}

// RemoveElse drops else branches, keeping only the if block.
func RemoveElse(adapter.Program) adapter.Rewriter {
	return func(file *ast.File) *ast.File {
		astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
			if stmt, ok := c.Node().(*ast.IfStmt); ok {
				stmt.Else = nil
			}

			return true
		})

		return file
	}
}

func invert(cond ast.Expr) ast.Expr {
	if not, ok := cond.(*ast.UnaryExpr); ok && not.Op == token.NOT {
		if paren, ok := not.X.(*ast.ParenExpr); ok {
			return paren.X
		}

		return not.X
	}

	switch cond.(type) {
	case *ast.Ident, *ast.CallExpr, *ast.SelectorExpr, *ast.ParenExpr, *ast.IndexExpr:
		return &ast.UnaryExpr{Op: token.NOT, X: cond}
	}

	return &ast.UnaryExpr{Op: token.NOT, X: &ast.ParenExpr{X: cond}}
}
