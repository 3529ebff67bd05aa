package transforms

import (
	"go/ast"
	"go/token"
	"go/types"

	"golang.org/x/tools/go/ast/astutil"

	"goxform.dev/pkg/goxform/internal/adapter"
)

var (
	arithmeticSwaps = map[token.Token]token.Token{
		token.ADD: token.SUB,
		token.SUB: token.ADD,
		token.MUL: token.QUO,
		token.QUO: token.MUL,
		token.REM: token.MUL,
	}

	comparisonNegations = map[token.Token]token.Token{
		token.LSS: token.GEQ,
		token.GEQ: token.LSS,
		token.GTR: token.LEQ,
		token.LEQ: token.GTR,
		token.EQL: token.NEQ,
		token.NEQ: token.EQL,
	}

	logicalSwaps = map[token.Token]token.Token{
		token.LAND: token.LOR,
		token.LOR:  token.LAND,
	}
)

// Arithmetic swaps arithmetic operators on numeric operands. String
// concatenation is left alone when type information is available.
func Arithmetic(program adapter.Program) adapter.Rewriter {
	return func(file *ast.File) *ast.File {
		info := fileInfo(program, file)

		return swapOperators(file, arithmeticSwaps, func(expr *ast.BinaryExpr) bool {
			return !isString(info, expr)
		})
	}
}

// Comparison negates comparison operators.
func Comparison(adapter.Program) adapter.Rewriter {
	return func(file *ast.File) *ast.File {
		return swapOperators(file, comparisonNegations, nil)
	}
}

// Logical swaps && and ||.
func Logical(adapter.Program) adapter.Rewriter {
	return func(file *ast.File) *ast.File {
		return swapOperators(file, logicalSwaps, nil)
	}
}

func swapOperators(file *ast.File, swaps map[token.Token]token.Token, keep func(*ast.BinaryExpr) bool) *ast.File {
	astutil.Apply(file, nil, func(c *astutil.Cursor) bool {
		expr, ok := c.Node().(*ast.BinaryExpr)
		if !ok {
			return true
		}

		swapped, ok := swaps[expr.Op]
		if !ok || (keep != nil && !keep(expr)) {
			return true
		}

		expr.Op = swapped

		return true
	})

	return file
}

func isString(info *types.Info, expr *ast.BinaryExpr) bool {
	if info == nil || expr.Op != token.ADD {
		return false
	}

	tv, ok := info.Types[expr]
	if !ok || tv.Type == nil {
		return false
	}

	basic, ok := tv.Type.Underlying().(*types.Basic)

	return ok && basic.Info()&types.IsString != 0
}

// fileInfo returns the type information recorded for file, if the program
// type-checked it.
func fileInfo(program adapter.Program, file *ast.File) *types.Info {
	if program == nil {
		return nil
	}

	for _, sf := range program.SourceFiles() {
		if sf.AST == file {
			return sf.Info
		}
	}

	return nil
}
