package parser

import (
	"sheeppig/internal/ast"
	"sheeppig/internal/token"
)

// binaryOpFor maps a token to its binary operator for the precedence
// climber. Exponentiation is absent on purpose: '**' binds tighter than
// unary prefixes and is handled by parsePower.
func binaryOpFor(kind token.Kind) (ast.BinaryOp, bool) {
	switch kind {
	case token.OrOr:
		return ast.BinLogOr, true
	case token.AndAnd:
		return ast.BinLogAnd, true
	case token.Pipe:
		return ast.BinBitOr, true
	case token.Caret:
		return ast.BinBitXor, true
	case token.Amp:
		return ast.BinBitAnd, true
	case token.EqEq:
		return ast.BinEq, true
	case token.BangEq:
		return ast.BinNotEq, true
	case token.Lt:
		return ast.BinLess, true
	case token.Gt:
		return ast.BinGreater, true
	case token.LtEq:
		return ast.BinLessEq, true
	case token.GtEq:
		return ast.BinGreaterEq, true
	case token.Shl:
		return ast.BinShl, true
	case token.Shr:
		return ast.BinShr, true
	case token.Plus:
		return ast.BinAdd, true
	case token.Minus:
		return ast.BinSub, true
	case token.Star:
		return ast.BinMul, true
	case token.Slash:
		return ast.BinDiv, true
	case token.Backslash:
		return ast.BinIntDiv, true
	case token.Percent:
		return ast.BinMod, true
	default:
		return 0, false
	}
}

// unaryOpFor maps a token to its prefix operator.
func unaryOpFor(kind token.Kind) (ast.UnaryOp, bool) {
	switch kind {
	case token.Minus:
		return ast.UnaryNeg, true
	case token.Bang:
		return ast.UnaryNot, true
	case token.Tilde:
		return ast.UnaryBitNot, true
	default:
		return 0, false
	}
}

// assignOpFor maps a statement-level assignment token to its operator.
// The caller has already checked IsAssignOp.
func assignOpFor(kind token.Kind) ast.AssignOp {
	switch kind {
	case token.Assign:
		return ast.AssignSet
	case token.PlusAssign:
		return ast.AssignAdd
	case token.MinusAssign:
		return ast.AssignSub
	case token.StarAssign:
		return ast.AssignMul
	case token.SlashAssign:
		return ast.AssignDiv
	case token.BackslashAssign:
		return ast.AssignIntDiv
	case token.PercentAssign:
		return ast.AssignMod
	case token.StarStarAssign:
		return ast.AssignPow
	case token.ShlAssign:
		return ast.AssignShl
	case token.ShrAssign:
		return ast.AssignShr
	case token.AmpAssign:
		return ast.AssignBitAnd
	case token.PipeAssign:
		return ast.AssignBitOr
	case token.CaretAssign:
		return ast.AssignBitXor
	case token.AndAndAssign:
		return ast.AssignLogAnd
	case token.OrOrAssign:
		return ast.AssignLogOr
	default:
		return ast.AssignSet
	}
}

// litKindFor maps literal tokens to AST literal kinds.
func litKindFor(kind token.Kind) (ast.LitKind, bool) {
	switch kind {
	case token.IntLit:
		return ast.LitInt, true
	case token.FloatLit:
		return ast.LitFloat, true
	case token.StringLit:
		return ast.LitString, true
	case token.CharLit:
		return ast.LitChar, true
	case token.BoolLit:
		return ast.LitBool, true
	case token.NoneLit:
		return ast.LitNone, true
	default:
		return 0, false
	}
}
