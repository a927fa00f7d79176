package ast

// LitKind distinguishes literal expression payloads.
type LitKind uint8

const (
	LitInt LitKind = iota
	LitFloat
	LitString
	LitChar
	LitBool
	LitNone
)

func (k LitKind) String() string {
	switch k {
	case LitInt:
		return "int"
	case LitFloat:
		return "float"
	case LitString:
		return "string"
	case LitChar:
		return "char"
	case LitBool:
		return "bool"
	case LitNone:
		return "none"
	default:
		return "lit(?)"
	}
}

// UnaryOp tags prefix operators.
type UnaryOp uint8

const (
	UnaryNeg UnaryOp = iota // -
	UnaryNot                // !
	UnaryBitNot             // ~
)

func (op UnaryOp) String() string {
	switch op {
	case UnaryNeg:
		return "-"
	case UnaryNot:
		return "!"
	case UnaryBitNot:
		return "~"
	default:
		return "unary(?)"
	}
}

// BinaryOp tags binary operators. Each operator belongs to exactly one
// precedence class; see Precedence.
type BinaryOp uint8

const (
	BinLogOr BinaryOp = iota // ||
	BinLogAnd                // &&
	BinBitOr                 // |
	BinBitXor                // ^
	BinBitAnd                // &
	BinEq                    // ==
	BinNotEq                 // !=
	BinLess                  // <
	BinGreater               // >
	BinLessEq                // <=
	BinGreaterEq             // >=
	BinShl                   // <<
	BinShr                   // >>
	BinAdd                   // +
	BinSub                   // -
	BinMul                   // *
	BinDiv                   // /
	BinIntDiv                // \
	BinMod                   // %
	BinPow                   // **
)

// Binary precedence classes, loosest to tightest. Ternary sits below
// PrecLogOr and is not a BinaryOp; unary prefixes bind between
// PrecMultiplicative and PrecPower.
const (
	PrecLogOr          = 1
	PrecLogAnd         = 2
	PrecBitOr          = 3
	PrecBitXor         = 4
	PrecBitAnd         = 5
	PrecEquality       = 6
	PrecRelational     = 7
	PrecShift          = 8
	PrecAdditive       = 9
	PrecMultiplicative = 10
	PrecPower          = 11
)

// Precedence returns the operator's fixed precedence class.
func (op BinaryOp) Precedence() int {
	switch op {
	case BinLogOr:
		return PrecLogOr
	case BinLogAnd:
		return PrecLogAnd
	case BinBitOr:
		return PrecBitOr
	case BinBitXor:
		return PrecBitXor
	case BinBitAnd:
		return PrecBitAnd
	case BinEq, BinNotEq:
		return PrecEquality
	case BinLess, BinGreater, BinLessEq, BinGreaterEq:
		return PrecRelational
	case BinShl, BinShr:
		return PrecShift
	case BinAdd, BinSub:
		return PrecAdditive
	case BinMul, BinDiv, BinIntDiv, BinMod:
		return PrecMultiplicative
	case BinPow:
		return PrecPower
	default:
		return 0
	}
}

func (op BinaryOp) String() string {
	switch op {
	case BinLogOr:
		return "||"
	case BinLogAnd:
		return "&&"
	case BinBitOr:
		return "|"
	case BinBitXor:
		return "^"
	case BinBitAnd:
		return "&"
	case BinEq:
		return "=="
	case BinNotEq:
		return "!="
	case BinLess:
		return "<"
	case BinGreater:
		return ">"
	case BinLessEq:
		return "<="
	case BinGreaterEq:
		return ">="
	case BinShl:
		return "<<"
	case BinShr:
		return ">>"
	case BinAdd:
		return "+"
	case BinSub:
		return "-"
	case BinMul:
		return "*"
	case BinDiv:
		return "/"
	case BinIntDiv:
		return "\\"
	case BinMod:
		return "%"
	case BinPow:
		return "**"
	default:
		return "bin(?)"
	}
}

// AssignOp tags statement-level assignment operators. Plain '=' is
// AssignSet; every other value is the compound form applying the named
// binary operator before storing.
type AssignOp uint8

const (
	AssignSet AssignOp = iota // =
	AssignAdd                 // +=
	AssignSub                 // -=
	AssignMul                 // *=
	AssignDiv                 // /=
	AssignIntDiv              // \=
	AssignMod                 // %=
	AssignPow                 // **=
	AssignShl                 // <<=
	AssignShr                 // >>=
	AssignBitAnd              // &=
	AssignBitOr               // |=
	AssignBitXor              // ^=
	AssignLogAnd              // &&=
	AssignLogOr               // ||=
)

func (op AssignOp) String() string {
	switch op {
	case AssignSet:
		return "="
	case AssignAdd:
		return "+="
	case AssignSub:
		return "-="
	case AssignMul:
		return "*="
	case AssignDiv:
		return "/="
	case AssignIntDiv:
		return "\\="
	case AssignMod:
		return "%="
	case AssignPow:
		return "**="
	case AssignShl:
		return "<<="
	case AssignShr:
		return ">>="
	case AssignBitAnd:
		return "&="
	case AssignBitOr:
		return "|="
	case AssignBitXor:
		return "^="
	case AssignLogAnd:
		return "&&="
	case AssignLogOr:
		return "||="
	default:
		return "assign(?)"
	}
}
