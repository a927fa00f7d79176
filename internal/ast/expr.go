package ast

import (
	"sheeppig/internal/source"
)

// ExprKind is the closed set of expression variants.
type ExprKind uint8

const (
	ExprLit ExprKind = iota
	ExprName
	ExprCall
	ExprIndex
	ExprSlice
	ExprArray
	ExprUnary
	ExprBinary
	ExprTernary
	ExprParen
	// ExprBad is the placeholder inserted where an operand or closing
	// delimiter was missing, so the surrounding statement stays intact.
	ExprBad
)

func (k ExprKind) String() string {
	switch k {
	case ExprLit:
		return "Lit"
	case ExprName:
		return "Name"
	case ExprCall:
		return "Call"
	case ExprIndex:
		return "Index"
	case ExprSlice:
		return "Slice"
	case ExprArray:
		return "Array"
	case ExprUnary:
		return "Unary"
	case ExprBinary:
		return "Binary"
	case ExprTernary:
		return "Ternary"
	case ExprParen:
		return "Paren"
	case ExprBad:
		return "Bad"
	default:
		return "Expr(?)"
	}
}

// Expr is an expression header; the per-kind payload lives in Exprs.
type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

// ExprLitData is a literal; Value is the raw source text, interned.
type ExprLitData struct {
	Kind  LitKind
	Value source.StringID
}

// ExprNameData references a dotted-path name.
type ExprNameData struct {
	Name NameID
}

// ExprCallData is `callee(args...)`.
type ExprCallData struct {
	Callee ExprID
	Args   []ExprID
}

// ExprIndexData is `target[index]`.
type ExprIndexData struct {
	Target ExprID
	Index  ExprID
}

// ExprSliceData is `target[lo:hi]`; either bound may be NoExprID.
type ExprSliceData struct {
	Target ExprID
	Lo     ExprID
	Hi     ExprID
}

// ExprArrayData is `[elems...]`.
type ExprArrayData struct {
	Elems []ExprID
}

// ExprUnaryData is a prefix operator application.
type ExprUnaryData struct {
	Op      UnaryOp
	Operand ExprID
}

// ExprBinaryData is a binary operator application.
type ExprBinaryData struct {
	Op    BinaryOp
	Left  ExprID
	Right ExprID
}

// ExprTernaryData is `cond ? then : else`.
type ExprTernaryData struct {
	Cond ExprID
	Then ExprID
	Else ExprID
}

// ExprParenData is `(inner)`.
type ExprParenData struct {
	Inner ExprID
}

// Exprs manages allocation of expressions and their payloads.
type Exprs struct {
	Arena     *Arena[Expr]
	Lits      *Arena[ExprLitData]
	NameRefs  *Arena[ExprNameData]
	Calls     *Arena[ExprCallData]
	Indexes   *Arena[ExprIndexData]
	Slices    *Arena[ExprSliceData]
	Arrays    *Arena[ExprArrayData]
	Unaries   *Arena[ExprUnaryData]
	Binaries  *Arena[ExprBinaryData]
	Ternaries *Arena[ExprTernaryData]
	Parens    *Arena[ExprParenData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:     NewArena[Expr](capHint),
		Lits:      NewArena[ExprLitData](capHint / 2),
		NameRefs:  NewArena[ExprNameData](capHint / 2),
		Calls:     NewArena[ExprCallData](capHint / 4),
		Indexes:   NewArena[ExprIndexData](capHint / 8),
		Slices:    NewArena[ExprSliceData](capHint / 8),
		Arrays:    NewArena[ExprArrayData](capHint / 8),
		Unaries:   NewArena[ExprUnaryData](capHint / 8),
		Binaries:  NewArena[ExprBinaryData](capHint / 2),
		Ternaries: NewArena[ExprTernaryData](capHint / 8),
		Parens:    NewArena[ExprParenData](capHint / 8),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the expression header for the given ID.
func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// Span returns the expression's span, or the zero span for NoExprID.
func (e *Exprs) Span(id ExprID) source.Span {
	expr := e.Get(id)
	if expr == nil {
		return source.Span{}
	}
	return expr.Span
}

// NewLit creates a literal expression.
func (e *Exprs) NewLit(span source.Span, kind LitKind, value source.StringID) ExprID {
	payload := e.Lits.Allocate(ExprLitData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Lit returns the literal payload for id.
func (e *Exprs) Lit(id ExprID) (*ExprLitData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Lits.Get(uint32(expr.Payload)), true
}

// NewName creates a name-reference expression.
func (e *Exprs) NewName(span source.Span, name NameID) ExprID {
	payload := e.NameRefs.Allocate(ExprNameData{Name: name})
	return e.new(ExprName, span, PayloadID(payload))
}

// Name returns the name payload for id.
func (e *Exprs) Name(id ExprID) (*ExprNameData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprName {
		return nil, false
	}
	return e.NameRefs.Get(uint32(expr.Payload)), true
}

// NewCall creates a call expression. The args slice is copied.
func (e *Exprs) NewCall(span source.Span, callee ExprID, args []ExprID) ExprID {
	payload := e.Calls.Allocate(ExprCallData{Callee: callee, Args: append([]ExprID(nil), args...)})
	return e.new(ExprCall, span, PayloadID(payload))
}

// Call returns the call payload for id.
func (e *Exprs) Call(id ExprID) (*ExprCallData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprCall {
		return nil, false
	}
	return e.Calls.Get(uint32(expr.Payload)), true
}

// NewIndex creates an index expression.
func (e *Exprs) NewIndex(span source.Span, target, index ExprID) ExprID {
	payload := e.Indexes.Allocate(ExprIndexData{Target: target, Index: index})
	return e.new(ExprIndex, span, PayloadID(payload))
}

// Index returns the index payload for id.
func (e *Exprs) Index(id ExprID) (*ExprIndexData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIndex {
		return nil, false
	}
	return e.Indexes.Get(uint32(expr.Payload)), true
}

// NewSlice creates a slice expression; lo and hi may be NoExprID.
func (e *Exprs) NewSlice(span source.Span, target, lo, hi ExprID) ExprID {
	payload := e.Slices.Allocate(ExprSliceData{Target: target, Lo: lo, Hi: hi})
	return e.new(ExprSlice, span, PayloadID(payload))
}

// Slice returns the slice payload for id.
func (e *Exprs) Slice(id ExprID) (*ExprSliceData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprSlice {
		return nil, false
	}
	return e.Slices.Get(uint32(expr.Payload)), true
}

// NewArray creates an array literal. The elems slice is copied.
func (e *Exprs) NewArray(span source.Span, elems []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elems: append([]ExprID(nil), elems...)})
	return e.new(ExprArray, span, PayloadID(payload))
}

// Array returns the array payload for id.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewUnary creates a prefix operator expression.
func (e *Exprs) NewUnary(span source.Span, op UnaryOp, operand ExprID) ExprID {
	payload := e.Unaries.Allocate(ExprUnaryData{Op: op, Operand: operand})
	return e.new(ExprUnary, span, PayloadID(payload))
}

// Unary returns the unary payload for id.
func (e *Exprs) Unary(id ExprID) (*ExprUnaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprUnary {
		return nil, false
	}
	return e.Unaries.Get(uint32(expr.Payload)), true
}

// NewBinary creates a binary operator expression.
func (e *Exprs) NewBinary(span source.Span, op BinaryOp, left, right ExprID) ExprID {
	payload := e.Binaries.Allocate(ExprBinaryData{Op: op, Left: left, Right: right})
	return e.new(ExprBinary, span, PayloadID(payload))
}

// Binary returns the binary payload for id.
func (e *Exprs) Binary(id ExprID) (*ExprBinaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprBinary {
		return nil, false
	}
	return e.Binaries.Get(uint32(expr.Payload)), true
}

// NewTernary creates a conditional expression.
func (e *Exprs) NewTernary(span source.Span, cond, then, elseExpr ExprID) ExprID {
	payload := e.Ternaries.Allocate(ExprTernaryData{Cond: cond, Then: then, Else: elseExpr})
	return e.new(ExprTernary, span, PayloadID(payload))
}

// Ternary returns the ternary payload for id.
func (e *Exprs) Ternary(id ExprID) (*ExprTernaryData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprTernary {
		return nil, false
	}
	return e.Ternaries.Get(uint32(expr.Payload)), true
}

// NewParen creates a parenthesized expression.
func (e *Exprs) NewParen(span source.Span, inner ExprID) ExprID {
	payload := e.Parens.Allocate(ExprParenData{Inner: inner})
	return e.new(ExprParen, span, PayloadID(payload))
}

// Paren returns the paren payload for id.
func (e *Exprs) Paren(id ExprID) (*ExprParenData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprParen {
		return nil, false
	}
	return e.Parens.Get(uint32(expr.Payload)), true
}

// NewBad creates an error-placeholder expression.
func (e *Exprs) NewBad(span source.Span) ExprID {
	return e.new(ExprBad, span, NoPayloadID)
}
