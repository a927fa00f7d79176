package ast

import (
	"sheeppig/internal/source"
)

// StmtKind is the closed set of statement variants. Blank lines are
// elided at parse time rather than materialized, so there is no Empty
// variant here.
type StmtKind uint8

const (
	StmtBlock StmtKind = iota
	StmtVarDecl
	StmtConstDecl
	StmtAssign
	StmtReturn
	StmtExpr
	StmtIf
	StmtWhile
	StmtForIn
	// StmtBad is the error placeholder left by panic-mode recovery so
	// sibling statements stay parseable.
	StmtBad
)

func (k StmtKind) String() string {
	switch k {
	case StmtBlock:
		return "Block"
	case StmtVarDecl:
		return "VarDecl"
	case StmtConstDecl:
		return "ConstDecl"
	case StmtAssign:
		return "Assign"
	case StmtReturn:
		return "Return"
	case StmtExpr:
		return "ExprStmt"
	case StmtIf:
		return "If"
	case StmtWhile:
		return "While"
	case StmtForIn:
		return "ForIn"
	case StmtBad:
		return "Bad"
	default:
		return "Stmt(?)"
	}
}

// Stmt is a statement header; the per-kind payload lives in Stmts.
type Stmt struct {
	Kind    StmtKind
	Span    source.Span
	Payload PayloadID
}

// StmtBlockData is an ordered statement sequence inside braces.
type StmtBlockData struct {
	Stmts []StmtID
}

// StmtVarDeclData is `var name: type [= value]`; Value may be NoExprID.
type StmtVarDeclData struct {
	Name     source.StringID
	NameSpan source.Span
	Type     NameID
	Value    ExprID
}

// StmtConstDeclData is `name: type = value`; the initializer is mandatory.
type StmtConstDeclData struct {
	Name     source.StringID
	NameSpan source.Span
	Type     NameID
	Value    ExprID
}

// StmtAssignData is `target op value` where target is a name, index, or
// slice expression and op is '=' or a compound form.
type StmtAssignData struct {
	Target ExprID
	Op     AssignOp
	Value  ExprID
}

// StmtReturnData is `return [value]`; Value may be NoExprID.
type StmtReturnData struct {
	Value ExprID
}

// StmtExprData wraps a bare expression used as a statement.
type StmtExprData struct {
	Expr ExprID
}

// StmtIfData is `if cond { then } [else ...]`. Else is NoStmtID, a Block
// for a plain else, or another If for an else-if chain.
type StmtIfData struct {
	Cond ExprID
	Then StmtID
	Else StmtID
}

// StmtWhileData is `while cond { body }`.
type StmtWhileData struct {
	Cond ExprID
	Body StmtID
}

// StmtForInData is `for var in seq { body }`.
type StmtForInData struct {
	Var     source.StringID
	VarSpan source.Span
	Seq     ExprID
	Body    StmtID
}

// Stmts manages allocation of statements and their payloads.
type Stmts struct {
	Arena      *Arena[Stmt]
	Blocks     *Arena[StmtBlockData]
	VarDecls   *Arena[StmtVarDeclData]
	ConstDecls *Arena[StmtConstDeclData]
	Assigns    *Arena[StmtAssignData]
	Returns    *Arena[StmtReturnData]
	ExprStmts  *Arena[StmtExprData]
	Ifs        *Arena[StmtIfData]
	Whiles     *Arena[StmtWhileData]
	ForIns     *Arena[StmtForInData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Stmts{
		Arena:      NewArena[Stmt](capHint),
		Blocks:     NewArena[StmtBlockData](capHint / 4),
		VarDecls:   NewArena[StmtVarDeclData](capHint / 4),
		ConstDecls: NewArena[StmtConstDeclData](capHint / 4),
		Assigns:    NewArena[StmtAssignData](capHint / 4),
		Returns:    NewArena[StmtReturnData](capHint / 4),
		ExprStmts:  NewArena[StmtExprData](capHint / 4),
		Ifs:        NewArena[StmtIfData](capHint / 4),
		Whiles:     NewArena[StmtWhileData](capHint / 8),
		ForIns:     NewArena[StmtForInData](capHint / 8),
	}
}

func (s *Stmts) new(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{Kind: kind, Span: span, Payload: payload}))
}

// Get returns the statement header for the given ID.
func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

// NewBlock creates a block statement. The slice is copied.
func (s *Stmts) NewBlock(span source.Span, stmts []StmtID) StmtID {
	payload := s.Blocks.Allocate(StmtBlockData{Stmts: append([]StmtID(nil), stmts...)})
	return s.new(StmtBlock, span, PayloadID(payload))
}

// Block returns the block payload for id.
func (s *Stmts) Block(id StmtID) (*StmtBlockData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtBlock {
		return nil, false
	}
	return s.Blocks.Get(uint32(stmt.Payload)), true
}

// NewVarDecl creates a var declaration statement.
func (s *Stmts) NewVarDecl(span source.Span, name source.StringID, nameSpan source.Span, typ NameID, value ExprID) StmtID {
	payload := s.VarDecls.Allocate(StmtVarDeclData{Name: name, NameSpan: nameSpan, Type: typ, Value: value})
	return s.new(StmtVarDecl, span, PayloadID(payload))
}

// VarDecl returns the var declaration payload for id.
func (s *Stmts) VarDecl(id StmtID) (*StmtVarDeclData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtVarDecl {
		return nil, false
	}
	return s.VarDecls.Get(uint32(stmt.Payload)), true
}

// NewConstDecl creates a const declaration statement.
func (s *Stmts) NewConstDecl(span source.Span, name source.StringID, nameSpan source.Span, typ NameID, value ExprID) StmtID {
	payload := s.ConstDecls.Allocate(StmtConstDeclData{Name: name, NameSpan: nameSpan, Type: typ, Value: value})
	return s.new(StmtConstDecl, span, PayloadID(payload))
}

// ConstDecl returns the const declaration payload for id.
func (s *Stmts) ConstDecl(id StmtID) (*StmtConstDeclData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtConstDecl {
		return nil, false
	}
	return s.ConstDecls.Get(uint32(stmt.Payload)), true
}

// NewAssign creates an assignment statement.
func (s *Stmts) NewAssign(span source.Span, target ExprID, op AssignOp, value ExprID) StmtID {
	payload := s.Assigns.Allocate(StmtAssignData{Target: target, Op: op, Value: value})
	return s.new(StmtAssign, span, PayloadID(payload))
}

// Assign returns the assignment payload for id.
func (s *Stmts) Assign(id StmtID) (*StmtAssignData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtAssign {
		return nil, false
	}
	return s.Assigns.Get(uint32(stmt.Payload)), true
}

// NewReturn creates a return statement; value may be NoExprID.
func (s *Stmts) NewReturn(span source.Span, value ExprID) StmtID {
	payload := s.Returns.Allocate(StmtReturnData{Value: value})
	return s.new(StmtReturn, span, PayloadID(payload))
}

// Return returns the return payload for id.
func (s *Stmts) Return(id StmtID) (*StmtReturnData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtReturn {
		return nil, false
	}
	return s.Returns.Get(uint32(stmt.Payload)), true
}

// NewExprStmt creates an expression statement.
func (s *Stmts) NewExprStmt(span source.Span, expr ExprID) StmtID {
	payload := s.ExprStmts.Allocate(StmtExprData{Expr: expr})
	return s.new(StmtExpr, span, PayloadID(payload))
}

// ExprStmt returns the expression-statement payload for id.
func (s *Stmts) ExprStmt(id StmtID) (*StmtExprData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtExpr {
		return nil, false
	}
	return s.ExprStmts.Get(uint32(stmt.Payload)), true
}

// NewIf creates an if statement; elseStmt may be NoStmtID.
func (s *Stmts) NewIf(span source.Span, cond ExprID, then, elseStmt StmtID) StmtID {
	payload := s.Ifs.Allocate(StmtIfData{Cond: cond, Then: then, Else: elseStmt})
	return s.new(StmtIf, span, PayloadID(payload))
}

// If returns the if payload for id.
func (s *Stmts) If(id StmtID) (*StmtIfData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtIf {
		return nil, false
	}
	return s.Ifs.Get(uint32(stmt.Payload)), true
}

// NewWhile creates a while statement.
func (s *Stmts) NewWhile(span source.Span, cond ExprID, body StmtID) StmtID {
	payload := s.Whiles.Allocate(StmtWhileData{Cond: cond, Body: body})
	return s.new(StmtWhile, span, PayloadID(payload))
}

// While returns the while payload for id.
func (s *Stmts) While(id StmtID) (*StmtWhileData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtWhile {
		return nil, false
	}
	return s.Whiles.Get(uint32(stmt.Payload)), true
}

// NewForIn creates a for-in statement.
func (s *Stmts) NewForIn(span source.Span, v source.StringID, varSpan source.Span, seq ExprID, body StmtID) StmtID {
	payload := s.ForIns.Allocate(StmtForInData{Var: v, VarSpan: varSpan, Seq: seq, Body: body})
	return s.new(StmtForIn, span, PayloadID(payload))
}

// ForIn returns the for-in payload for id.
func (s *Stmts) ForIn(id StmtID) (*StmtForInData, bool) {
	stmt := s.Get(id)
	if stmt == nil || stmt.Kind != StmtForIn {
		return nil, false
	}
	return s.ForIns.Get(uint32(stmt.Payload)), true
}

// NewBad creates an error-placeholder statement.
func (s *Stmts) NewBad(span source.Span) StmtID {
	return s.new(StmtBad, span, NoPayloadID)
}
