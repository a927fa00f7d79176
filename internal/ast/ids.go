package ast

type (
	// FileID identifies a parsed module root.
	FileID uint32
	// ImportID identifies one imported name.
	ImportID uint32
	// FnID identifies a function definition.
	FnID uint32
	// StmtID identifies a statement node.
	StmtID uint32
	// ExprID identifies an expression node.
	ExprID uint32
	// NameID identifies a dotted-path name.
	NameID uint32
	// PayloadID links a node header to its per-kind payload.
	PayloadID uint32
)

const (
	NoFileID    FileID    = 0
	NoImportID  ImportID  = 0
	NoFnID      FnID      = 0
	NoStmtID    StmtID    = 0
	NoExprID    ExprID    = 0
	NoNameID    NameID    = 0
	NoPayloadID PayloadID = 0
)

func (id FileID) IsValid() bool    { return id != NoFileID }
func (id ImportID) IsValid() bool  { return id != NoImportID }
func (id FnID) IsValid() bool      { return id != NoFnID }
func (id StmtID) IsValid() bool    { return id != NoStmtID }
func (id ExprID) IsValid() bool    { return id != NoExprID }
func (id NameID) IsValid() bool    { return id != NoNameID }
func (id PayloadID) IsValid() bool { return id != NoPayloadID }
