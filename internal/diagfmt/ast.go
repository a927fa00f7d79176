package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"sheeppig/internal/ast"
	"sheeppig/internal/source"
)

// ASTNodeOutput is one node in JSON AST dumps.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
	Fields   map[string]any  `json:"fields,omitempty"`
}

// FormatASTPretty writes a box-drawing tree of the module.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	file := builder.Files.Get(fileID)
	if file == nil {
		return fmt.Errorf("file not found")
	}

	fmt.Fprintf(w, "File (span: %s)\n", formatSpan(file.Span, fs))

	d := astDumper{w: w, builder: builder, fs: fs}

	total := len(file.Imports) + len(file.Fns) + len(file.Stmts)
	n := 0
	for _, id := range file.Imports {
		n++
		d.branch("", n == total, func(string) {
			d.printImport(id)
		})
	}
	for _, id := range file.Fns {
		n++
		d.branch("", n == total, func(prefix string) {
			d.printFn(id, prefix)
		})
	}
	for _, id := range file.Stmts {
		n++
		d.branch("", n == total, func(prefix string) {
			d.printStmt(id, prefix)
		})
	}

	return nil
}

// BuildASTJSON converts the module into the serializable node tree.
// Directory dumps aggregate several of these into one document.
func BuildASTJSON(builder *ast.Builder, fileID ast.FileID) (ASTNodeOutput, error) {
	file := builder.Files.Get(fileID)
	if file == nil {
		return ASTNodeOutput{}, fmt.Errorf("file not found")
	}

	j := astJSONBuilder{builder: builder}

	var children []ASTNodeOutput
	for _, id := range file.Imports {
		children = append(children, j.importNode(id))
	}
	for _, id := range file.Fns {
		children = append(children, j.fnNode(id))
	}
	for _, id := range file.Stmts {
		children = append(children, j.stmtNode(id))
	}

	return ASTNodeOutput{
		Type:     "File",
		Span:     file.Span,
		Children: children,
	}, nil
}

// FormatASTJSON writes the module as an indented JSON tree.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	output, err := BuildASTJSON(builder, fileID)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return span.String()
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

type astDumper struct {
	w       io.Writer
	builder *ast.Builder
	fs      *source.FileSet
}

// branch prints the connector glyph at the current prefix, then invokes
// body with the prefix for the node's own children.
func (d *astDumper) branch(prefix string, last bool, body func(childPrefix string)) {
	if last {
		fmt.Fprintf(d.w, "%s└─ ", prefix)
		body(prefix + "   ")
	} else {
		fmt.Fprintf(d.w, "%s├─ ", prefix)
		body(prefix + "│  ")
	}
}

func (d *astDumper) lookup(id source.StringID) string {
	return d.builder.Interner.MustLookup(id)
}

func (d *astDumper) printImport(id ast.ImportID) {
	imp := d.builder.Imports.Get(id)
	name := d.builder.Names.Render(imp.Name, d.builder.Interner)
	module := d.builder.Names.Render(imp.Module, d.builder.Interner)
	if imp.Alias != source.NoStringID {
		fmt.Fprintf(d.w, "Import %s as %s from %s (span: %s)\n",
			name, d.lookup(imp.Alias), module, formatSpan(imp.Span, d.fs))
		return
	}
	fmt.Fprintf(d.w, "Import %s from %s (span: %s)\n",
		name, module, formatSpan(imp.Span, d.fs))
}

func (d *astDumper) printFn(id ast.FnID, prefix string) {
	fn := d.builder.Fns.Get(id)
	fmt.Fprintf(d.w, "Fn %s (span: %s)\n", d.lookup(fn.Name), formatSpan(fn.Span, d.fs))

	total := len(fn.Params) + 1
	if fn.Return.IsValid() {
		total++
	}
	n := 0
	for _, param := range fn.Params {
		n++
		d.branch(prefix, n == total, func(string) {
			fmt.Fprintf(d.w, "Param %s: %s\n",
				d.lookup(param.Name),
				d.builder.Names.Render(param.Type, d.builder.Interner))
		})
	}
	if fn.Return.IsValid() {
		n++
		d.branch(prefix, n == total, func(string) {
			fmt.Fprintf(d.w, "Return %s\n", d.builder.Names.Render(fn.Return, d.builder.Interner))
		})
	}
	d.branch(prefix, true, func(childPrefix string) {
		d.printStmt(fn.Body, childPrefix)
	})
}

func (d *astDumper) printStmt(id ast.StmtID, prefix string) {
	if !id.IsValid() {
		fmt.Fprintln(d.w, "<none>")
		return
	}
	stmt := d.builder.Stmts.Get(id)
	span := formatSpan(stmt.Span, d.fs)

	switch stmt.Kind {
	case ast.StmtBlock:
		data, _ := d.builder.Stmts.Block(id)
		fmt.Fprintf(d.w, "Block (span: %s)\n", span)
		for i, child := range data.Stmts {
			d.branch(prefix, i == len(data.Stmts)-1, func(childPrefix string) {
				d.printStmt(child, childPrefix)
			})
		}

	case ast.StmtVarDecl:
		data, _ := d.builder.Stmts.VarDecl(id)
		fmt.Fprintf(d.w, "VarDecl %s: %s (span: %s)\n",
			d.lookup(data.Name),
			d.builder.Names.Render(data.Type, d.builder.Interner), span)
		if data.Value.IsValid() {
			d.branch(prefix, true, func(childPrefix string) {
				d.printExpr(data.Value, childPrefix)
			})
		}

	case ast.StmtConstDecl:
		data, _ := d.builder.Stmts.ConstDecl(id)
		fmt.Fprintf(d.w, "ConstDecl %s: %s (span: %s)\n",
			d.lookup(data.Name),
			d.builder.Names.Render(data.Type, d.builder.Interner), span)
		d.branch(prefix, true, func(childPrefix string) {
			d.printExpr(data.Value, childPrefix)
		})

	case ast.StmtAssign:
		data, _ := d.builder.Stmts.Assign(id)
		fmt.Fprintf(d.w, "Assign %s (span: %s)\n", data.Op, span)
		d.branch(prefix, false, func(childPrefix string) {
			d.printExpr(data.Target, childPrefix)
		})
		d.branch(prefix, true, func(childPrefix string) {
			d.printExpr(data.Value, childPrefix)
		})

	case ast.StmtReturn:
		data, _ := d.builder.Stmts.Return(id)
		fmt.Fprintf(d.w, "Return (span: %s)\n", span)
		if data.Value.IsValid() {
			d.branch(prefix, true, func(childPrefix string) {
				d.printExpr(data.Value, childPrefix)
			})
		}

	case ast.StmtExpr:
		data, _ := d.builder.Stmts.ExprStmt(id)
		fmt.Fprintf(d.w, "ExprStmt (span: %s)\n", span)
		d.branch(prefix, true, func(childPrefix string) {
			d.printExpr(data.Expr, childPrefix)
		})

	case ast.StmtIf:
		data, _ := d.builder.Stmts.If(id)
		fmt.Fprintf(d.w, "If (span: %s)\n", span)
		hasElse := data.Else.IsValid()
		d.branch(prefix, false, func(childPrefix string) {
			d.printExpr(data.Cond, childPrefix)
		})
		d.branch(prefix, !hasElse, func(childPrefix string) {
			d.printStmt(data.Then, childPrefix)
		})
		if hasElse {
			d.branch(prefix, true, func(childPrefix string) {
				d.printStmt(data.Else, childPrefix)
			})
		}

	case ast.StmtWhile:
		data, _ := d.builder.Stmts.While(id)
		fmt.Fprintf(d.w, "While (span: %s)\n", span)
		d.branch(prefix, false, func(childPrefix string) {
			d.printExpr(data.Cond, childPrefix)
		})
		d.branch(prefix, true, func(childPrefix string) {
			d.printStmt(data.Body, childPrefix)
		})

	case ast.StmtForIn:
		data, _ := d.builder.Stmts.ForIn(id)
		fmt.Fprintf(d.w, "ForIn %s (span: %s)\n", d.lookup(data.Var), span)
		d.branch(prefix, false, func(childPrefix string) {
			d.printExpr(data.Seq, childPrefix)
		})
		d.branch(prefix, true, func(childPrefix string) {
			d.printStmt(data.Body, childPrefix)
		})

	default:
		fmt.Fprintf(d.w, "%s (span: %s)\n", stmt.Kind, span)
	}
}

func (d *astDumper) printExpr(id ast.ExprID, prefix string) {
	if !id.IsValid() {
		fmt.Fprintln(d.w, "<none>")
		return
	}
	expr := d.builder.Exprs.Get(id)
	span := formatSpan(expr.Span, d.fs)

	switch expr.Kind {
	case ast.ExprLit:
		data, _ := d.builder.Exprs.Lit(id)
		fmt.Fprintf(d.w, "Lit %s %q (span: %s)\n", data.Kind, d.lookup(data.Value), span)

	case ast.ExprName:
		data, _ := d.builder.Exprs.Name(id)
		fmt.Fprintf(d.w, "Name %s (span: %s)\n",
			d.builder.Names.Render(data.Name, d.builder.Interner), span)

	case ast.ExprCall:
		data, _ := d.builder.Exprs.Call(id)
		fmt.Fprintf(d.w, "Call (span: %s)\n", span)
		d.branch(prefix, len(data.Args) == 0, func(childPrefix string) {
			d.printExpr(data.Callee, childPrefix)
		})
		for i, arg := range data.Args {
			d.branch(prefix, i == len(data.Args)-1, func(childPrefix string) {
				d.printExpr(arg, childPrefix)
			})
		}

	case ast.ExprIndex:
		data, _ := d.builder.Exprs.Index(id)
		fmt.Fprintf(d.w, "Index (span: %s)\n", span)
		d.branch(prefix, false, func(childPrefix string) {
			d.printExpr(data.Target, childPrefix)
		})
		d.branch(prefix, true, func(childPrefix string) {
			d.printExpr(data.Index, childPrefix)
		})

	case ast.ExprSlice:
		data, _ := d.builder.Exprs.Slice(id)
		fmt.Fprintf(d.w, "Slice (span: %s)\n", span)
		d.branch(prefix, !data.Lo.IsValid() && !data.Hi.IsValid(), func(childPrefix string) {
			d.printExpr(data.Target, childPrefix)
		})
		if data.Lo.IsValid() {
			d.branch(prefix, !data.Hi.IsValid(), func(childPrefix string) {
				d.printExpr(data.Lo, childPrefix)
			})
		}
		if data.Hi.IsValid() {
			d.branch(prefix, true, func(childPrefix string) {
				d.printExpr(data.Hi, childPrefix)
			})
		}

	case ast.ExprArray:
		data, _ := d.builder.Exprs.Array(id)
		fmt.Fprintf(d.w, "Array (span: %s)\n", span)
		for i, elem := range data.Elems {
			d.branch(prefix, i == len(data.Elems)-1, func(childPrefix string) {
				d.printExpr(elem, childPrefix)
			})
		}

	case ast.ExprUnary:
		data, _ := d.builder.Exprs.Unary(id)
		fmt.Fprintf(d.w, "Unary %s (span: %s)\n", data.Op, span)
		d.branch(prefix, true, func(childPrefix string) {
			d.printExpr(data.Operand, childPrefix)
		})

	case ast.ExprBinary:
		data, _ := d.builder.Exprs.Binary(id)
		fmt.Fprintf(d.w, "Binary %s (span: %s)\n", data.Op, span)
		d.branch(prefix, false, func(childPrefix string) {
			d.printExpr(data.Left, childPrefix)
		})
		d.branch(prefix, true, func(childPrefix string) {
			d.printExpr(data.Right, childPrefix)
		})

	case ast.ExprTernary:
		data, _ := d.builder.Exprs.Ternary(id)
		fmt.Fprintf(d.w, "Ternary (span: %s)\n", span)
		d.branch(prefix, false, func(childPrefix string) {
			d.printExpr(data.Cond, childPrefix)
		})
		d.branch(prefix, false, func(childPrefix string) {
			d.printExpr(data.Then, childPrefix)
		})
		d.branch(prefix, true, func(childPrefix string) {
			d.printExpr(data.Else, childPrefix)
		})

	case ast.ExprParen:
		data, _ := d.builder.Exprs.Paren(id)
		fmt.Fprintf(d.w, "Paren (span: %s)\n", span)
		d.branch(prefix, true, func(childPrefix string) {
			d.printExpr(data.Inner, childPrefix)
		})

	default:
		fmt.Fprintf(d.w, "%s (span: %s)\n", expr.Kind, span)
	}
}

type astJSONBuilder struct {
	builder *ast.Builder
}

func (j *astJSONBuilder) lookup(id source.StringID) string {
	return j.builder.Interner.MustLookup(id)
}

func (j *astJSONBuilder) importNode(id ast.ImportID) ASTNodeOutput {
	imp := j.builder.Imports.Get(id)
	fields := map[string]any{
		"name":   j.builder.Names.Render(imp.Name, j.builder.Interner),
		"module": j.builder.Names.Render(imp.Module, j.builder.Interner),
	}
	if imp.Alias != source.NoStringID {
		fields["alias"] = j.lookup(imp.Alias)
	}
	return ASTNodeOutput{Type: "Import", Span: imp.Span, Fields: fields}
}

func (j *astJSONBuilder) fnNode(id ast.FnID) ASTNodeOutput {
	fn := j.builder.Fns.Get(id)

	params := make([]map[string]any, 0, len(fn.Params))
	for _, param := range fn.Params {
		params = append(params, map[string]any{
			"name": j.lookup(param.Name),
			"type": j.builder.Names.Render(param.Type, j.builder.Interner),
		})
	}
	fields := map[string]any{
		"name":   j.lookup(fn.Name),
		"params": params,
	}
	if fn.Return.IsValid() {
		fields["return"] = j.builder.Names.Render(fn.Return, j.builder.Interner)
	}

	return ASTNodeOutput{
		Type:     "Fn",
		Span:     fn.Span,
		Fields:   fields,
		Children: []ASTNodeOutput{j.stmtNode(fn.Body)},
	}
}

func (j *astJSONBuilder) stmtNode(id ast.StmtID) ASTNodeOutput {
	if !id.IsValid() {
		return ASTNodeOutput{Type: "None"}
	}
	stmt := j.builder.Stmts.Get(id)
	node := ASTNodeOutput{Type: "Stmt", Kind: stmt.Kind.String(), Span: stmt.Span}

	switch stmt.Kind {
	case ast.StmtBlock:
		data, _ := j.builder.Stmts.Block(id)
		for _, child := range data.Stmts {
			node.Children = append(node.Children, j.stmtNode(child))
		}

	case ast.StmtVarDecl:
		data, _ := j.builder.Stmts.VarDecl(id)
		node.Fields = map[string]any{
			"name": j.lookup(data.Name),
			"type": j.builder.Names.Render(data.Type, j.builder.Interner),
		}
		if data.Value.IsValid() {
			node.Children = append(node.Children, j.exprNode(data.Value))
		}

	case ast.StmtConstDecl:
		data, _ := j.builder.Stmts.ConstDecl(id)
		node.Fields = map[string]any{
			"name": j.lookup(data.Name),
			"type": j.builder.Names.Render(data.Type, j.builder.Interner),
		}
		node.Children = append(node.Children, j.exprNode(data.Value))

	case ast.StmtAssign:
		data, _ := j.builder.Stmts.Assign(id)
		node.Fields = map[string]any{"op": data.Op.String()}
		node.Children = append(node.Children, j.exprNode(data.Target), j.exprNode(data.Value))

	case ast.StmtReturn:
		data, _ := j.builder.Stmts.Return(id)
		if data.Value.IsValid() {
			node.Children = append(node.Children, j.exprNode(data.Value))
		}

	case ast.StmtExpr:
		data, _ := j.builder.Stmts.ExprStmt(id)
		node.Children = append(node.Children, j.exprNode(data.Expr))

	case ast.StmtIf:
		data, _ := j.builder.Stmts.If(id)
		node.Children = append(node.Children, j.exprNode(data.Cond), j.stmtNode(data.Then))
		if data.Else.IsValid() {
			node.Children = append(node.Children, j.stmtNode(data.Else))
		}

	case ast.StmtWhile:
		data, _ := j.builder.Stmts.While(id)
		node.Children = append(node.Children, j.exprNode(data.Cond), j.stmtNode(data.Body))

	case ast.StmtForIn:
		data, _ := j.builder.Stmts.ForIn(id)
		node.Fields = map[string]any{"var": j.lookup(data.Var)}
		node.Children = append(node.Children, j.exprNode(data.Seq), j.stmtNode(data.Body))
	}

	return node
}

func (j *astJSONBuilder) exprNode(id ast.ExprID) ASTNodeOutput {
	if !id.IsValid() {
		return ASTNodeOutput{Type: "None"}
	}
	expr := j.builder.Exprs.Get(id)
	node := ASTNodeOutput{Type: "Expr", Kind: expr.Kind.String(), Span: expr.Span}

	switch expr.Kind {
	case ast.ExprLit:
		data, _ := j.builder.Exprs.Lit(id)
		node.Text = j.lookup(data.Value)
		node.Fields = map[string]any{"lit": data.Kind.String()}

	case ast.ExprName:
		data, _ := j.builder.Exprs.Name(id)
		node.Text = j.builder.Names.Render(data.Name, j.builder.Interner)

	case ast.ExprCall:
		data, _ := j.builder.Exprs.Call(id)
		node.Children = append(node.Children, j.exprNode(data.Callee))
		for _, arg := range data.Args {
			node.Children = append(node.Children, j.exprNode(arg))
		}

	case ast.ExprIndex:
		data, _ := j.builder.Exprs.Index(id)
		node.Children = append(node.Children, j.exprNode(data.Target), j.exprNode(data.Index))

	case ast.ExprSlice:
		data, _ := j.builder.Exprs.Slice(id)
		node.Children = append(node.Children, j.exprNode(data.Target), j.exprNode(data.Lo), j.exprNode(data.Hi))

	case ast.ExprArray:
		data, _ := j.builder.Exprs.Array(id)
		for _, elem := range data.Elems {
			node.Children = append(node.Children, j.exprNode(elem))
		}

	case ast.ExprUnary:
		data, _ := j.builder.Exprs.Unary(id)
		node.Fields = map[string]any{"op": data.Op.String()}
		node.Children = append(node.Children, j.exprNode(data.Operand))

	case ast.ExprBinary:
		data, _ := j.builder.Exprs.Binary(id)
		node.Fields = map[string]any{"op": data.Op.String()}
		node.Children = append(node.Children, j.exprNode(data.Left), j.exprNode(data.Right))

	case ast.ExprTernary:
		data, _ := j.builder.Exprs.Ternary(id)
		node.Children = append(node.Children, j.exprNode(data.Cond), j.exprNode(data.Then), j.exprNode(data.Else))

	case ast.ExprParen:
		data, _ := j.builder.Exprs.Paren(id)
		node.Children = append(node.Children, j.exprNode(data.Inner))
	}

	return node
}
