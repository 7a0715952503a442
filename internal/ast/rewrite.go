package ast

// RewriteExprs applies fn to every expression in value position under n,
// bottom-up, replacing each expression with fn's result. Binding positions
// (declarator names, function names, parameters) and non-computed property
// keys are not value positions and are left untouched.
func RewriteExprs(n Node, fn func(Expr) Expr) {
	switch v := n.(type) {
	case *Program:
		for _, s := range v.Body {
			RewriteExprs(s, fn)
		}
	case *VarDecl:
		for _, d := range v.Decls {
			d.Init = rewriteExpr(d.Init, fn)
		}
	case *FuncDecl:
		RewriteExprs(v.Body, fn)
	case *ExprStmt:
		v.X = rewriteExpr(v.X, fn)
	case *ReturnStmt:
		v.Arg = rewriteExpr(v.Arg, fn)
	case *IfStmt:
		v.Cond = rewriteExpr(v.Cond, fn)
		RewriteExprs(v.Then, fn)
		RewriteExprs(v.Else, fn)
	case *WhileStmt:
		v.Cond = rewriteExpr(v.Cond, fn)
		RewriteExprs(v.Body, fn)
	case *ForStmt:
		RewriteExprs(v.Init, fn)
		v.Cond = rewriteExpr(v.Cond, fn)
		v.Post = rewriteExpr(v.Post, fn)
		RewriteExprs(v.Body, fn)
	case *SwitchStmt:
		v.Disc = rewriteExpr(v.Disc, fn)
		for _, c := range v.Cases {
			c.Test = rewriteExpr(c.Test, fn)
			for _, s := range c.Body {
				RewriteExprs(s, fn)
			}
		}
	case *BlockStmt:
		for _, s := range v.Body {
			RewriteExprs(s, fn)
		}
	}
}

func rewriteExpr(e Expr, fn func(Expr) Expr) Expr {
	if e == nil || isNilNode(e) {
		return e
	}
	switch v := e.(type) {
	case *Array:
		for i, el := range v.Elems {
			v.Elems[i] = rewriteExpr(el, fn)
		}
	case *Object:
		for _, p := range v.Props {
			if p.Computed {
				p.Key = rewriteExpr(p.Key, fn)
			}
			p.Value = rewriteExpr(p.Value, fn)
		}
	case *FuncLit:
		RewriteExprs(v.Body, fn)
		v.ExprBody = rewriteExpr(v.ExprBody, fn)
	case *Unary:
		v.X = rewriteExpr(v.X, fn)
	case *Update:
		v.X = rewriteExpr(v.X, fn)
	case *Binary:
		v.L = rewriteExpr(v.L, fn)
		v.R = rewriteExpr(v.R, fn)
	case *Logical:
		v.L = rewriteExpr(v.L, fn)
		v.R = rewriteExpr(v.R, fn)
	case *Assign:
		v.Target = rewriteExpr(v.Target, fn)
		v.Value = rewriteExpr(v.Value, fn)
	case *Cond:
		v.Test = rewriteExpr(v.Test, fn)
		v.Then = rewriteExpr(v.Then, fn)
		v.Else = rewriteExpr(v.Else, fn)
	case *Seq:
		for i, x := range v.Exprs {
			v.Exprs[i] = rewriteExpr(x, fn)
		}
	case *Call:
		v.Callee = rewriteExpr(v.Callee, fn)
		for i, a := range v.Args {
			v.Args[i] = rewriteExpr(a, fn)
		}
	case *New:
		v.Callee = rewriteExpr(v.Callee, fn)
		for i, a := range v.Args {
			v.Args[i] = rewriteExpr(a, fn)
		}
	case *Member:
		v.Obj = rewriteExpr(v.Obj, fn)
		if v.Computed {
			v.Prop = rewriteExpr(v.Prop, fn)
		}
	}
	return fn(e)
}

// Blocks calls fn with every statement list in the program, including the
// program body, block statements, function bodies and switch case bodies.
func Blocks(prog *Program, fn func(list *[]Stmt)) {
	if prog == nil {
		return
	}
	fn(&prog.Body)
	Walk(prog, func(n Node) bool {
		switch v := n.(type) {
		case *BlockStmt:
			fn(&v.Body)
		case *SwitchStmt:
			for _, c := range v.Cases {
				fn(&c.Body)
			}
		}
		return true
	})
}
