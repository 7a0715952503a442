package ast

import "reflect"

// Walk visits n and its children in preorder. If visit returns false the
// children of the current node are skipped.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || isNilNode(n) {
		return
	}
	if !visit(n) {
		return
	}
	switch v := n.(type) {
	case *Program:
		for _, s := range v.Body {
			Walk(s, visit)
		}
	case *VarDecl:
		for _, d := range v.Decls {
			Walk(d.Name, visit)
			Walk(d.Init, visit)
		}
	case *FuncDecl:
		Walk(v.Name, visit)
		for _, p := range v.Params {
			Walk(p, visit)
		}
		Walk(v.Body, visit)
	case *ExprStmt:
		Walk(v.X, visit)
	case *ReturnStmt:
		Walk(v.Arg, visit)
	case *IfStmt:
		Walk(v.Cond, visit)
		Walk(v.Then, visit)
		Walk(v.Else, visit)
	case *WhileStmt:
		Walk(v.Cond, visit)
		Walk(v.Body, visit)
	case *ForStmt:
		Walk(v.Init, visit)
		Walk(v.Cond, visit)
		Walk(v.Post, visit)
		Walk(v.Body, visit)
	case *SwitchStmt:
		Walk(v.Disc, visit)
		for _, c := range v.Cases {
			Walk(c.Test, visit)
			for _, s := range c.Body {
				Walk(s, visit)
			}
		}
	case *BlockStmt:
		for _, s := range v.Body {
			Walk(s, visit)
		}
	case *Array:
		for _, e := range v.Elems {
			Walk(e, visit)
		}
	case *Object:
		for _, p := range v.Props {
			Walk(p.Key, visit)
			Walk(p.Value, visit)
		}
	case *FuncLit:
		Walk(v.Name, visit)
		for _, p := range v.Params {
			Walk(p, visit)
		}
		Walk(v.Body, visit)
		Walk(v.ExprBody, visit)
	case *Unary:
		Walk(v.X, visit)
	case *Update:
		Walk(v.X, visit)
	case *Binary:
		Walk(v.L, visit)
		Walk(v.R, visit)
	case *Logical:
		Walk(v.L, visit)
		Walk(v.R, visit)
	case *Assign:
		Walk(v.Target, visit)
		Walk(v.Value, visit)
	case *Cond:
		Walk(v.Test, visit)
		Walk(v.Then, visit)
		Walk(v.Else, visit)
	case *Seq:
		for _, e := range v.Exprs {
			Walk(e, visit)
		}
	case *Call:
		Walk(v.Callee, visit)
		for _, a := range v.Args {
			Walk(a, visit)
		}
	case *New:
		Walk(v.Callee, visit)
		for _, a := range v.Args {
			Walk(a, visit)
		}
	case *Member:
		Walk(v.Obj, visit)
		Walk(v.Prop, visit)
	}
}

// isNilNode guards against typed-nil interface values from optional fields.
func isNilNode(n Node) bool {
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
