package ast

// Walk traverses the tree rooted at node in depth-first order, calling fn for
// each node. If fn returns false, the children of that node are skipped.
func Walk(node Node, fn func(Node) bool) {
	if node == nil || !fn(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, unit := range n.Units {
			Walk(unit, fn)
		}

	case *Package, *Import:

	case *StructDecl:
		for _, field := range n.Fields {
			Walk(field, fn)
		}

	case *ObjectDecl:
		for _, fun := range n.Funcs {
			Walk(fun, fn)
		}

	case *FuncDecl:
		walkParams(n.Params, fn)
		walkSuite(n.Body, fn)

	case *StructFuncDecl:
		walkParams(n.Params, fn)
		walkExpr(n.Returns, fn)
		walkSuite(n.Body, fn)

	case *ParameterSlot:
		if n.Param != nil {
			Walk(n.Param, fn)
		}

	case *Parameter:
		walkExpr(n.Type, fn)

	case *VariableDecl:
		walkExpr(n.Type, fn)

	case *Assign:
		walkExpr(n.Type, fn)
		walkExpr(n.Value, fn)

	case *ExpressionStmt:
		walkExpr(n.Expr, fn)

	case *If:
		walkExpr(n.Cond, fn)
		walkSuite(n.Body, fn)
		walkSuite(n.Else, fn)

	case *While:
		walkExpr(n.Cond, fn)
		walkSuite(n.Body, fn)

	case *For:
		walkExpr(n.Target, fn)
		walkExpr(n.Iter, fn)
		walkSuite(n.Body, fn)

	case *Break, *Continue:

	case *Return:
		walkExpr(n.Value, fn)

	case *Range:
		walkExpr(n.Start, fn)
		walkExpr(n.End, fn)

	case *BoolOp:
		for _, value := range n.Values {
			walkExpr(value, fn)
		}

	case *Compare:
		walkExpr(n.Left, fn)
		walkExpr(n.Right, fn)

	case *Binop:
		walkExpr(n.Left, fn)
		walkExpr(n.Right, fn)

	case *Unop:
		walkExpr(n.Operand, fn)

	case *PostUnop:
		walkExpr(n.Operand, fn)

	case *Call:
		walkExpr(n.Callee, fn)
		for _, arg := range n.Arguments {
			walkExpr(arg, fn)
		}

	case *MemberAccess:
		walkExpr(n.Base, fn)
		if n.Property != nil {
			Walk(n.Property, fn)
		}

	case *List:
		for _, element := range n.Elements {
			walkExpr(element, fn)
		}

	case *Bool, *String, *Number, *EmptyObject, *TypeLiteral, *Identifier:
	}
}

// walkExpr skips absent optional children such as a missing return type.
func walkExpr(expr Expr, fn func(Node) bool) {
	if expr == nil {
		return
	}

	Walk(expr, fn)
}

func walkSuite(suite []Stmt, fn func(Node) bool) {
	for _, stmt := range suite {
		Walk(stmt, fn)
	}
}

func walkParams(params []*ParameterSlot, fn func(Node) bool) {
	for _, slot := range params {
		Walk(slot, fn)
	}
}
