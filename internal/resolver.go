package internal

// resolver computes, for every variable and assignment expression, how
// many scopes separate the use from its declaration. Globals are left
// out of the table and looked up by name at runtime.
type resolver struct {
	// scopes maps names to true once their initializer is resolved
	scopes []map[string]bool
	locals map[int]int

	functionDepth int

	state *interpreterState
}

func newResolver(state *interpreterState, locals map[int]int) *resolver {
	return &resolver{
		locals: locals,
		state:  state,
	}
}

func (r *resolver) resolve() {
	r.resolveStmts(r.state.stmts)
}

func (r *resolver) resolveStmts(stmts []stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *resolver) resolveStmt(s stmt) {
	// Errors are recorded in the state, the walk always completes
	s.accept(r)
}

func (r *resolver) resolveExpr(e expr) {
	if e != nil {
		e.accept(r)
	}
}

func (r *resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *resolver) declare(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.lexeme]; ok {
		r.error(errAlreadyDeclared, name)
	}
	scope[name.lexeme] = false
}

func (r *resolver) define(name *token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.lexeme] = true
}

// resolveLocal records the depth of the innermost scope holding name
func (r *resolver) resolveLocal(e expr, name *token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.lexeme]; ok {
			r.locals[e.nodeID()] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *resolver) resolveFunction(fn *fnStmt) {
	r.functionDepth++
	defer func() { r.functionDepth-- }()

	r.beginScope()
	defer r.endScope()
	for _, param := range fn.params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStmts(fn.body)
}

func (r *resolver) error(err error, name *token) {
	r.state.setError(&ResolveError{
		Err:  err,
		Line: name.line,
		Name: name.lexeme,
	})
}

func (r *resolver) visitExprStmt(st *exprStmt) (R, error) {
	r.resolveExpr(st.expression)
	return nil, nil
}

func (r *resolver) visitPrintStmt(st *printStmt) (R, error) {
	r.resolveExpr(st.expression)
	return nil, nil
}

func (r *resolver) visitVarStmt(st *varStmt) (R, error) {
	r.declare(st.name)
	r.resolveExpr(st.initializer)
	r.define(st.name)
	return nil, nil
}

func (r *resolver) visitBlockStmt(st *blockStmt) (R, error) {
	r.beginScope()
	r.resolveStmts(st.stmts)
	r.endScope()
	return nil, nil
}

func (r *resolver) visitWhileStmt(st *whileStmt) (R, error) {
	r.resolveExpr(st.condition)
	r.resolveStmt(st.body)
	return nil, nil
}

func (r *resolver) visitReturnStmt(st *returnStmt) (R, error) {
	if r.functionDepth == 0 {
		r.error(errReturnOutsideFunction, st.keyword)
	}
	r.resolveExpr(st.value)
	return nil, nil
}

func (r *resolver) visitIfStmt(st *ifStmt) (R, error) {
	r.resolveExpr(st.condition)
	r.resolveStmt(st.thenBranch)
	if st.elseBranch != nil {
		r.resolveStmt(st.elseBranch)
	}
	return nil, nil
}

// visitFnStmt defines the name before the body so functions can recurse
func (r *resolver) visitFnStmt(st *fnStmt) (R, error) {
	r.declare(st.name)
	r.define(st.name)
	r.resolveFunction(st)
	return nil, nil
}

func (r *resolver) visitAssignExpr(expr *assignExpr) (R, error) {
	r.resolveExpr(expr.value)
	r.resolveLocal(expr, expr.name)
	return nil, nil
}

func (r *resolver) visitBinaryExpr(expr *binaryExpr) (R, error) {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *resolver) visitCallExpr(expr *callExpr) (R, error) {
	r.resolveExpr(expr.callee)
	for _, arg := range expr.arguments {
		r.resolveExpr(arg)
	}
	return nil, nil
}

func (r *resolver) visitGroupingExpr(expr *groupingExpr) (R, error) {
	r.resolveExpr(expr.expression)
	return nil, nil
}

func (r *resolver) visitLiteralExpr(expr *literalExpr) (R, error) {
	return nil, nil
}

func (r *resolver) visitLogicalExpr(expr *logicalExpr) (R, error) {
	r.resolveExpr(expr.left)
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *resolver) visitUnaryExpr(expr *unaryExpr) (R, error) {
	r.resolveExpr(expr.right)
	return nil, nil
}

func (r *resolver) visitVariableExpr(expr *variableExpr) (R, error) {
	if len(r.scopes) != 0 {
		if defined, ok := r.scopes[len(r.scopes)-1][expr.name.lexeme]; ok && !defined {
			r.error(errReadInOwnInitializer, expr.name)
		}
	}
	r.resolveLocal(expr, expr.name)
	return nil, nil
}
