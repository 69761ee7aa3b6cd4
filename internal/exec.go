package internal

// flow is the result of executing a statement. A returning flow travels
// up through blocks and loops until the enclosing call consumes it.
type flow struct {
	returning bool
	value     interface{}
}

type exec struct {
	globals *env
	env     *env

	// locals maps expression ids to their resolved depth
	locals map[int]int

	printer IPrinter

	state *interpreterState
}

func newExec(p IPrinter) *exec {
	globals := newEnv(nil)
	return &exec{
		globals: globals,
		env:     globals,
		locals:  make(map[int]int),
		printer: p,
	}
}

func (e *exec) interpret() error {
	for _, s := range e.state.stmts {
		if _, err := e.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (e *exec) execute(s stmt) (flow, error) {
	result, err := s.accept(e)
	f, _ := result.(flow)
	return f, err
}

func (e *exec) evaluate(ex expr) (interface{}, error) {
	return ex.accept(e)
}

// executeBlock runs stmts in env and always restores the previous env
func (e *exec) executeBlock(stmts []stmt, env *env) (flow, error) {
	previous := e.env
	defer func() {
		e.env = previous
	}()
	e.env = env
	for _, s := range stmts {
		f, err := e.execute(s)
		if err != nil || f.returning {
			return f, err
		}
	}
	return flow{}, nil
}

// locate attaches the position of tk to runtime errors raised without one
func (e *exec) locate(err error, tk *token) error {
	if runErr, ok := err.(*RuntimeError); ok && runErr.Line == 0 {
		runErr.Line = tk.line
		runErr.Lexeme = tk.lexeme
	}
	return err
}

func (e *exec) visitExprStmt(st *exprStmt) (R, error) {
	_, err := e.evaluate(st.expression)
	return flow{}, err
}

func (e *exec) visitPrintStmt(st *printStmt) (R, error) {
	value, err := e.evaluate(st.expression)
	if err != nil {
		return flow{}, err
	}
	e.printer.Println(stringify(value))
	return flow{}, nil
}

func (e *exec) visitVarStmt(st *varStmt) (R, error) {
	var val interface{}
	if st.initializer != nil {
		var err error
		if val, err = e.evaluate(st.initializer); err != nil {
			return flow{}, err
		}
	}
	e.env.define(st.name.lexeme, val)
	return flow{}, nil
}

func (e *exec) visitBlockStmt(st *blockStmt) (R, error) {
	return e.executeBlock(st.stmts, newEnv(e.env))
}

func (e *exec) visitWhileStmt(st *whileStmt) (R, error) {
	for {
		cond, err := e.evaluate(st.condition)
		if err != nil {
			return flow{}, err
		}
		if !truthy(cond) {
			return flow{}, nil
		}
		f, err := e.execute(st.body)
		if err != nil || f.returning {
			return f, err
		}
	}
}

func (e *exec) visitReturnStmt(st *returnStmt) (R, error) {
	var value interface{}
	if st.value != nil {
		var err error
		if value, err = e.evaluate(st.value); err != nil {
			return flow{}, err
		}
	}
	return flow{returning: true, value: value}, nil
}

func (e *exec) visitIfStmt(st *ifStmt) (R, error) {
	cond, err := e.evaluate(st.condition)
	if err != nil {
		return flow{}, err
	}
	if truthy(cond) {
		return e.execute(st.thenBranch)
	}
	if st.elseBranch != nil {
		return e.execute(st.elseBranch)
	}
	return flow{}, nil
}

func (e *exec) visitFnStmt(st *fnStmt) (R, error) {
	e.env.define(st.name.lexeme, &loxFunction{
		declaration: st,
		closure:     e.env,
	})
	return flow{}, nil
}

func (e *exec) visitAssignExpr(expr *assignExpr) (R, error) {
	val, err := e.evaluate(expr.value)
	if err != nil {
		return nil, err
	}
	if depth, ok := e.locals[expr.id]; ok {
		_, err = e.env.assignAt(depth, expr.name, val)
	} else {
		_, err = e.globals.assign(expr.name, val)
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (e *exec) visitBinaryExpr(expr *binaryExpr) (R, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}
	right, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	apply := binaryOperations[expr.operator.token]
	result, err := apply(left, right)
	if err != nil {
		return nil, e.locate(err, expr.operator)
	}
	return result, nil
}

func (e *exec) visitCallExpr(expr *callExpr) (R, error) {
	callee, err := e.evaluate(expr.callee)
	if err != nil {
		return nil, err
	}

	arity, ok := arityOf(callee)
	if !ok {
		return nil, e.locate(typeError(errUncallable, callee), expr.paren)
	}

	arguments := make([]interface{}, len(expr.arguments))
	for i := range expr.arguments {
		if arguments[i], err = e.evaluate(expr.arguments[i]); err != nil {
			return nil, err
		}
	}

	if len(arguments) != arity {
		return nil, &RuntimeError{
			Err:      errWrongNumberOfArguments,
			Line:     expr.paren.line,
			Lexeme:   expr.paren.lexeme,
			Actual:   callee,
			Expected: arity,
			Got:      len(arguments),
		}
	}

	var result interface{}
	switch fn := callee.(type) {
	case *loxFunction:
		result, err = fn.call(e, arguments)
	case *nativeFn:
		result, err = fn.call(e, arguments)
	}
	if err != nil {
		return nil, e.locate(err, expr.paren)
	}
	return result, nil
}

func (e *exec) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return e.evaluate(expr.expression)
}

func (e *exec) visitLiteralExpr(expr *literalExpr) (R, error) {
	return expr.value, nil
}

// visitLogicalExpr short-circuits and yields an operand, not a boolean
func (e *exec) visitLogicalExpr(expr *logicalExpr) (R, error) {
	left, err := e.evaluate(expr.left)
	if err != nil {
		return nil, err
	}

	if expr.operator.token == tkOr {
		if truthy(left) {
			return left, nil
		}
	} else if !truthy(left) {
		return left, nil
	}

	return e.evaluate(expr.right)
}

func (e *exec) visitUnaryExpr(expr *unaryExpr) (R, error) {
	value, err := e.evaluate(expr.right)
	if err != nil {
		return nil, err
	}
	if expr.operator.token == tkBang {
		return loxBool(!truthy(value)), nil
	}
	result, err := negate(value)
	if err != nil {
		return nil, e.locate(err, expr.operator)
	}
	return result, nil
}

func (e *exec) visitVariableExpr(expr *variableExpr) (R, error) {
	return e.lookUpVariable(expr.name, expr)
}

func (e *exec) lookUpVariable(name *token, ex expr) (interface{}, error) {
	if depth, ok := e.locals[ex.nodeID()]; ok {
		return e.env.getAt(depth, name)
	}
	return e.globals.get(name)
}
