package internal

import (
	"strings"
)

//R generic type
type R interface{}

// astPrinter renders statements and expressions in prefix form,
// e.g. `1 + 2 * 3;` prints as `(; (+ 1 (* 2 3)))`
type astPrinter struct{}

func (v astPrinter) stmt(s stmt) string {
	out, _ := s.accept(v)
	return out.(string)
}

func (v astPrinter) expr(e expr) string {
	out, _ := e.accept(v)
	return out.(string)
}

func (v astPrinter) parenthesize(name string, parts ...string) string {
	return "(" + strings.Join(append([]string{name}, parts...), " ") + ")"
}

func (v astPrinter) visitExprStmt(st *exprStmt) (R, error) {
	return v.parenthesize(";", v.expr(st.expression)), nil
}

func (v astPrinter) visitPrintStmt(st *printStmt) (R, error) {
	return v.parenthesize("print", v.expr(st.expression)), nil
}

func (v astPrinter) visitVarStmt(st *varStmt) (R, error) {
	if st.initializer == nil {
		return v.parenthesize("var", st.name.lexeme), nil
	}
	return v.parenthesize("var", st.name.lexeme, v.expr(st.initializer)), nil
}

func (v astPrinter) visitBlockStmt(st *blockStmt) (R, error) {
	parts := make([]string, len(st.stmts))
	for i, s := range st.stmts {
		parts[i] = v.stmt(s)
	}
	return v.parenthesize("block", parts...), nil
}

func (v astPrinter) visitWhileStmt(st *whileStmt) (R, error) {
	return v.parenthesize("while", v.expr(st.condition), v.stmt(st.body)), nil
}

func (v astPrinter) visitReturnStmt(st *returnStmt) (R, error) {
	if st.value == nil {
		return "(return)", nil
	}
	return v.parenthesize("return", v.expr(st.value)), nil
}

func (v astPrinter) visitIfStmt(st *ifStmt) (R, error) {
	if st.elseBranch == nil {
		return v.parenthesize("if", v.expr(st.condition), v.stmt(st.thenBranch)), nil
	}
	return v.parenthesize("if", v.expr(st.condition), v.stmt(st.thenBranch), v.stmt(st.elseBranch)), nil
}

func (v astPrinter) visitFnStmt(st *fnStmt) (R, error) {
	params := make([]string, len(st.params))
	for i, param := range st.params {
		params[i] = param.lexeme
	}
	parts := []string{st.name.lexeme, "(" + strings.Join(params, " ") + ")"}
	for _, s := range st.body {
		parts = append(parts, v.stmt(s))
	}
	return v.parenthesize("fun", parts...), nil
}

func (v astPrinter) visitAssignExpr(expr *assignExpr) (R, error) {
	return v.parenthesize("=", expr.name.lexeme, v.expr(expr.value)), nil
}

func (v astPrinter) visitBinaryExpr(expr *binaryExpr) (R, error) {
	return v.parenthesize(expr.operator.lexeme, v.expr(expr.left), v.expr(expr.right)), nil
}

func (v astPrinter) visitCallExpr(expr *callExpr) (R, error) {
	parts := []string{v.expr(expr.callee)}
	for _, arg := range expr.arguments {
		parts = append(parts, v.expr(arg))
	}
	return v.parenthesize("call", parts...), nil
}

func (v astPrinter) visitGroupingExpr(expr *groupingExpr) (R, error) {
	return v.parenthesize("group", v.expr(expr.expression)), nil
}

func (v astPrinter) visitLiteralExpr(expr *literalExpr) (R, error) {
	return repr(expr.value), nil
}

func (v astPrinter) visitLogicalExpr(expr *logicalExpr) (R, error) {
	return v.parenthesize(expr.operator.lexeme, v.expr(expr.left), v.expr(expr.right)), nil
}

func (v astPrinter) visitUnaryExpr(expr *unaryExpr) (R, error) {
	return v.parenthesize(expr.operator.lexeme, v.expr(expr.right)), nil
}

func (v astPrinter) visitVariableExpr(expr *variableExpr) (R, error) {
	return expr.name.lexeme, nil
}
