package internal

import "fmt"

// Callables form a closed set: *loxFunction and *nativeFn. Call sites
// dispatch on them with a type switch.

type loxFunction struct {
	declaration *fnStmt
	closure     *env
}

type nativeFn struct {
	name       string
	arityValue int
	callFn     func(exec *exec, arguments []interface{}) (interface{}, error)
}

func (n *nativeFn) arity() int {
	return n.arityValue
}

func (n *nativeFn) call(exec *exec, arguments []interface{}) (interface{}, error) {
	return n.callFn(exec, arguments)
}

func (n *nativeFn) String() string {
	return fmt.Sprintf("<native fn %s>", n.name)
}

func (f *loxFunction) arity() int {
	return len(f.declaration.params)
}

// call runs the body in a child of the closure, not of the caller's env
func (f *loxFunction) call(exec *exec, arguments []interface{}) (interface{}, error) {
	env := newEnv(f.closure)
	for i := range f.declaration.params {
		env.define(f.declaration.params[i].lexeme, arguments[i])
	}

	result, err := exec.executeBlock(f.declaration.body, env)
	if err != nil {
		return nil, err
	}
	if result.returning {
		return result.value, nil
	}
	return nil, nil
}

func (f *loxFunction) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.name.lexeme)
}

// arityOf reports the arity of a callable value
func arityOf(callee interface{}) (int, bool) {
	switch fn := callee.(type) {
	case *loxFunction:
		return fn.arity(), true
	case *nativeFn:
		return fn.arity(), true
	}
	return 0, false
}
