package internal

type env struct {
	enclosing *env
	values    map[string]interface{}
}

func newEnv(enclosing *env) *env {
	return &env{
		enclosing: enclosing,
		values:    make(map[string]interface{}),
	}
}

func (e *env) get(name *token) (interface{}, error) {
	for scope := e; scope != nil; scope = scope.enclosing {
		if value, ok := scope.values[name.lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVar(name)
}

// define never fails, redefinition overwrites
func (e *env) define(name string, value interface{}) {
	e.values[name] = value
}

// assign overwrites the binding where it lives and returns the previous value
func (e *env) assign(name *token, value interface{}) (interface{}, error) {
	for scope := e; scope != nil; scope = scope.enclosing {
		if previous, ok := scope.values[name.lexeme]; ok {
			scope.values[name.lexeme] = value
			return previous, nil
		}
	}
	return nil, undefinedVar(name)
}

func (e *env) ancestor(depth int) *env {
	scope := e
	for i := 0; i < depth && scope != nil; i++ {
		scope = scope.enclosing
	}
	return scope
}

func (e *env) getAt(depth int, name *token) (interface{}, error) {
	scope := e.ancestor(depth)
	if scope != nil {
		if value, ok := scope.values[name.lexeme]; ok {
			return value, nil
		}
	}
	return nil, undefinedVar(name)
}

func (e *env) assignAt(depth int, name *token, value interface{}) (interface{}, error) {
	scope := e.ancestor(depth)
	if scope != nil {
		if previous, ok := scope.values[name.lexeme]; ok {
			scope.values[name.lexeme] = value
			return previous, nil
		}
	}
	return nil, undefinedVar(name)
}

func undefinedVar(name *token) error {
	return &RuntimeError{
		Err:    errUndefinedVariable,
		Line:   name.line,
		Lexeme: name.lexeme,
	}
}
