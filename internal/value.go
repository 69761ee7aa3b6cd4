package internal

import (
	"strconv"
)

// Runtime values are nil, loxBool, loxNumber, loxString, *loxFunction
// and *nativeFn.

type loxNumber float64

func (n loxNumber) String() string {
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

type loxString string

func (s loxString) String() string {
	return string(s)
}

type loxBool bool

func (b loxBool) String() string {
	return strconv.FormatBool(bool(b))
}

// truthy is false only for nil and false
func truthy(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case loxBool:
		return bool(v)
	}
	return true
}

// equal compares tag and value, callables compare by identity
func equal(left, right interface{}) bool {
	return left == right
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case loxNumber:
		return v.String()
	case loxString:
		return v.String()
	case loxBool:
		return v.String()
	case *loxFunction:
		return v.String()
	case *nativeFn:
		return v.String()
	}
	return "<unknown>"
}

// repr is stringify with quoted strings, used in error messages
func repr(value interface{}) string {
	if s, ok := value.(loxString); ok {
		return strconv.Quote(string(s))
	}
	return stringify(value)
}

func typeError(err error, actual interface{}) *RuntimeError {
	return &RuntimeError{Err: err, Actual: actual}
}

func toNumber(value interface{}) (loxNumber, error) {
	n, ok := value.(loxNumber)
	if !ok {
		return 0, typeError(errExpectedNumber, value)
	}
	return n, nil
}

func toNumbers(left, right interface{}) (loxNumber, loxNumber, error) {
	l, err := toNumber(left)
	if err != nil {
		return 0, 0, err
	}
	r, err := toNumber(right)
	if err != nil {
		return 0, 0, err
	}
	return l, r, nil
}

func negate(value interface{}) (interface{}, error) {
	n, err := toNumber(value)
	if err != nil {
		return nil, err
	}
	return -n, nil
}
