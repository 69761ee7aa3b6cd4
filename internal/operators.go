package internal

type operatorApply func(left, right interface{}) (interface{}, error)

var binaryOperations = map[tokenType]operatorApply{
	tkEqualEqual: func(left, right interface{}) (interface{}, error) {
		return loxBool(equal(left, right)), nil
	},
	tkBangEqual: func(left, right interface{}) (interface{}, error) {
		return loxBool(!equal(left, right)), nil
	},
	tkGreater:      compareNumbers(func(x, y loxNumber) bool { return x > y }),
	tkGreaterEqual: compareNumbers(func(x, y loxNumber) bool { return x >= y }),
	tkLess:         compareNumbers(func(x, y loxNumber) bool { return x < y }),
	tkLessEqual:    compareNumbers(func(x, y loxNumber) bool { return x <= y }),
	tkPlus:         add,
	tkMinus: func(left, right interface{}) (interface{}, error) {
		x, y, err := toNumbers(left, right)
		if err != nil {
			return nil, err
		}
		return x - y, nil
	},
	tkStar: func(left, right interface{}) (interface{}, error) {
		x, y, err := toNumbers(left, right)
		if err != nil {
			return nil, err
		}
		return x * y, nil
	},
	tkSlash: func(left, right interface{}) (interface{}, error) {
		x, y, err := toNumbers(left, right)
		if err != nil {
			return nil, err
		}
		if y == 0 {
			return nil, &RuntimeError{Err: errDivisionByZero}
		}
		return x / y, nil
	},
}

// compareNumbers orders numbers only, any other operand is an error
func compareNumbers(cmp func(x, y loxNumber) bool) operatorApply {
	return func(left, right interface{}) (interface{}, error) {
		x, y, err := toNumbers(left, right)
		if err != nil {
			return nil, err
		}
		return loxBool(cmp(x, y)), nil
	}
}

func add(left, right interface{}) (interface{}, error) {
	switch x := left.(type) {
	case loxNumber:
		y, ok := right.(loxNumber)
		if !ok {
			return nil, typeError(errExpectedNumber, right)
		}
		return x + y, nil
	case loxString:
		y, ok := right.(loxString)
		if !ok {
			return nil, typeError(errExpectedString, right)
		}
		return x + y, nil
	}
	return nil, typeError(errExpectedNumberOrString, left)
}
