package internal

import (
	"time"
)

func defineGlobals(e *env) {
	defineClock(e)
}

func defineClock(e *env) {
	e.define("clock", &nativeFn{
		name:       "clock",
		arityValue: 0,
		callFn: func(exec *exec, arguments []interface{}) (interface{}, error) {
			now := time.Now()
			return loxNumber(float64(now.UnixNano()) / float64(time.Second)), nil
		},
	})
}
