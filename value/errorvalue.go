package value

// ErrorType names one of the standard error constructors.
type ErrorType string

// Standard error types: the base type and five specific ones.
const (
	ErrorBase      ErrorType = "Error"
	EvalError      ErrorType = "EvalError"
	RangeError     ErrorType = "RangeError"
	ReferenceError ErrorType = "ReferenceError"
	SyntaxError    ErrorType = "SyntaxError"
	TypeError      ErrorType = "TypeError"
)

// ErrorTypes lists every ErrorType in a stable order.
func ErrorTypes() []ErrorType {
	return []ErrorType{ErrorBase, EvalError, RangeError, ReferenceError, SyntaxError, TypeError}
}

// ErrorValue is an instance of one of the standard error types.
type ErrorValue struct {
	Type    ErrorType
	Message String
	// Stack is the diagnostic accessor. It is nil when callables were
	// disabled at generation time.
	Stack *Accessor
}

// String renders e as "<Type>: <message>".
func (e *ErrorValue) String() string {
	if e.Message.Len() == 0 {
		return string(e.Type)
	}
	return string(e.Type) + ": " + e.Message.Text()
}
