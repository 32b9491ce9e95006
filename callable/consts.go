package callable

const (
	ErrMsgNotFunc      = "Given value is not a function."
	ErrMsgNilFunc      = "Function cannot be nil."
	ErrMsgNoReceiver   = "Function must accept a receiver as its first parameter."
	ErrMsgTooManyOuts  = "Function must return at most two values."
	ErrMsgBadSecondOut = "Second return value must be an error."
)
