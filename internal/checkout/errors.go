package checkout

// Error records where a checkout run failed and what to tell the user.
// Message is user-facing and safe to render as-is.
type Error struct {
	State      State  `json:"state"`
	Field      string `json:"field,omitempty"`
	SeatNumber string `json:"seat_number,omitempty"`
	Message    string `json:"message"`
	Redirect   string `json:"redirect,omitempty"`
	From       string `json:"from,omitempty"`
	Err        error  `json:"-"`
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(state State, message string, err error) *Error {
	return &Error{State: state, Message: message, Err: err}
}

func newFieldError(field, message string) *Error {
	return &Error{State: StateValidating, Field: field, Message: message}
}
