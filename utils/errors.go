package utils

// CustomError carries the HTTP status an error should be reported with.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
	Err        error  `json:"-"`
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError builds a CustomError without an underlying cause.
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// WrapError builds a CustomError that keeps err as its cause.
func WrapError(statusCode int, message string, err error) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message, Err: err}
}
