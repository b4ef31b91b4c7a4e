package route

var (
	ErrUnauthorized   = newError("Unauthorized")
	ErrBadRequest     = newError("Body invalid")
	ErrNotFound       = newError("Resource not found")
	ErrNotImplemented = newError("Dictionary backend can't complete words")
	ErrNotTrained     = newError("Text generator is not trained")
)

// HTTPError is custom HTTP error for API
type HTTPError struct {
	Message string `json:"message"`
}

func (e *HTTPError) Error() string {
	return e.Message
}

func newError(msg string) *HTTPError {
	return &HTTPError{Message: msg}
}
