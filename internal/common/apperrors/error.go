package apperrors

// Error is the error type used across the client. Errors form a chain:
// an error derived with New reports Is(base) == true for its base, so a
// sentinel can be declared once and specialized per call site with a
// user-facing message. Every method that changes state returns a new
// derived error and leaves the receiver untouched, so package-level
// sentinels stay clean no matter how call sites decorate them.
type Error interface {
	Error() string
	ErrorAll() string
	New(msg string) Error
	Msg(msg string) Error
	MsgErr(msg string, err ...error) Error
	Err(err ...error) Error
	Unwrap() []error
	Is(target error) bool
	SetExpandError(expand bool) Error
	SetStatusCode(code int) Error
	StatusCode() int
}
