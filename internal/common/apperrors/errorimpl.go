package apperrors

// appError implements the apperrors.Error interface
type appError struct {
	msg           string
	base          Error
	wrappedErrors []error
	statuscode    int
	expandError   bool
}

func (e *appError) Error() string {
	return e.msg
}

func (e *appError) ErrorAll() string {
	if !e.expandError || len(e.wrappedErrors) == 0 {
		return e.msg
	}
	msg := e.msg + ":"
	for i, err := range e.wrappedErrors {
		if i > 0 {
			msg += ";"
		}
		msg += " " + err.Error()
	}
	return msg
}

func (e *appError) Unwrap() []error {
	return e.wrappedErrors
}

// derive creates a child of e so that shared sentinels are never
// modified; Is(e) holds for the child through the base chain.
func (e *appError) derive() *appError {
	return &appError{
		msg:           e.msg,
		base:          e,
		wrappedErrors: append([]error(nil), e.wrappedErrors...),
		statuscode:    e.statuscode,
		expandError:   e.expandError,
	}
}

func (e *appError) New(msg string) Error {
	return &appError{
		msg:        msg,
		statuscode: e.statuscode,
		base:       e,
	}
}

func (e *appError) Msg(msg string) Error {
	ne := e.derive()
	ne.msg = msg
	return ne
}

func (e *appError) MsgErr(msg string, err ...error) Error {
	ne := e.derive()
	ne.msg = msg
	ne.wrappedErrors = append(ne.wrappedErrors, err...)
	return ne
}

func (e *appError) Err(err ...error) Error {
	ne := e.derive()
	ne.wrappedErrors = append(ne.wrappedErrors, err...)
	return ne
}

func (e *appError) Is(target error) bool {
	if e == target || e.base == target {
		return true
	}
	if e.base != nil && e.base.Is(target) {
		return true
	}
	for _, err := range e.wrappedErrors {
		if err == target {
			return true
		}
	}
	return false
}

func (e *appError) SetExpandError(expand bool) Error {
	ne := e.derive()
	ne.expandError = expand
	return ne
}

func (e *appError) SetStatusCode(code int) Error {
	ne := e.derive()
	ne.statuscode = code
	return ne
}

func (e *appError) StatusCode() int {
	return e.statuscode
}

func New(msg string) Error {
	return &appError{
		msg: msg,
	}
}
