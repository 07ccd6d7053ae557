package app

import "errors"

// ExitError carries the process exit code out of run; Err is printed when the code is non-zero.
type ExitError struct {
	Code int
	Err  error
}

func (e ExitError) Error() string {
	if e.Err == nil {
		return "exit"
	}
	return e.Err.Error()
}

func (e ExitError) Unwrap() error {
	return e.Err
}

// Exit stops the run with code and nothing to report.
func Exit(code int) error {
	return ExitError{Code: code}
}

// ExitWithError stops the run with code and prints err.
func ExitWithError(code int, err error) error {
	return ExitError{Code: code, Err: err}
}

func asExitError(err error) (ExitError, bool) {
	var ee ExitError
	if errors.As(err, &ee) {
		return ee, true
	}
	return ExitError{}, false
}
