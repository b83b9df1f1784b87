package osierr

import (
	"fmt"
)

// ExpectedErr is a failure the user caused and can act on, such as unrecognized labels in the input. It is reported
// without the surrounding error chain.
type ExpectedErr struct {
	Err error
}

func NewExpectedErr(msgFormat string, args ...interface{}) ExpectedErr {
	return ExpectedErr{
		Err: fmt.Errorf(msgFormat, args...),
	}
}

func (e ExpectedErr) Error() string {
	return e.Err.Error()
}

func (e ExpectedErr) Unwrap() error {
	return e.Err
}
