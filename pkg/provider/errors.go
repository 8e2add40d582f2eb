package provider

import "fmt"

// CallError reports a failed provider call. The cause is kept intact for
// errors.Is and errors.As; callers decide whether to retry.
type CallError struct {
	Provider string
	Op       string
	Err      error
}

// WrapCall returns nil for a nil err and a *CallError otherwise.
func WrapCall(providerName, op string, err error) error {
	if err == nil {
		return nil
	}
	return &CallError{Provider: providerName, Op: op, Err: err}
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Provider, e.Op, e.Err)
}

func (e *CallError) Unwrap() error {
	return e.Err
}
