// Package result defines the envelope every workflow operation returns.
// Expected failures (not found, validation, authorization mismatch, storage
// errors) are reported in the envelope rather than as a second return value,
// so callers can render them uniformly.
package result

import (
	dErrors "ims/pkg/domain-errors"
)

// Result carries either Data (success) or a coded Err (failure). Message is
// always human-readable.
type Result[T any] struct {
	Data    T
	Message string
	Err     error
}

// OK builds a successful result.
func OK[T any](data T, message string) Result[T] {
	return Result[T]{Data: data, Message: message}
}

// Fail builds a failed result from a coded error. Message is taken from the
// error's outermost coded message.
func Fail[T any](err error) Result[T] {
	if err == nil {
		err = dErrors.New(dErrors.CodeInternal, "unknown failure")
	}
	return Result[T]{Err: err, Message: dErrors.MessageOf(err)}
}

// Failf builds a failed result with a fresh coded error.
func Failf[T any](code dErrors.Code, message string) Result[T] {
	return Fail[T](dErrors.New(code, message))
}

func (r Result[T]) IsSuccess() bool {
	return r.Err == nil
}

// Code returns the failure code, or "" on success.
func (r Result[T]) Code() dErrors.Code {
	if r.Err == nil {
		return ""
	}
	return dErrors.CodeOf(r.Err)
}

// Envelope is the wire shape of a Result.
type Envelope struct {
	IsSuccess bool   `json:"isSuccess"`
	Data      any    `json:"data,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ToEnvelope converts a Result for JSON encoding.
func (r Result[T]) ToEnvelope() Envelope {
	if r.Err != nil {
		return Envelope{IsSuccess: false, Message: r.Message, Error: string(r.Code())}
	}
	return Envelope{IsSuccess: true, Data: r.Data, Message: r.Message}
}
