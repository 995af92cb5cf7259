package rpc

import (
	"errors"
	"fmt"
)

// Error codes carried in the response envelope.
const (
	CodeParseError     = -32700
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
	CodeInternal       = -32603
)

// Common errors.
var (
	ErrParse         = errors.New("parse error")
	ErrUnknownMethod = errors.New("unknown method")
	ErrInvalidParams = errors.New("invalid params")
)

// Error is the error member of a response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("rpc error %d: %s", e.Code, e.Message)
}

// toError maps a dispatch failure onto its wire representation.
func toError(err error) *Error {
	code := CodeInternal
	switch {
	case errors.Is(err, ErrParse):
		code = CodeParseError
	case errors.Is(err, ErrUnknownMethod):
		code = CodeMethodNotFound
	case errors.Is(err, ErrInvalidParams):
		code = CodeInvalidParams
	}
	return &Error{Code: code, Message: err.Error()}
}
