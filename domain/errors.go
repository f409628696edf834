package domain

import "errors"

// ErrMalformedRequest is returned when an inbound message misses required fields, when its body
// can not be deserialized or when a contract request carries no permissions.
var ErrMalformedRequest = errors.New("malformed request")

// ErrNoScopesConfigured is returned when the environment supplied no deployment scopes.
var ErrNoScopesConfigured = errors.New("no deployment scopes configured")

// ErrInvalidOperand is returned when a constraint can not be constructed from the given operands.
var ErrInvalidOperand = errors.New("invalid operand")

// ErrMissingCorrelation marks an attempt to emit a response without correlation identifier.
// This is a programming error.
var ErrMissingCorrelation = errors.New("response without correlation identifier")

var ErrUnsupportedMessage = errors.New("unsupported message kind")
var ErrUnknownCommand = errors.New("unknown command")
