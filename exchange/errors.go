package exchange

import (
	"errors"
	"fmt"
)

// ErrorKind classifies adapter failures so callers can branch on the cause
// without string matching.
type ErrorKind string

const (
	// KindTransport covers network failures and non-2xx responses whose
	// body could not be interpreted.
	KindTransport ErrorKind = "transport"
	// KindExchange is the generic business-logic failure and the catch-all
	// for unrecognized exchange error codes.
	KindExchange ErrorKind = "exchange"
	// KindAuthentication covers credential and identity problems.
	KindAuthentication ErrorKind = "authentication"
	// KindInvalidOrder means the exchange rejected the order parameters or
	// could not reserve funds for it.
	KindInvalidOrder ErrorKind = "invalid_order"
	// KindOrderNotFound means the target of a cancel does not exist.
	KindOrderNotFound ErrorKind = "order_not_found"
	// KindNotSupported means the operation is not available on this
	// exchange.
	KindNotSupported ErrorKind = "not_supported"
	// KindParameter means the caller supplied insufficient or invalid
	// arguments.
	KindParameter ErrorKind = "parameter"
)

// Error is a typed adapter failure. Every error names the exchange and,
// where available, carries the raw response body for diagnosability.
type Error struct {
	Exchange string
	Kind     ErrorKind
	Message  string
	Body     string
}

func (e *Error) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: %s: %s: %s", e.Exchange, e.Kind, e.Message, e.Body)
	}
	return fmt.Sprintf("%s: %s: %s", e.Exchange, e.Kind, e.Message)
}

// NewError builds a typed adapter error.
func NewError(exchange string, kind ErrorKind, message, body string) *Error {
	return &Error{Exchange: exchange, Kind: kind, Message: message, Body: body}
}

// KindOf extracts the error kind from err, or "" when err does not wrap an
// adapter error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
