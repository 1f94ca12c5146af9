package webdocx

import (
	"errors"
	"fmt"
)

// Error codes used across the application.
const (
	ECRAWL       = "crawl"       // whole-crawl failure: zero pages fetched
	EINTERNAL    = "internal"    // unexpected internal error
	EINVALID     = "invalid"     // invalid input (bad URL, empty query)
	ENOTFOUND    = "not_found"   // resource does not exist
	ESCRAPE      = "scrape"      // per-URL fetch or parse failure
	ESEARCH      = "search"      // search provider failure
	ETIMEOUT     = "timeout"     // request exceeded its deadline
	EUNAVAILABLE = "unavailable" // strategy or collaborator unavailable
)

// Error represents an application error with a machine-readable code
// and a human-readable message. Messages always identify the offending
// URL or query.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("webdocx error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the error, if available.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if available.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
