package dialect

import (
	"errors"
	"fmt"

	"github.com/syssam/graphocean"
)

// ErrorCode is a result code of the graph service.
type ErrorCode int

// Result codes reported by the graph service and its client.
const (
	ErrorSucceeded           ErrorCode = 0
	ErrorDisconnected        ErrorCode = -1
	ErrorFailToConnect       ErrorCode = -2
	ErrorRPCFailure          ErrorCode = -3
	ErrorBadUsernamePassword ErrorCode = -1001
	ErrorSessionInvalid      ErrorCode = -1002
	ErrorSessionTimeout      ErrorCode = -1003
	ErrorSyntaxError         ErrorCode = -1004
	ErrorExecutionError      ErrorCode = -1005
	ErrorStatementEmpty      ErrorCode = -1006
	ErrorUserNotFound        ErrorCode = -1007
	ErrorBadPermission       ErrorCode = -1008
	ErrorSemanticError       ErrorCode = -1009
)

var codeNames = map[ErrorCode]string{
	ErrorSucceeded:           "SUCCEEDED",
	ErrorDisconnected:        "E_DISCONNECTED",
	ErrorFailToConnect:       "E_FAIL_TO_CONNECT",
	ErrorRPCFailure:          "E_RPC_FAILURE",
	ErrorBadUsernamePassword: "E_BAD_USERNAME_PASSWORD",
	ErrorSessionInvalid:      "E_SESSION_INVALID",
	ErrorSessionTimeout:      "E_SESSION_TIMEOUT",
	ErrorSyntaxError:         "E_SYNTAX_ERROR",
	ErrorExecutionError:      "E_EXECUTION_ERROR",
	ErrorStatementEmpty:      "E_STATEMENT_EMPTY",
	ErrorUserNotFound:        "E_USER_NOT_FOUND",
	ErrorBadPermission:       "E_BAD_PERMISSION",
	ErrorSemanticError:       "E_SEMANTIC_ERROR",
}

// String returns the code name.
func (c ErrorCode) String() string {
	if s, ok := codeNames[c]; ok {
		return s
	}
	return fmt.Sprintf("ErrorCode(%d)", int(c))
}

// CodeOf returns the code of the ExecuteError wrapped in err, and false
// when err wraps none.
func CodeOf(err error) (ErrorCode, bool) {
	var e *graphocean.ExecuteError
	if !errors.As(err, &e) {
		return 0, false
	}
	return ErrorCode(e.Code), true
}

// IsRPCFailure reports if err resulted from a transport failure.
func IsRPCFailure(err error) bool {
	return hasCode(err, ErrorRPCFailure, ErrorDisconnected, ErrorFailToConnect)
}

// IsPermissionError reports if err resulted from missing privileges or
// bad credentials.
func IsPermissionError(err error) bool {
	return hasCode(err, ErrorBadPermission, ErrorBadUsernamePassword, ErrorUserNotFound)
}

// IsSyntaxError reports if the store rejected the statement text.
func IsSyntaxError(err error) bool {
	return hasCode(err, ErrorSyntaxError, ErrorSemanticError, ErrorStatementEmpty)
}

// IsSessionError reports if the session expired or was invalidated.
func IsSessionError(err error) bool {
	return hasCode(err, ErrorSessionInvalid, ErrorSessionTimeout)
}

func hasCode(err error, codes ...ErrorCode) bool {
	c, ok := CodeOf(err)
	if !ok {
		return false
	}
	for _, code := range codes {
		if c == code {
			return true
		}
	}
	return false
}
