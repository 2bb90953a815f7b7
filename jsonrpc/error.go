package jsonrpc

// Error is the wire-level JSON-RPC 2.0 error object (§3 Response,
// error: {code, message, data?}).
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (e *Error) Error() string { return e.Message }

// Standard JSON-RPC 2.0 codes (§7) plus the gateway's extended range.
// The extended codes below -32000 live here (not in a separate
// constants file) so jsonrpc.Err can resolve a default message for
// every code the core ever returns, matching juno's jsonrpc.Err(code,
// data) call shape seen in rpc/v8/subscriptions.go.
const (
	ParseError     = -32700
	InvalidRequest = -32600
	MethodNotFound = -32601
	InvalidParams  = -32602
	InternalError  = -32603

	NotFound            = -32000
	RateLimitExceeded   = -32029
	RequestTimeout      = -32028
	IncompatibleVersion = -32027
	TooManySubscriptions = -32026
)

var defaultMessages = map[int]string{
	ParseError:           "Parse error",
	InvalidRequest:       "Invalid Request",
	MethodNotFound:       "Method not found",
	InvalidParams:        "Invalid params",
	InternalError:        "Internal error",
	NotFound:             "Not found",
	RateLimitExceeded:    "Rate limit exceeded",
	RequestTimeout:       "Request timed out",
	IncompatibleVersion:  "Incompatible client version",
	TooManySubscriptions: "Too many subscriptions",
}

// Err builds an *Error for code with the standard message for that
// code and the given data attached.
func Err(code int, data any) *Error {
	msg, ok := defaultMessages[code]
	if !ok {
		msg = "Error"
	}
	return &Error{Code: code, Message: msg, Data: data}
}

// CloneWithData returns a copy of e with Data replaced, leaving e
// untouched so shared sentinel errors stay safe to reuse concurrently.
func (e *Error) CloneWithData(data any) *Error {
	clone := *e
	clone.Data = data
	return &clone
}
