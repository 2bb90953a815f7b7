// Package rpcerr defines the gateway's extended JSON-RPC error table
// (§7) and the leaf errors handlers return directly, mirroring the way
// juno's rpccore package exposes a table of *jsonrpc.Error constants
// built on top of the jsonrpc package's base Error type.
package rpcerr

import (
	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/jsonrpc"
)

var (
	ErrBlockNotFound        = jsonrpc.Err(jsonrpc.NotFound, "Block not found")
	ErrTxnNotFound          = jsonrpc.Err(jsonrpc.NotFound, "Transaction not found")
	ErrCandidateNotFound    = jsonrpc.Err(jsonrpc.NotFound, "Candidate not found")
	ErrSubscriptionNotFound = jsonrpc.Err(jsonrpc.NotFound, "Subscription not found")
	ErrArchiveNotEnabled    = jsonrpc.Err(jsonrpc.InternalError, "Archive adapter not enabled")
	ErrTooManyBlocksInRange = jsonrpc.Err(jsonrpc.InvalidParams, "Block range exceeds max_block_range")
	ErrInvalidRange         = jsonrpc.Err(jsonrpc.InvalidParams, "end_height must be >= start_height")
	ErrInternal             = jsonrpc.Err(jsonrpc.InternalError, nil)
)

// InvalidParams builds an InvalidParams error with a free-form message,
// e.g. for a failed hex decode or a missing/mistyped parameter.
func InvalidParams(msg string) *jsonrpc.Error {
	return jsonrpc.Err(jsonrpc.InvalidParams, msg)
}

// Map translates an adapter.Error's Kind into the JSON-RPC taxonomy
// (§4.1 "Error taxonomy returned by adapters must map onto the
// JSON-RPC error taxonomy in §7"). An adapter error of KindInternal
// becomes a bare InternalError with no data; an error that is not an
// *adapter.Error becomes InternalError carrying its text as data, and
// NotFound/InvalidArgument errors also carry their text. Map does not
// log; §4.4 sanitization applies on top of this mapping, at the
// dispatcher boundary.
func Map(err error) *jsonrpc.Error {
	if err == nil {
		return nil
	}
	aerr, ok := err.(*adapter.Error)
	if !ok {
		return ErrInternal.CloneWithData(err.Error())
	}
	switch aerr.Kind {
	case adapter.KindNotFound:
		return ErrBlockNotFound.CloneWithData(err.Error())
	case adapter.KindInvalidArgument:
		return InvalidParams(err.Error())
	case adapter.KindResourceBusy:
		return ErrInternal.CloneWithData("resource busy")
	case adapter.KindCancelled:
		return jsonrpc.Err(jsonrpc.RequestTimeout, nil)
	default:
		return ErrInternal
	}
}
