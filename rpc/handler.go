// Package rpc implements every handler registered onto the jsonrpc
// dispatcher (§6.2): block queries, transaction queries, network
// methods, VM methods, and the WebSocket-only subscription methods.
// Handlers are pure translators between wire parameters, adapter calls,
// and model DTOs — no adapter logic lives here, grounded on juno's
// rpc/v8 package split (one file per method family, a shared Handler
// holding the backend and config, Register wiring every method onto
// the server at startup).
package rpc

import (
	"github.com/dusk-network/rusk/adapter"
	"github.com/dusk-network/rusk/subscription"
	"github.com/dusk-network/rusk/utils"
)

// Handler holds every collaborator the registered methods need. It is
// built once at startup and never mutated afterward.
type Handler struct {
	db      adapter.DatabaseAdapter
	net     adapter.NetworkAdapter
	vm      adapter.VmAdapter
	archive adapter.ArchiveAdapter // nil unless the archive feature is enabled

	manager *subscription.Manager
	log     utils.SimpleLogger

	maxBlockRange int
	maxAlivePeers int

	// legacyStatusNotFoundAsResult mirrors config.Features.LegacyStatusNotFoundAsResult
	// (§9 Open Question #2): false (default) makes getTransactionStatus
	// return rpcerr.ErrTxnNotFound for an unknown hash; true returns a
	// successful {status: "NotFound"} result instead.
	legacyStatusNotFoundAsResult bool
}

// New builds a Handler. archive may be nil (§4.1 "optional, feature-
// gated"); callers that omit it get ErrArchiveNotEnabled from any
// archive-only method.
func New(db adapter.DatabaseAdapter, net adapter.NetworkAdapter, vm adapter.VmAdapter, archive adapter.ArchiveAdapter, manager *subscription.Manager, log utils.SimpleLogger, maxBlockRange, maxAlivePeers int, legacyStatusNotFoundAsResult bool) *Handler {
	return &Handler{
		db:                           db,
		net:                          net,
		vm:                           vm,
		archive:                      archive,
		manager:                      manager,
		log:                          log,
		maxBlockRange:                maxBlockRange,
		maxAlivePeers:                maxAlivePeers,
		legacyStatusNotFoundAsResult: legacyStatusNotFoundAsResult,
	}
}
