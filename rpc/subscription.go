package rpc

import (
	"context"

	"github.com/dusk-network/rusk/jsonrpc"
	"github.com/dusk-network/rusk/rpcerr"
	"github.com/dusk-network/rusk/subscription"
	"github.com/dusk-network/rusk/utils"
	"github.com/google/uuid"
)

// subscriptionResult is the wire shape every subscribe* method returns:
// the opaque handle the client must present to unsubscribe/status calls.
type subscriptionResult struct {
	SubscriptionID string `json:"subscription_id"`
}

// bind resolves the calling connection's Sink and ClientInfo, rejecting
// with MethodNotFound when called over HTTP (§6.2 "WebSocket only").
func (h *Handler) bind(ctx context.Context) (subscription.Sink, subscription.ClientInfo, *jsonrpc.Error) {
	conn, ok := jsonrpc.ConnFromContext(ctx)
	if !ok {
		return nil, subscription.ClientInfo{}, jsonrpc.Err(jsonrpc.MethodNotFound, "subscriptions are WebSocket only")
	}
	sink, ok := conn.(subscription.Sink)
	if !ok {
		return nil, subscription.ClientInfo{}, jsonrpc.Err(jsonrpc.InternalError, "connection does not support subscriptions")
	}
	info, _ := jsonrpc.ClientInfoFromContext(ctx)
	return sink, subscription.ClientInfo{
		RemoteAddr:    info.RemoteAddr,
		SessionID:     info.SessionID,
		VersionHeader: info.VersionHeader,
	}, nil
}

func (h *Handler) subscribe(ctx context.Context, topic subscription.Topic, filter subscription.Filter) (subscriptionResult, *jsonrpc.Error) {
	sink, client, err := h.bind(ctx)
	if err != nil {
		return subscriptionResult{}, err
	}
	id, err := h.manager.AddSubscription(subscription.SessionID(client.SessionID), topic, sink, filter, client)
	if err != nil {
		return subscriptionResult{}, err
	}
	return subscriptionResult{SubscriptionID: id.String()}, nil
}

// subscribeBlockAcceptance streams newly accepted blocks.
func (h *Handler) subscribeBlockAcceptance(ctx context.Context, includeTxs bool) (subscriptionResult, *jsonrpc.Error) {
	return h.subscribe(ctx, subscription.TopicBlockAcceptance, subscription.BlockFilter{IncludeTxs: includeTxs})
}

// subscribeBlockFinalization streams blocks as their label becomes Final.
func (h *Handler) subscribeBlockFinalization(ctx context.Context) (subscriptionResult, *jsonrpc.Error) {
	return h.subscribe(ctx, subscription.TopicBlockFinalization, subscription.BlockFilter{})
}

// subscribeChainReorganization streams reorg notifications; there is no
// per-subscriber filter since a reorg is always chain-wide.
func (h *Handler) subscribeChainReorganization(ctx context.Context) (subscriptionResult, *jsonrpc.Error) {
	return h.subscribe(ctx, subscription.TopicChainReorganization, nil)
}

// subscribeContractEvents streams events emitted by contractIDHex,
// optionally restricted to eventNames.
func (h *Handler) subscribeContractEvents(ctx context.Context, contractIDHex string, eventNames []string, includeMetadata bool) (subscriptionResult, *jsonrpc.Error) {
	contractID, err := utils.HexToBytes(contractIDHex, 0)
	if err != nil {
		return subscriptionResult{}, rpcerr.InvalidParams(err.Error())
	}
	filter := subscription.ContractFilter{ContractID: contractID, EventNames: eventNames, IncludeMetadata: includeMetadata}
	return h.subscribe(ctx, subscription.TopicContractEvents, filter)
}

// subscribeContractTransferEvents streams value-transfer events,
// optionally restricted by a minimum transferred amount.
func (h *Handler) subscribeContractTransferEvents(ctx context.Context, contractIDHex string, eventNames []string, minAmount uint64, includeMetadata bool) (subscriptionResult, *jsonrpc.Error) {
	contractID, err := utils.HexToBytes(contractIDHex, 0)
	if err != nil {
		return subscriptionResult{}, rpcerr.InvalidParams(err.Error())
	}
	filter := subscription.TransferFilter{ContractID: contractID, EventNames: eventNames, MinAmount: minAmount, IncludeMetadata: includeMetadata}
	return h.subscribe(ctx, subscription.TopicContractTransferEvents, filter)
}

// subscribeMempoolAcceptance streams transactions as they enter the
// mempool, optionally restricted to one contract.
func (h *Handler) subscribeMempoolAcceptance(ctx context.Context, contractIDHex string, includeDetails bool) (subscriptionResult, *jsonrpc.Error) {
	filter, err := mempoolFilterFrom(contractIDHex, includeDetails)
	if err != nil {
		return subscriptionResult{}, err
	}
	return h.subscribe(ctx, subscription.TopicMempoolAcceptance, filter)
}

// subscribeMempoolEvents streams other mempool lifecycle changes
// (eviction, requeue), optionally restricted to one contract.
func (h *Handler) subscribeMempoolEvents(ctx context.Context, contractIDHex string, includeDetails bool) (subscriptionResult, *jsonrpc.Error) {
	filter, err := mempoolFilterFrom(contractIDHex, includeDetails)
	if err != nil {
		return subscriptionResult{}, err
	}
	return h.subscribe(ctx, subscription.TopicMempoolEvents, filter)
}

func mempoolFilterFrom(contractIDHex string, includeDetails bool) (subscription.MempoolFilter, *jsonrpc.Error) {
	if contractIDHex == "" {
		return subscription.MempoolFilter{IncludeDetails: includeDetails}, nil
	}
	contractID, err := utils.HexToBytes(contractIDHex, 0)
	if err != nil {
		return subscription.MempoolFilter{}, rpcerr.InvalidParams(err.Error())
	}
	return subscription.MempoolFilter{ContractID: contractID, IncludeDetails: includeDetails}, nil
}

// unsubscribe tears down a previously created subscription by id via
// RemoveSubscription (§4.8). The caller's session is not compared with
// the session that created the subscription; an unknown id yields the
// manager's NotFound error.
func (h *Handler) unsubscribe(ctx context.Context, idHex string) (bool, *jsonrpc.Error) {
	if _, _, err := h.bind(ctx); err != nil {
		return false, err
	}
	id, perr := parseSubscriptionID(idHex)
	if perr != nil {
		return false, perr
	}
	if err := h.manager.RemoveSubscription(id); err != nil {
		return false, err
	}
	return true, nil
}

// getSubscriptionStatus reports the live delivery counters for id.
func (h *Handler) getSubscriptionStatus(ctx context.Context, idHex string) (subscription.Stats, *jsonrpc.Error) {
	if _, _, err := h.bind(ctx); err != nil {
		return subscription.Stats{}, err
	}
	id, perr := parseSubscriptionID(idHex)
	if perr != nil {
		return subscription.Stats{}, perr
	}
	return h.manager.Status(id)
}

func parseSubscriptionID(idHex string) (subscription.ID, *jsonrpc.Error) {
	u, err := uuid.Parse(idHex)
	if err != nil {
		return subscription.ID{}, rpcerr.InvalidParams("invalid subscription id: " + err.Error())
	}
	return subscription.ID(u), nil
}
