package subscription_test

import (
	"sync"
	"testing"
	"time"

	"github.com/dusk-network/rusk/subscription"
	"github.com/dusk-network/rusk/utils"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	mu       sync.Mutex
	received [][]byte
	full     bool
	closed   bool
}

func (s *recordingSink) TrySend(payload []byte) subscription.SendResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return subscription.SendClosed
	}
	if s.full {
		return subscription.SendFull
	}
	s.received = append(s.received, payload)
	return subscription.SendOK
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.received)
}

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(string, string) bool { return true }

type denyLimiter struct{ pattern string }

func (d denyLimiter) Allow(_ string, pattern string) bool { return pattern != d.pattern }

func TestAddAndPublishDeliversMatchingEvent(t *testing.T) {
	m := subscription.NewManager(allowAllLimiter{}, utils.NewNopZapLogger(), 16)
	sink := &recordingSink{}

	id, rerr := m.AddSubscription("sess-1", subscription.TopicBlockAcceptance, sink, nil, subscription.ClientInfo{RemoteAddr: "1.1.1.1"})
	require.Nil(t, rerr)
	require.NotEmpty(t, id.String())

	m.Publish(subscription.BlockAcceptanceEvent{BlockHash: []byte("h"), Height: 5})
	require.Equal(t, 1, sink.count())
}

func TestTransferFilterExcludesBelowMinAmount(t *testing.T) {
	m := subscription.NewManager(allowAllLimiter{}, utils.NewNopZapLogger(), 16)
	sink := &recordingSink{}
	cid := []byte("contract-1")

	_, rerr := m.AddSubscription("sess-1", subscription.TopicContractTransferEvents, sink,
		subscription.TransferFilter{ContractID: cid, MinAmount: 100}, subscription.ClientInfo{})
	require.Nil(t, rerr)

	low := uint64(10)
	m.Publish(subscription.ContractTransferEvent{ContractID: cid, Amount: &low})
	require.Equal(t, 0, sink.count())

	high := uint64(200)
	m.Publish(subscription.ContractTransferEvent{ContractID: cid, Amount: &high})
	require.Equal(t, 1, sink.count())
}

func TestRemoveSubscriptionIsIdempotent(t *testing.T) {
	m := subscription.NewManager(allowAllLimiter{}, utils.NewNopZapLogger(), 16)
	sink := &recordingSink{}
	id, _ := m.AddSubscription("sess-1", subscription.TopicMempoolAcceptance, sink, nil, subscription.ClientInfo{})

	require.Nil(t, m.RemoveSubscription(id))
	require.NotNil(t, m.RemoveSubscription(id))
}

func TestRemoveSessionSubscriptionsTearsDownAll(t *testing.T) {
	m := subscription.NewManager(allowAllLimiter{}, utils.NewNopZapLogger(), 16)
	a, b := &recordingSink{}, &recordingSink{}
	idA, _ := m.AddSubscription("sess-1", subscription.TopicMempoolAcceptance, a, nil, subscription.ClientInfo{})
	idB, _ := m.AddSubscription("sess-1", subscription.TopicMempoolEvents, b, nil, subscription.ClientInfo{})

	m.RemoveSessionSubscriptions("sess-1")

	require.NotNil(t, m.RemoveSubscription(idA))
	require.NotNil(t, m.RemoveSubscription(idB))
}

func TestRateLimitExceededRejectsAddSubscription(t *testing.T) {
	m := subscription.NewManager(denyLimiter{pattern: "subscription:create"}, utils.NewNopZapLogger(), 16)
	_, rerr := m.AddSubscription("sess-1", subscription.TopicBlockAcceptance, &recordingSink{}, nil, subscription.ClientInfo{})
	require.NotNil(t, rerr)
	require.Equal(t, -32029, rerr.Code)
}

func TestMaxSubscriptionsPerConnectionRejectsOverflow(t *testing.T) {
	m := subscription.NewManager(allowAllLimiter{}, utils.NewNopZapLogger(), 16, subscription.WithMaxSubscriptionsPerConnection(1))
	_, rerr := m.AddSubscription("sess-1", subscription.TopicBlockAcceptance, &recordingSink{}, nil, subscription.ClientInfo{})
	require.Nil(t, rerr)

	_, rerr = m.AddSubscription("sess-1", subscription.TopicMempoolAcceptance, &recordingSink{}, nil, subscription.ClientInfo{})
	require.NotNil(t, rerr)
	require.Equal(t, -32026, rerr.Code)
}

func TestSendFullTriggersForcedCleanupAfterThreshold(t *testing.T) {
	m := subscription.NewManager(allowAllLimiter{}, utils.NewNopZapLogger(), 16, subscription.WithMaxConsecutiveFailures(2))
	sink := &recordingSink{full: true}
	id, _ := m.AddSubscription("sess-1", subscription.TopicMempoolAcceptance, sink, nil, subscription.ClientInfo{})

	event := subscription.MempoolAcceptanceEvent{TxHash: []byte("t")}
	m.Publish(event)
	m.Publish(event)

	require.NotNil(t, m.RemoveSubscription(id))
}

func TestPublishAsyncDropsOldestWhenQueueFull(t *testing.T) {
	m := subscription.NewManager(allowAllLimiter{}, utils.NewNopZapLogger(), 1)
	sink := &recordingSink{}
	_, _ = m.AddSubscription("sess-1", subscription.TopicMempoolAcceptance, sink, nil, subscription.ClientInfo{})

	done := make(chan struct{})
	go func() {
		m.Run()
		close(done)
	}()

	m.PublishAsync(subscription.MempoolAcceptanceEvent{TxHash: []byte("1")})
	m.PublishAsync(subscription.MempoolAcceptanceEvent{TxHash: []byte("2")})
	m.PublishAsync(subscription.MempoolAcceptanceEvent{TxHash: []byte("3")})

	m.Stop()
	<-done

	require.LessOrEqual(t, sink.count(), 2)
}

func TestStatusReturnsSnapshotForKnownSubscription(t *testing.T) {
	m := subscription.NewManager(allowAllLimiter{}, utils.NewNopZapLogger(), 16)
	sink := &recordingSink{}
	id, _ := m.AddSubscription("sess-1", subscription.TopicMempoolAcceptance, sink, nil, subscription.ClientInfo{})

	m.Publish(subscription.MempoolAcceptanceEvent{TxHash: []byte("t")})

	stats, rerr := m.Status(id)
	require.Nil(t, rerr)
	require.Equal(t, uint64(1), stats.EventsProcessed)

	_, rerr = m.Status(subscription.ID{})
	require.NotNil(t, rerr)
}

func TestRateLimitOnPublishDropsWithoutError(t *testing.T) {
	m := subscription.NewManager(denyLimiter{pattern: "subscription:MempoolAcceptance"}, utils.NewNopZapLogger(), 16)
	sink := &recordingSink{}
	_, _ = m.AddSubscription("sess-1", subscription.TopicMempoolAcceptance, sink, nil, subscription.ClientInfo{})

	m.Publish(subscription.MempoolAcceptanceEvent{TxHash: []byte("t")})
	require.Equal(t, 0, sink.count())
}

func TestRunRespectsStopWithoutEvents(t *testing.T) {
	m := subscription.NewManager(allowAllLimiter{}, utils.NewNopZapLogger(), 4)
	done := make(chan struct{})
	go func() {
		m.Run()
		close(done)
	}()
	m.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not exit after Stop")
	}
}
