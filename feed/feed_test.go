package feed_test

import (
	"testing"
	"time"

	"github.com/dusk-network/rusk/feed"
	"github.com/stretchr/testify/require"
)

func TestSendDeliversToAllSubscribers(t *testing.T) {
	f := feed.New[int]()
	a := f.Subscribe()
	b := f.Subscribe()
	defer a.Unsubscribe()
	defer b.Unsubscribe()

	go f.Send(42)

	select {
	case v := <-a.Recv():
		require.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for a")
	}
	select {
	case v := <-b.Recv():
		require.Equal(t, 42, v)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for b")
	}
}

func TestKeepLastDropsStaleValue(t *testing.T) {
	f := feed.New[int]()
	sub := f.SubscribeKeepLast()
	defer sub.Unsubscribe()

	f.Send(1)
	f.Send(2)

	select {
	case v := <-sub.Recv():
		require.Equal(t, 2, v)
	case <-time.After(time.Second):
		t.Fatal("timed out")
	}
}

func TestUnsubscribeIsIdempotent(t *testing.T) {
	f := feed.New[int]()
	sub := f.Subscribe()
	sub.Unsubscribe()
	require.NotPanics(t, func() { sub.Unsubscribe() })
}
