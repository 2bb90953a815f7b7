package ratelimit_test

import (
	"testing"
	"time"

	"github.com/dusk-network/rusk/ratelimit"
	"github.com/stretchr/testify/require"
)

func TestAllowAdmitsUpToLimitThenRejects(t *testing.T) {
	l := ratelimit.New(ratelimit.Rule{Limit: 2, Window: time.Minute})

	require.True(t, l.Allow("1.2.3.4", "getBlockByHash"))
	require.True(t, l.Allow("1.2.3.4", "getBlockByHash"))
	require.False(t, l.Allow("1.2.3.4", "getBlockByHash"))
}

func TestAllowIsPerRemoteAddr(t *testing.T) {
	l := ratelimit.New(ratelimit.Rule{Limit: 1, Window: time.Minute})

	require.True(t, l.Allow("1.1.1.1", "m"))
	require.False(t, l.Allow("1.1.1.1", "m"))
	require.True(t, l.Allow("2.2.2.2", "m"))
}

func TestMethodPatternOverridesFallback(t *testing.T) {
	l := ratelimit.New(
		ratelimit.Rule{Limit: 100, Window: time.Minute},
		ratelimit.Rule{Pattern: "subscribe*", Limit: 1, Window: time.Minute},
	)

	require.True(t, l.Allow("1.1.1.1", "subscribeBlockAcceptance"))
	require.False(t, l.Allow("1.1.1.1", "subscribeBlockAcceptance"))
	require.True(t, l.Allow("1.1.1.1", "getBlockByHash"))
}

func TestExactPatternMatchesSubscriptionCreate(t *testing.T) {
	l := ratelimit.New(
		ratelimit.Rule{Limit: 100, Window: time.Minute},
		ratelimit.Rule{Pattern: "subscription:create", Limit: 1, Window: time.Minute},
	)

	require.True(t, l.Allow("1.1.1.1", "subscription:create"))
	require.False(t, l.Allow("1.1.1.1", "subscription:create"))
}

func TestWindowExpiryReadmitsAfterElapsed(t *testing.T) {
	l := ratelimit.New(ratelimit.Rule{Limit: 1, Window: 60 * time.Millisecond})

	require.True(t, l.Allow("1.1.1.1", "m"))
	require.False(t, l.Allow("1.1.1.1", "m"))

	time.Sleep(120 * time.Millisecond)
	require.True(t, l.Allow("1.1.1.1", "m"))
}
